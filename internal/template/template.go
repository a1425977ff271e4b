package template

import (
	"bytes"
	"fmt"
	"text/template"

	"catalog-tool/internal/logging"
)

// Line is a parsed single-line output template. Missing keys are errors.
type Line struct {
	tmpl *template.Template
}

// Parse compiles text into a Line named name.
func Parse(name, text string) (*Line, error) {
	if text == "" {
		return nil, fmt.Errorf("template '%s' is empty", name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}
	return &Line{tmpl: tmpl}, nil
}

// Execute renders the line with data.
func (l *Line) Execute(data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		logging.Logf(logging.Debug, "Template '%s' data: %v", l.tmpl.Name(), data)
		return "", fmt.Errorf("failed to execute template '%s': %w", l.tmpl.Name(), err)
	}
	return buf.String(), nil
}

// Render parses and executes text in one step.
func Render(name, text string, data map[string]string) (string, error) {
	l, err := Parse(name, text)
	if err != nil {
		return "", err
	}
	return l.Execute(data)
}
