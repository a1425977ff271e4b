package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	item := map[string]string{"title": "Shirt", "price": "19.99"}

	tests := []struct {
		name        string
		text        string
		data        map[string]string
		expected    string
		errContains string
	}{
		{"Default item line", "- {{.title}} (${{.price}})", item, "- Shirt ($19.99)", ""},
		{"Static text", "product", item, "product", ""},
		{"Missing key", "{{.category}}", item, "", "failed to execute template"},
		{"Nil data", "{{.title}}", nil, "", "failed to execute template"},
		{"Empty template", "", item, "", "is empty"},
		{"Bad syntax", "{{.title", item, "", "failed to parse template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render("item", tt.text, tt.data)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestLineReuse(t *testing.T) {
	line, err := Parse("item", "{{.title}}={{.price}}")
	require.NoError(t, err)

	first, err := line.Execute(map[string]string{"title": "a", "price": "1"})
	require.NoError(t, err)
	second, err := line.Execute(map[string]string{"title": "b", "price": "2"})
	require.NoError(t, err)

	assert.Equal(t, "a=1", first)
	assert.Equal(t, "b=2", second)
}
