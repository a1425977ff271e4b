package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"catalog-tool/internal/catalog"
	"catalog-tool/internal/config"
	"catalog-tool/internal/httpclient"
	"catalog-tool/internal/logging"
)

// Define common errors for the application layer.
var (
	ErrUsage          = errors.New("usage error")
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrReported wraps failures whose message was already printed to the console.
	ErrReported = errors.New("operation failed")
)

// --- Interfaces for Testability ---

// configLoader defines the interface for loading configuration.
type configLoader interface {
	Load(filename string) (*config.Config, error)
}

// productService is the catalog API as seen by the dispatcher.
type productService interface {
	List(ctx context.Context) (*catalog.Response, error)
	Get(ctx context.Context, id string) (*catalog.Response, error)
	Create(ctx context.Context, product catalog.NewProduct) (*catalog.Response, error)
	Delete(ctx context.Context, id string) (*catalog.Response, error)
}

// serviceFactory builds a productService for the effective configuration.
type serviceFactory interface {
	New(cfg *config.Config) (productService, error)
}

// --- Default Implementations ---

type defaultConfigLoader struct{}

func (l *defaultConfigLoader) Load(filename string) (*config.Config, error) {
	return config.LoadConfig(filename)
}

type defaultServiceFactory struct{}

func (f *defaultServiceFactory) New(cfg *config.Config) (productService, error) {
	client, err := catalog.NewClient(cfg.BaseURL, httpclient.NewClient(cfg))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// --- AppRunner ---

// AppRunner encapsulates the command dispatcher and its dependencies.
type AppRunner struct {
	configLoader   configLoader
	serviceFactory serviceFactory
	stdout         io.Writer
	stderr         io.Writer
}

// AppRunnerOpts allows configuring the AppRunner's dependencies.
// Nil fields fall back to the real implementations and process streams.
type AppRunnerOpts struct {
	ConfigLoader   configLoader
	ServiceFactory serviceFactory
	Stdout         io.Writer
	Stderr         io.Writer
}

// NewAppRunner creates a new instance of the application runner with default dependencies.
func NewAppRunner() *AppRunner {
	return NewAppRunnerWithOpts(AppRunnerOpts{})
}

// NewAppRunnerWithOpts creates a new AppRunner allowing dependency injection.
func NewAppRunnerWithOpts(opts AppRunnerOpts) *AppRunner {
	a := &AppRunner{
		configLoader:   opts.ConfigLoader,
		serviceFactory: opts.ServiceFactory,
		stdout:         opts.Stdout,
		stderr:         opts.Stderr,
	}
	if a.configLoader == nil {
		a.configLoader = &defaultConfigLoader{}
	}
	if a.serviceFactory == nil {
		a.serviceFactory = &defaultServiceFactory{}
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	return a
}

const usageText = `Usage:
  catalog-tool [options] <VERB> <resource> [arguments]

Commands:
  catalog-tool GET products
        List every product
  catalog-tool GET products/<id>
        Show one product
  catalog-tool POST products <title> <price> <category>
        Create a product
  catalog-tool DELETE products/<id>
        Delete a product

Options:
  -config string
        Optional YAML configuration file
  -base-url string
        Catalog API base URL (default "` + config.DefaultBaseURL + `")
  -loglevel string
        Logging level (none, error, warn, info, debug) (default "` + config.DefaultLogLevel + `")
  -help
        Show help
`

// Usage prints the command-line help information to the specified writer.
func (a *AppRunner) Usage(writer io.Writer) {
	fmt.Fprint(writer, usageText)
}

// Run parses global flags, resolves configuration and dispatches the
// positional arguments as one catalog command.
func (a *AppRunner) Run(args []string) error {
	fs := flag.NewFlagSet("catalog-tool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configFile := fs.String("config", "", "Optional YAML configuration file")
	baseURL := fs.String("base-url", "", "Catalog API base URL")
	logLevelStr := fs.String("loglevel", "", "Logging level (none, error, warn, info, debug)")
	helpFlag := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			a.Usage(a.stderr)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if *helpFlag || fs.NArg() == 0 {
		a.Usage(a.stderr)
		return nil
	}

	cfg, err := a.loadConfig(*configFile)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("%w: -base-url: %v", ErrUsage, err)
		}
	}
	if *logLevelStr != "" {
		cfg.Logging.Level = *logLevelStr
	}
	logging.SetupLogging(cfg.Logging.Level)
	logging.Logf(logging.Debug, "Using catalog at %s", cfg.BaseURL)

	return a.Dispatch(context.Background(), cfg, fs.Args())
}

// loadConfig returns the defaults when filename is empty.
func (a *AppRunner) loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		return config.Default(), nil
	}
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			logging.Logf(logging.Error, "Configuration file '%s' not found.", filename)
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to stat config file '%s': %w", filename, err)
	}
	cfg, err := a.configLoader.Load(filename)
	if err != nil {
		logging.Logf(logging.Error, "Error loading configuration '%s': %v", filename, err)
		return nil, err
	}
	return cfg, nil
}
