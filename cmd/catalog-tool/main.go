package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"catalog-tool/internal/app"
	"catalog-tool/internal/logging"
)

// main runs one catalog command and exits non-zero when it fails.
func main() {
	runner := app.NewAppRunner()

	err := runner.Run(os.Args[1:])
	if err == nil {
		logging.Logf(logging.Debug, "Command completed successfully.")
		return
	}

	// The dispatcher already printed a report line for these.
	if errors.Is(err, app.ErrReported) {
		logging.Logf(logging.Debug, "Command failed: %v", err)
		os.Exit(1)
	}

	log.Printf("[ERROR] %v", err)
	if errors.Is(err, app.ErrUsage) || errors.Is(err, app.ErrConfigNotFound) {
		fmt.Fprintln(os.Stderr, "")
		runner.Usage(os.Stderr)
	}
	os.Exit(1)
}
