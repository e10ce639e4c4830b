// cmd/schema-typegen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"schema-typegen/internal/app"
	"schema-typegen/internal/common/config"
	apperrors "schema-typegen/internal/common/errors"
	"schema-typegen/internal/common/logger"
	"schema-typegen/internal/common/validation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags and drives one pipeline run. Compiled output goes to
// stdout, every diagnostic to stderr; the exit code is 0 only on success.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema-typegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	urlFlag := fs.String("url", "", "Base URL of the API exposing /profile (required)")
	allFlag := fs.Bool("all", false, "Print every compiled document instead of only the first")
	timeoutFlag := fs.Int("timeout", 0, "Request timeout in milliseconds (overrides config)")
	levelFlag := fs.String("log-level", "", "Log level: debug, info, warn or error")
	configFlag := fs.String("config", "", "Path to a config file")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *urlFlag == "" {
		fmt.Fprintln(stderr, apperrors.MsgURLMissing)
		return 1
	}
	if !validation.IsURL(*urlFlag) {
		fmt.Fprintln(stderr, apperrors.MsgURLInvalid)
		return 1
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *allFlag {
		cfg.Output.PrintAll = true
	}
	if *timeoutFlag > 0 {
		cfg.HTTP.Timeout = *timeoutFlag
	}
	if *levelFlag != "" {
		cfg.Logging.Level = *levelFlag
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	a := app.New(cfg, log, stdout)
	if err := a.Run(context.Background(), *urlFlag); err != nil {
		log.Debug("run failed", map[string]interface{}{
			"code":  string(apperrors.CodeOf(err)),
			"error": err.Error(),
		})
		fmt.Fprintln(stderr, apperrors.UserMessage(err))
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
