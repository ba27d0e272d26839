package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/premiocnj/internal/catalog"
	"github.com/dshills/premiocnj/internal/config"
	"github.com/dshills/premiocnj/internal/indicator"
	"github.com/dshills/premiocnj/internal/render"
)

// Exit codes.
const (
	exitBelowTarget   = 2
	exitLoad          = 3
	exitUnknown       = 4
	exitInvalidCounts = 5
)

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// commonFlags are shared by every subcommand. Empty values fall back to
// the environment configuration.
type commonFlags struct {
	catalogFile string
	locale      string
	verbose     bool
}

func (c *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.catalogFile, "catalog", "", "Catalog YAML file (default: builtin catalog)")
	cmd.Flags().StringVar(&c.locale, "locale", "", "Locale for number formatting (default: pt-BR)")
	cmd.Flags().BoolVar(&c.verbose, "verbose", false, "Verbose logging to stderr")
}

func (c *commonFlags) logger() func(msg string, args ...any) {
	logger := log.New(os.Stderr, "", 0)
	return func(msg string, args ...any) {
		if c.verbose {
			logger.Printf(msg, args...)
		}
	}
}

// setup merges flags over the environment and builds the registry and
// number formatter. The output format is resolved by each command.
func (c *commonFlags) setup(verbose func(string, ...any)) (*config.Config, *catalog.Registry, render.Formatter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, render.Formatter{}, exitError(exitLoad, "failed to load config: %v", err)
	}
	if c.catalogFile != "" {
		cfg.CatalogFile = c.catalogFile
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, render.Formatter{}, exitError(exitLoad, "%v", err)
	}

	if cfg.CatalogFile != "" {
		verbose("Loading catalog file: %s", cfg.CatalogFile)
	} else {
		verbose("Loading builtin catalog: %s", cfg.Builtin)
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, nil, render.Formatter{}, exitError(exitLoad, "failed to load catalog: %v", err)
	}
	reg, err := catalog.NewRegistry(cat)
	if err != nil {
		return nil, nil, render.Formatter{}, exitError(exitLoad, "%v", err)
	}
	verbose("Catalog %s: %d indicators, %d implemented", reg.Name(), len(reg.List()), len(reg.Implemented()))

	f, err := render.NewFormatter(cfg.Locale)
	if err != nil {
		return nil, nil, render.Formatter{}, exitError(exitLoad, "%v", err)
	}
	return cfg, reg, f, nil
}

// evaluateErr maps core errors to exit codes.
func evaluateErr(code string, err error) error {
	var nf *catalog.NotFoundError
	var ni *indicator.NotImplementedError
	var ie *indicator.InvalidInputError
	switch {
	case errors.As(err, &nf):
		return exitError(exitUnknown, "unknown indicator %q", nf.Code)
	case errors.As(err, &ni):
		return exitError(exitUnknown, "indicator %q is cataloged but not implemented yet", ni.Code)
	case errors.As(err, &ie):
		return exitError(exitInvalidCounts, "%s: %v", code, ie)
	}
	return err
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
