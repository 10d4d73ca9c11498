/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/regkey/pkg/config"
	"github.com/ssargent/regkey/pkg/logging"
	"github.com/ssargent/regkey/pkg/regkey"
)

var (
	// ErrHelpRequested is reported when usage was printed because of -h/--help.
	ErrHelpRequested = errors.New("help requested")
	// ErrUnknownOption is reported for unknown or malformed options and
	// unexpected arguments.
	ErrUnknownOption = errors.New("unknown option")
)

const usageHeader = `Registration key generator

Usage: %s [ -n name ] [ -f features ]

`

// app carries the per-invocation state of one Run
type app struct {
	stdout io.Writer
	stderr io.Writer

	name       string
	features   featuresValue
	configPath string
	logLevel   string

	helpRequested bool
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		features: featuresValue(regkey.DefaultFeatures),
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if a.helpRequested {
		err = ErrHelpRequested
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrHelpRequested):
		return 1
	case errors.Is(err, ErrUnknownOption):
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		a.printUsage(root)
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "regkey",
		Short: "Generate registration keys",
		Long: `regkey generates a registration key for a licensee name and a
feature mask, in the format expected by the product's key validator.

Examples:
  regkey
  regkey -n "Akira Kurosawa"
  regkey -n "Akira Kurosawa" -f ffffbfff
  regkey --config ./regkey.yaml --log-level debug`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Mark(errors.Newf("unexpected argument %q", args[0]), ErrUnknownOption)
			}
			return nil
		},
		RunE:          a.generate,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Mark(err, ErrUnknownOption)
	})
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		a.helpRequested = true
		a.printUsage(cmd)
	})

	root.Flags().StringVarP(&a.name, "name", "n", regkey.DefaultName, "licensee name")
	root.Flags().VarP(&a.features, "features", "f", "feature mask in hex")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file with licensee and logging defaults")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(a.newConfigCmd())

	return root
}

func (a *app) printUsage(cmd *cobra.Command) {
	if cmd.HasParent() {
		fmt.Fprint(a.stderr, cmd.UsageString())
		return
	}
	fmt.Fprintf(a.stderr, usageHeader, cmd.Name())
	fmt.Fprint(a.stderr, cmd.Flags().FlagUsages())
}

// loadConfig returns the config file named by --config, or the built-in
// defaults when none was given, with the --log-level override applied.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load config %s", a.configPath)
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	return cfg, nil
}

func (a *app) generate(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.stderr)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("run_id", ksuid.New().String()))

	name := a.name
	if cmd.Flags().Changed("name") {
		fmt.Fprintf(a.stdout, "Using name \"%s\".\n", name)
	} else {
		name = cfg.Licensee.Name
		fmt.Fprintf(a.stdout, "Using default name \"%s\".\n", name)
	}

	features := uint32(a.features)
	if cmd.Flags().Changed("features") {
		fmt.Fprintf(a.stdout, "Using custom feature config (0x%08x)\n", features)
	} else {
		features, err = cfg.FeatureMask()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Using default features (0x%08x)\n", features)
	}

	key, err := regkey.NewGenerator(regkey.WithLogger(logger)).Generate(name, features)
	if err != nil {
		logger.Debug("key generation failed", slog.String("error", err.Error()))
		return err
	}

	fmt.Fprintln(a.stdout, key)
	return nil
}
