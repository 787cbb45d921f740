package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/coolbeans/phcite/pkg/citation"
	"github.com/coolbeans/phcite/pkg/config"
	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/logging"
)

var version = "0.1.0"

// app holds the state shared by every subcommand once flags and the config
// file have been read.
type app struct {
	cfg       *config.Config
	log       logging.Logger
	rules     *docket.RuleSet
	extractor *citation.Extractor
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "phcite",
		Short: "Philippine Supreme Court citation extractor",
		Long: `phcite finds and normalizes citations to Philippine Supreme Court
decisions in free-form text.

It recognizes docket references such as "G.R. No. 138570, October 10, 2000"
(GR, AM, AC, BM, OCA, PET, JIB and UDK categories), reporter citations such
as "342 SCRA 449", "374 Phil. 1" or "45 O.G. 3456", and merges repeated
mentions of the same decision.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a YAML config file")
	flags.StringP("format", "f", "", "output format: text, json or yaml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("rules", "", "path to a YAML statutory rule table")

	rootCmd.AddCommand(extractCmd(a))
	rootCmd.AddCommand(countCmd(a))
	rootCmd.AddCommand(docketsCmd(a))
	rootCmd.AddCommand(metaCmd(a))
	rootCmd.AddCommand(lookupCmd(a))
	rootCmd.AddCommand(watchCmd(a))

	return rootCmd
}

// setup loads the config file and environment, applies flag overrides and
// builds the logger and extractor.
func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	logLevel, _ := cmd.Flags().GetString("log-level")
	rulesPath, _ := cmd.Flags().GetString("rules")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if rulesPath != "" {
		cfg.Rules.File = rulesPath
	}
	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(log)

	rules, err := cfg.RuleSet()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.Named("phcite")
	a.rules = rules
	a.extractor = citation.NewExtractor(
		citation.WithRules(rules),
		citation.WithLogger(log.Named("citation")),
	)
	return nil
}
