package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/payscalesleuth/internal/config"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/models"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/ui"
	"github.com/fr4nk3nst1ner/payscalesleuth/internal/utils"
)

var version = "dev"

// app carries what every subcommand needs once flags and config are resolved
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	baseURL      string
	letterLimit  int
	jobLimit     int
	format       string
	logLevel     string
	workers      int
	silence      bool
	noBanner     bool
	failOnIssues bool
}

func (a *app) parser() *scraper.Parser {
	return scraper.New(
		scraper.WithBaseURL(a.cfg.Site.BaseURL),
		scraper.WithLetterLimit(a.cfg.Limits.Letters),
		scraper.WithJobLimit(a.cfg.Limits.Jobs),
		scraper.WithLogger(a.logger.Named("scraper")),
	)
}

// load reads config.yaml and the environment, then lets explicit flags win
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return eris.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Site.BaseURL = a.baseURL
	}
	if flags.Changed("letter-limit") {
		cfg.Limits.Letters = a.letterLimit
	}
	if flags.Changed("job-limit") {
		cfg.Limits.Jobs = a.jobLimit
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = a.workers
	}

	if !utils.IsValidFormat(cfg.Output.Format) {
		return eris.Errorf("invalid format %q: must be one of json, yaml, table", cfg.Output.Format)
	}

	if err := config.InitLogger(cfg.Log); err != nil {
		return eris.Wrap(err, "init logger")
	}

	a.cfg = cfg
	a.logger = zap.L()
	return nil
}

// checkIssues logs a parse summary and, with --fail-on-issues, turns issues into an error
func (a *app) checkIssues(page string, issues []models.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	a.logger.Warn("page parsed with issues", zap.String("page", page), zap.Int("issues", len(issues)))
	if a.failOnIssues {
		return eris.Errorf("%s: %d parse issues", page, len(issues))
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "payscalesleuth",
		Short:         "Extract salary figures from saved PayScale research pages",
		Long:          "Parses the alphabetical job index, per-letter job listings and job salary pages of PayScale's research section into structured records.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			// Display banner (skip if either --silence or --nobanner is set)
			ui.PrintBanner(cmd.ErrOrStderr(), a.silence || a.noBanner)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.baseURL, "base-url", scraper.DefaultBaseURL, "Prefix joined to every relative link")
	flags.IntVar(&a.letterLimit, "letter-limit", 0, "Maximum number of index letters to read (0 reads all)")
	flags.IntVar(&a.jobLimit, "job-limit", 0, "Maximum number of jobs to read per letter page (0 reads all)")
	flags.StringVarP(&a.format, "format", "f", "json", "Output format: json, yaml or table")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.silence, "silence", false, "Silence the banner")
	flags.BoolVar(&a.noBanner, "nobanner", false, "Silence the banner (alias for --silence)")
	flags.BoolVar(&a.failOnIssues, "fail-on-issues", false, "Exit with an error when a page parses with issues")

	rootCmd.AddCommand(
		newIndexCmd(a),
		newLetterCmd(a),
		newJobCmd(a),
		newBatchCmd(a),
		newExamplesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
