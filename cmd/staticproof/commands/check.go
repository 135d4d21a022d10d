package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/staticproof/checker"
	"github.com/teranos/staticproof/config"
	"github.com/teranos/staticproof/errors"
	"github.com/teranos/staticproof/logger"
	"github.com/teranos/staticproof/report"
)

var (
	checkJSON       bool
	checkPlain      bool
	checkWatch      bool
	checkGOOS       string
	checkGOARCH     string
	checkConfigPath string
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Verify all assertions in the given packages",
	Long: `Verify every staticproof assertion in the given package patterns.

The packages are loaded and type-checked for the configured target
platform; each assertion becomes a proof obligation evaluated against the
type checker's own size and method-set models. Any refuted assertion fails
the run.

Examples:
  staticproof check                      # Patterns from config (default ./...)
  staticproof check ./frame/... ./wire   # Explicit patterns
  staticproof check --goarch=386         # Size obligations for 32-bit x86
  staticproof check --json               # Machine-readable findings
  staticproof check --watch              # Re-verify on source changes`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().BoolVar(&checkJSON, "json", false, "Output findings as JSON")
	CheckCmd.Flags().BoolVar(&checkPlain, "plain", false, "Uncolored output for logs and CI")
	CheckCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Watch source directories and re-verify on change")
	CheckCmd.Flags().StringVar(&checkGOOS, "goos", "", "Target GOOS for size obligations (default: config or host)")
	CheckCmd.Flags().StringVar(&checkGOARCH, "goarch", "", "Target GOARCH for size obligations (default: config or host)")
	CheckCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "Path to staticproof.toml (default: discovered)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if checkGOOS != "" {
		cfg.Check.GOOS = checkGOOS
	}
	if checkGOARCH != "" {
		cfg.Check.GOARCH = checkGOARCH
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Check.Packages
	}

	reporter := report.New(cmd.OutOrStdout(), outputFormat())

	run := func() (checker.Result, []*checker.Package, error) {
		pkgs, err := checker.Load(patterns, checker.LoadOptionsFromConfig(&cfg.Check))
		if err != nil {
			return checker.Result{}, nil, err
		}

		c := checker.New(checker.Options{
			DeprecationNotices: cfg.Check.DeprecationNotices,
		})
		res := c.CheckAll(pkgs)

		if err := reporter.Render(res); err != nil {
			return res, pkgs, err
		}
		return res, pkgs, nil
	}

	res, pkgs, err := run()
	if err != nil {
		return err
	}

	if checkWatch {
		return watchLoop(cfg, pkgs, run)
	}

	if res.Failed() {
		return errors.Wrapf(errors.ErrVerificationFailed, "%d assertions refuted", len(res.Errors()))
	}
	return nil
}

// watchLoop re-runs verification whenever a watched source file changes,
// until interrupted. Verdicts are reported each round; the loop itself only
// ends on signal or watcher failure.
func watchLoop(cfg *config.Config, pkgs []*checker.Package, run func() (checker.Result, []*checker.Package, error)) error {
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond

	watcher, err := config.NewWatcher(checker.SourceDirs(pkgs), debounce)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnChange(func() {
		logger.Logger.Infow("Source changed, re-verifying")
		if _, _, err := run(); err != nil {
			logger.Logger.Errorw("Re-verification failed",
				logger.FieldError, err)
		}
	})
	watcher.Start()

	logger.Logger.Infow("Watching for changes",
		logger.FieldCount, len(checker.SourceDirs(pkgs)))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

// loadConfig reads the project config, honoring an explicit --config path.
func loadConfig() (*config.Config, error) {
	if checkConfigPath != "" {
		return config.LoadFromFile(checkConfigPath)
	}
	return config.Load()
}

// outputFormat maps the output flags to a report format.
func outputFormat() report.Format {
	switch {
	case checkJSON:
		return report.FormatJSON
	case checkPlain:
		return report.FormatPlain
	default:
		return report.FormatTerminal
	}
}
