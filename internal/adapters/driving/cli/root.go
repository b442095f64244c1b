// Package cli implements the Rollcall command-line interface.
//
// Commands are thin shells over the driving ports: they parse flags,
// call the observation or report service, and render the outcome.
// Services are wired lazily from configuration on first use, so tests
// can inject mocks through the package-level service variables.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	filelog "github.com/custodia-labs/rollcall/internal/adapters/driven/changelog/file"
	config "github.com/custodia-labs/rollcall/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rollcall/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/rollcall/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/rollcall/internal/core/ports/driving"
	"github.com/custodia-labs/rollcall/internal/core/services"
	"github.com/custodia-labs/rollcall/internal/extractors/releases"
	"github.com/custodia-labs/rollcall/internal/extractors/roster"
	"github.com/custodia-labs/rollcall/internal/logger"
	"github.com/custodia-labs/rollcall/internal/matchers"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

// Package-level services consumed by the commands. Wired from
// configuration by initServices; tests assign mocks directly.
var (
	observer driving.Observer
	reporter driving.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Observe a jail roster for bookings and releases",
	Long: `Rollcall periodically observes a county jail roster, detects
bookings and releases between observations, reconciles departures
against a delayed release-detail feed, and appends every change to an
audit log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default ~/.rollcall/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the observation and report services from the
// configuration file. The observer stays nil when no roster URL is
// configured; commands that need it report that to the user.
func initServices() error {
	if observer != nil || reporter != nil {
		return nil
	}

	path := configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	changeLog, err := filelog.NewChangeLog(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening change log: %w", err)
	}

	reporter = services.NewReportService(store, changeLog)

	if cfg.RosterURL == "" {
		return nil
	}

	fetcher := httpfetch.New(httpfetch.WithRate(cfg.FetchRatePerSec))
	observer = services.NewObservationService(
		fetcher,
		roster.New(),
		releases.New(),
		matchers.Default(),
		store,
		changeLog,
		services.Config{
			RosterURL:     cfg.RosterURL,
			ReleasesURL:   cfg.ReleasesURL,
			DisplayCap:    cfg.DisplayCap,
			MaxPendingAge: time.Duration(cfg.MaxPendingAgeDays) * 24 * time.Hour,
			Strict:        cfg.StrictExtraction || strictFlag,
		},
	)
	return nil
}
