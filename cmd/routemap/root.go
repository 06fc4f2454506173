package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/internal/output"
	"github.com/VinothKuppanna/routemap-go/pkg/data"
	"github.com/VinothKuppanna/routemap-go/pkg/domain"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

var (
	flagUsername        string
	flagKeychainService string
	flagKeeperUID       string
	flagOrigin          string
	flagDestination     string
	flagOutput          string
	flagConfig          string
	flagEmailTo         string
	flagVerbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "routemap",
	Short: "Generate a one-page PDF report for a driving route",
	Long: `routemap fetches a driving route between two addresses, renders a
static map of it, and writes a single-page PDF with the addresses,
distance, travel time and cost estimates.

The mapping API key comes from exactly one source: the OS credential
store (--username with --keychain-service) or a Keeper vault record
(--keeper-uid). When both are given the vault wins.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagUsername, "username", "", "account name of the credential-store entry holding the API key")
	flags.StringVar(&flagKeychainService, "keychain-service", "", "service name of the credential-store entry holding the API key")
	flags.StringVar(&flagKeeperUID, "keeper-uid", "", "Keeper vault record UID holding the API key (takes precedence)")
	flags.StringVar(&flagOrigin, "origin", "", "origin address")
	flags.StringVar(&flagDestination, "destination", "", "destination address")
	flags.StringVar(&flagOutput, "output", "", "output PDF path (default route_map_<timestamp>.pdf)")
	flags.StringVar(&flagConfig, "config", "", "optional YAML config file")
	flags.StringVar(&flagEmailTo, "email-to", "", "email the finished report to this address via SendGrid")
	flags.BoolVar(&flagVerbose, "verbose", false, "debug logging to stderr")

	_ = rootCmd.MarkFlagRequired("origin")
	_ = rootCmd.MarkFlagRequired("destination")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagVerbose)

	cfg := configs.Default()
	if flagConfig != "" {
		if err := cfg.Read(flagConfig); err != nil {
			return err
		}
	}
	if err := cfg.ReadEnv(); err != nil {
		return err
	}
	cfg.Version = Version
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("configuration loaded", slog.String("config", cfg.String()))

	// Input validation happens before anything talks to the network.
	source, err := definition.SourceFromFlags(flagUsername, flagKeychainService, flagKeeperUID)
	if err != nil {
		return err
	}

	outputPath, notice := output.Resolve(flagOutput)
	if notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}

	var vault definition.VaultClient
	if _, ok := source.(definition.RemoteVault); ok {
		if vault, err = data.NewKeeperVault(cfg.Keeper.ConfigPath); err != nil {
			return err
		}
	}

	credentials := domain.NewCredentialsService(data.NewKeychainStore(), vault, logger)
	apiKey, err := credentials.Resolve(cmd.Context(), source)
	if err != nil {
		return err
	}

	trips := domain.NewTripService(
		data.NewDirectionsService(apiKey, cfg, logger),
		data.NewStaticMapService(apiKey, cfg, logger),
		data.NewReportService(cfg, logger),
		cfg,
		logger,
	)
	summary, err := trips.BuildReport(cmd.Context(), &definition.BuildTripRequest{
		Origin:      flagOrigin,
		Destination: flagDestination,
		OutputPath:  outputPath,
	})
	if err != nil {
		return err
	}

	if flagEmailTo != "" {
		emails := data.NewSendgridEmailService(cfg, logger)
		err = emails.SendReport(cmd.Context(), &definition.SendReportRequest{
			To:          flagEmailTo,
			Origin:      flagOrigin,
			Destination: flagDestination,
			OutputPath:  summary.OutputPath,
		})
		if err != nil {
			return errors.Wrapf(err, "report written to %s but email delivery failed", summary.OutputPath)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.OutputPath)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
