package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/holomush/credhash/internal/config"
	"github.com/holomush/credhash/internal/credential"
	"github.com/holomush/credhash/internal/logging"
)

// rootOptions holds state shared by all subcommands. It is populated by the
// root command's PersistentPreRunE.
type rootOptions struct {
	configFile string

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	hasher   *credential.InstrumentedHasher
}

// NewRootCmd creates the root command for the credhash CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "credhash",
		Short: "credhash - salted password records",
		Long: `credhash creates and checks self-contained password records.

A record carries its own random salt, so verifying a password needs only the
stored record and the candidate. New records use the configured scheme
(salted-sha256 or argon2id); records of either scheme can be verified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/credhash/config.yaml)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newHashCmd(opts))
	cmd.AddCommand(newVerifyCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newDemoCmd(opts))

	return cmd
}

// setup loads configuration and builds the logger and hasher.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	o.cfg = cfg

	o.logger = logging.Setup(logging.Options{
		Service: "credhash",
		Version: version,
		Format:  cfg.Log.Format,
		Level:   cfg.Log.Level,
		Writer:  cmd.ErrOrStderr(),
	})

	hasher, err := credential.New(cfg.Scheme)
	if err != nil {
		return err
	}

	o.registry = prometheus.NewRegistry()
	o.hasher = credential.Instrument(hasher, credential.NewMetrics(o.registry), o.logger)

	o.logger.DebugContext(cmd.Context(), "configured", "scheme", cfg.Scheme, "command", cmd.Name())
	return nil
}
