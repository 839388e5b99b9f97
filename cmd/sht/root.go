package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	algosht "github.com/cwbudde/algo-sht"
	"github.com/cwbudde/algo-sht/spectral"
)

// app carries the configuration shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:           "sht",
		Short:         "Spherical harmonic transforms on the equiangular grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	if err := a.bindFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		newGridCommand(a),
		newWeightsCommand(a),
		newForwardCommand(a),
		newInverseCommand(a),
		newBenchCommand(a),
	)

	return root
}

// bindFlags declares the global flags and makes each one readable from
// viper, with SHT_<FLAG> environment overrides.
func (a *app) bindFlags(flags *pflag.FlagSet) error {
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("backend", "", "spectral backend (default "+spectral.DefaultBackend+")")
	flags.Int("workers", 0, "parallel transforms for batch work (0 = GOMAXPROCS)")

	if err := a.v.BindPFlags(flags); err != nil {
		return err
	}

	a.v.SetEnvPrefix("SHT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	return nil
}

func (a *app) init(stderr io.Writer) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

func (a *app) transformOptions() algosht.TransformOptions {
	return algosht.TransformOptions{
		Backend: a.v.GetString("backend"),
		Logger:  a.logger,
	}
}

func (a *app) newTransformer(b int) (*algosht.Transformer, error) {
	return algosht.NewTransformerWithOptions(b, a.transformOptions())
}
