package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rrgmc/ucr/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v: viper.New(),
	}

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "ucr",
		Short: "Convert tagged form state into create/update/remove payloads",
		Long: `ucr reads form documents where each field is tagged with the operation it takes part in
(!create, !update, !remove, !id) and prints the resulting payload of rows to create,
rows to update and ids to remove, grouped by table name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.ucr.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = a.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(newTransformCmd(a))

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command, cfgFile string) error {
	a.v.SetEnvPrefix("UCR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".ucr")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	a.logger = logging.New(cmd.ErrOrStderr(), a.v.GetString("log.level"), a.v.GetString("log.format"))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config file loaded", "file", used)
	}
	return nil
}
