package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/pesa/internal/app"
	"github.com/hance08/pesa/internal/config"
	"github.com/hance08/pesa/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// deps is filled in by the root command before any subcommand runs.
type deps struct {
	cfg *config.Config
	app *app.App
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	d := &deps{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "pesa",
		Short: "pesa extracts transactions from M-PESA SMS notifications",
		Long: `pesa reads M-PESA notification messages in English or Swahili and turns
each one into a structured transaction record: type, amount, counterparty,
balance, cost, status and date. Results are written as a JSON report.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}

			application, appCleanup, err := app.NewApp(cfg)
			if err != nil {
				return err
			}

			d.cfg = cfg
			d.app = application
			cleanup = appCleanup
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().String("log", "", "append JSON log lines to this file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	_ = viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(NewParseCmd(d))
	rootCmd.AddCommand(NewInteractiveCmd(d))
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewInfoCmd(d))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()

	if err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

func initConfig() (*config.Config, error) {
	setDefaults(viper.GetViper(), config.NewDefault())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("PESA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	logFile, err := expandPath(cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("invalid log file path: %w", err)
	}
	cfg.Log.File = logFile

	return cfg, nil
}

// setDefaults registers every key so env vars and the written config file know about them.
func setDefaults(v *viper.Viper, def *config.Config) {
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("parser.workers", def.Parser.Workers)
	v.SetDefault("report.indent", def.Report.Indent)
	v.SetDefault("report.summary", def.Report.Summary)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Only defaults go into the file, never flag or env values of this run.
	v := viper.New()
	setDefaults(v, config.NewDefault())
	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
