package cmd

import (
	"github.com/hance08/pesa/internal/app"
	"github.com/hance08/pesa/internal/constants"
	"github.com/hance08/pesa/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	deps *deps
}

func NewInfoCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, log destination, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				deps: d,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.deps.cfg

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		LogFile:      cfg.Log.File,
		LogLevel:     cfg.Log.Level,
		Workers:      cfg.Parser.Workers,
		ReportIndent: cfg.Report.Indent,
		Summary:      cfg.Report.Summary,
		Currency:     constants.CurrencyCode,
		AppDataDir:   getAppDataDirOrUnknown(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
