package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string
	LogFile      string
	LogLevel     string
	Workers      int
	ReportIndent int
	Summary      bool
	Currency     string
	AppDataDir   string
}

func RenderSystemInfo(data SystemInfoItem) error {
	logFile := data.LogFile
	if logFile == "" {
		logFile = pterm.Gray("(stderr)")
	}

	summary := pterm.Red("Off")
	if data.Summary {
		summary = pterm.Green("On")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Log File", logFile},
		{"Log Level", data.LogLevel},
		{"Parser Workers", fmt.Sprintf("%d", data.Workers)},
		{"Report Indent", fmt.Sprintf("%d", data.ReportIndent)},
		{"Summary By Default", summary},
		{"Currency", data.Currency},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
