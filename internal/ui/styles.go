package ui

import (
	"fmt"

	"github.com/hance08/pesa/internal/model"
	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// ColorType colors money-in types green, money-out types red and Unknown gray.
func ColorType(t model.TransactionType) string {
	switch t {
	case model.TypeReceived, model.TypeFulizaUsage:
		return pterm.Green(string(t))
	case model.TypeSent, model.TypeWithdrawal, model.TypeAirtimePurchase, model.TypeFulizaRepayment:
		return pterm.Red(string(t))
	case model.TypeUnknown:
		return pterm.Gray(string(t))
	default:
		return pterm.Blue(string(t))
	}
}

func ColorStatus(s model.Status) string {
	switch s {
	case model.StatusSuccess:
		return pterm.Green(string(s))
	case model.StatusFailed:
		return pterm.Red(string(s))
	default:
		return "-"
	}
}
