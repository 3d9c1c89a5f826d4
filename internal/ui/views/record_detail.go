package views

import (
	"strconv"
	"time"

	"github.com/hance08/pesa/internal/constants"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/ui"
	"github.com/hance08/pesa/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderRecord(rec model.TransactionRecord) error {
	pterm.Println()
	ui.PrintL2Title("%s (%s)", ui.ColorType(rec.Type), rec.Language)

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(recordRows(rec)).
		Render(); err != nil {
		return err
	}

	if rec.ParseError != "" {
		pterm.Warning.Println(rec.ParseError)
	}
	for _, note := range rec.Notes {
		pterm.Info.Println(note)
	}

	return nil
}

// recordRows lists the fields the record carries; absent ones are left out.
func recordRows(rec model.TransactionRecord) pterm.TableData {
	rows := pterm.TableData{{"Field", "Value"}}

	add := func(name, value string) {
		if value != "" {
			rows = append(rows, []string{name, value})
		}
	}
	addMoney := func(name string, d *decimal.Decimal) {
		if d != nil {
			add(name, utils.FormatAmount(*d))
		}
	}
	addTime := func(name string, t *time.Time, layout string) {
		if t != nil {
			add(name, t.Format(layout))
		}
	}

	add("Transaction ID", rec.TransactionID)
	add("Status", string(rec.Status))
	add("Failure", rec.FailureReason)
	addMoney("Amount", rec.Amount)
	add("Counterparty", rec.Counterparty)
	add("Phone", rec.CounterpartyPhone)
	add("Account", rec.AccountNumber)
	add("M-Shwari", rec.MShwariDirection)
	addTime("Date", rec.Timestamp, constants.DateTimeFormat)
	addMoney("Balance", rec.BalanceAfter)
	addMoney("M-Shwari balance", rec.MShwariBalance)
	addMoney("Cost", rec.Cost)
	addMoney("Daily limit", rec.DailyLimit)
	addMoney("Fuliza interest", rec.FulizaInterest)
	addMoney("Fuliza outstanding", rec.FulizaOutstanding)
	addMoney("Fuliza limit", rec.FulizaLimit)
	addTime("Fuliza due", rec.FulizaDueDate, constants.DateFormat)
	add("Rule", rec.Rule)
	if rec.Line > 0 {
		add("Line", strconv.Itoa(rec.Line))
	}

	return rows
}
