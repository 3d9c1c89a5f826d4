package views

import (
	"fmt"

	"github.com/hance08/pesa/internal/constants"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/ui"
	"github.com/hance08/pesa/internal/utils"
	"github.com/pterm/pterm"
)

const maxErrorWidth = 40

func RenderRecordList(records []model.TransactionRecord) error {
	if len(records) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Line", "Type", "Status", "Amount", "Counterparty", "Date", "Problem"},
	}

	for _, rec := range records {
		date := "-"
		if rec.Timestamp != nil {
			date = rec.Timestamp.Format(constants.DateTimeFormat)
		}
		counterparty := rec.Counterparty
		if counterparty == "" {
			counterparty = "-"
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", rec.Line),
			ui.ColorType(rec.Type),
			ui.ColorStatus(rec.Status),
			utils.FormatOptional(rec.Amount),
			counterparty,
			date,
			truncate(rec.ParseError, maxErrorWidth),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(records))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
