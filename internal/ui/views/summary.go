package views

import (
	"github.com/dustin/go-humanize"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/ui"
	"github.com/hance08/pesa/internal/utils"
	"github.com/pterm/pterm"
)

func RenderSummary(s model.SummaryStatistics) error {
	pterm.DefaultSection.Println("Summary")

	if s.Total == 0 {
		pterm.Warning.Println("No transactions processed")
		return nil
	}

	totals := pterm.TableData{
		{"Transactions", humanize.Comma(int64(s.Total))},
		{"Success", humanize.Comma(int64(s.ByStatus[model.StatusSuccess]))},
		{"Failed", humanize.Comma(int64(s.ByStatus[model.StatusFailed]))},
		{"No status", humanize.Comma(int64(s.NoStatus))},
		{"With parse errors", humanize.Comma(int64(s.WithParseError))},
		{"Total amount", utils.FormatAmount(s.TotalAmount)},
		{"Average amount", utils.FormatAmount(s.AverageAmount)},
		{"Total cost", utils.FormatAmount(s.TotalCost)},
	}
	if err := pterm.DefaultTable.WithData(totals).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("By type")

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithRightAlignment().
		WithData(typeRows(s)).
		Render(); err != nil {
		return err
	}

	return nil
}

// typeRows keeps the enumeration order and shows zero counts.
func typeRows(s model.SummaryStatistics) pterm.TableData {
	rows := pterm.TableData{{"Type", "Count", "Share"}}
	for _, t := range model.TransactionTypes {
		n := s.ByType[t]
		share := "-"
		if s.Total > 0 {
			share = humanize.FtoaWithDigits(float64(n)*100/float64(s.Total), 1) + "%"
		}
		rows = append(rows, []string{ui.ColorType(t), humanize.Comma(int64(n)), share})
	}
	return rows
}
