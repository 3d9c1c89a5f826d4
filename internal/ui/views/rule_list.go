package views

import (
	"fmt"

	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/ui"
	"github.com/pterm/pterm"
)

type RuleListItem struct {
	Priority int
	Name     string
	Type     model.TransactionType
	Language model.Language
	Patterns int
}

func RenderRuleList(items []RuleListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No rules found")
		return nil
	}

	tableData := pterm.TableData{
		{"#", "Rule", "Type", "Language", "Patterns"},
	}
	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.Priority),
			item.Name,
			ui.ColorType(item.Type),
			string(item.Language),
			fmt.Sprintf("%d", item.Patterns),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
