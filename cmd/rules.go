package cmd

import (
	"github.com/hance08/pesa/internal/classifier"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/ui/views"
	"github.com/spf13/cobra"
)

type rulesFlags struct {
	Language string
}

type rulesRunner struct {
	flags *rulesFlags
}

func NewRulesCmd() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the classification rules in priority order",
		Long: `List the classification rules. A message is matched against the rules of
its detected language from top to bottom; the first match decides its type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &rulesRunner{flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Language, "language", "L", "", "Only show rules for this language (e.g. sw, en, Swahili)")

	return cmd
}

func (r *rulesRunner) Run() error {
	items, err := r.items()
	if err != nil {
		return err
	}
	return views.RenderRuleList(items)
}

func (r *rulesRunner) items() ([]views.RuleListItem, error) {
	var lang model.Language
	if r.flags.Language != "" {
		l, err := model.ParseLanguage(r.flags.Language)
		if err != nil {
			return nil, err
		}
		lang = l
	}

	var items []views.RuleListItem
	for i, rule := range classifier.Rules() {
		if lang != "" && rule.Language != lang {
			continue
		}
		items = append(items, views.RuleListItem{
			Priority: i + 1,
			Name:     rule.Name,
			Type:     rule.Type,
			Language: rule.Language,
			Patterns: len(rule.Patterns),
		})
	}
	return items, nil
}
