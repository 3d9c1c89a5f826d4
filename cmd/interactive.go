package cmd

import (
	"context"
	"strings"

	"github.com/hance08/pesa/internal/constants"
	"github.com/hance08/pesa/internal/errhandler"
	"github.com/hance08/pesa/internal/logger"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/service"
	"github.com/hance08/pesa/internal/ui"
	"github.com/hance08/pesa/internal/ui/prompts"
	"github.com/hance08/pesa/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type interactiveRunner struct {
	deps *deps

	// replaced in tests
	prompt  func() (string, error)
	confirm func(message string, defaultValue bool) (bool, error)
}

func NewInteractiveCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Classify messages typed or pasted one at a time",
		Long: `Start an interactive session. Each message you enter is classified and its
fields are shown immediately. Type quit or exit, or press Ctrl-C, to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &interactiveRunner{
				deps:    d,
				prompt:  prompts.PromptMessage,
				confirm: prompts.PromptConfirm,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *interactiveRunner) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, r.deps.app.Logger)
	batch := r.deps.app.Service.Batch

	ui.PrintL1Title("M-PESA message parser")
	pterm.Info.Println("Type quit or exit to finish")

	session := model.NewSummaryStatistics()
	line := 0

	for {
		msg, err := r.prompt()
		if errhandler.IsCancel(err) {
			break
		}
		if err != nil {
			return err
		}

		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		if isQuit(msg) {
			break
		}

		records, err := batch.Process(ctx, []string{msg})
		if err != nil {
			return err
		}
		line++
		rec := records[0]
		rec.Line = line

		if err := views.RenderRecord(rec); err != nil {
			return err
		}
		printSeparator()

		session = session.Merge(service.Aggregate([]model.TransactionRecord{rec}))
	}

	if session.Total == 0 {
		return nil
	}

	show, err := r.confirm("Show session summary?", true)
	if errhandler.IsCancel(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if show {
		return views.RenderSummary(session)
	}
	return nil
}

func isQuit(msg string) bool {
	return strings.EqualFold(msg, constants.CmdQuit) || strings.EqualFold(msg, constants.CmdExit)
}
