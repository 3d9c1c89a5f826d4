package cmd

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hance08/pesa/internal/logger"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/report"
	"github.com/hance08/pesa/internal/service"
	"github.com/hance08/pesa/internal/source"
	"github.com/hance08/pesa/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errListNeedsOutput = errors.New("--list needs --output; stdout is reserved for the JSON report")

type parseFlags struct {
	Output string
	List   bool
}

type parseRunner struct {
	deps  *deps
	flags *parseFlags
	input string
	out   io.Writer
}

func NewParseCmd(d *deps) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:     "parse INPUT",
		Aliases: []string{"p"},
		Short:   "Parse a file of M-PESA messages into a JSON report",
		Long: `Parse a text file with one M-PESA notification per line.

Every non-blank line becomes one transaction record in the report, in input
order. Lines that match no known message shape are reported as Unknown with a
parse error instead of stopping the run. Use "-" to read from stdin.`,
		Example: `  # Print the report to stdout
  pesa parse messages.txt

  # Write the report to a file and show the summary
  pesa parse messages.txt -o report.json --summary

  # Read from stdin with 4 workers
  cat messages.txt | pesa parse - -w 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &parseRunner{
				deps:  d,
				flags: flags,
				input: args[0],
				out:   cmd.OutOrStdout(),
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the JSON report to this file instead of stdout")
	cmd.Flags().BoolVarP(&flags.List, "list", "l", false, "Show the parsed records as a table (requires --output)")
	cmd.Flags().BoolP("summary", "s", false, "Include summary statistics in the report")
	cmd.Flags().IntP("workers", "w", 0, "Number of lines classified in parallel")
	_ = viper.BindPFlag("report.summary", cmd.Flags().Lookup("summary"))
	_ = viper.BindPFlag("parser.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func (r *parseRunner) Run(ctx context.Context) error {
	if r.flags.List && r.flags.Output == "" {
		return errListNeedsOutput
	}

	src, err := source.Open(r.input)
	if err != nil {
		return err
	}

	log := r.deps.app.Logger
	ctx = logger.WithContext(ctx, log)
	batch := r.deps.app.Service.Batch

	log.Info().Str("input", src.Name()).Int("workers", batch.Workers()).Msg("parse started")

	records, err := batch.ProcessSource(ctx, src)
	if err != nil {
		return err
	}

	var summary *model.SummaryStatistics
	if r.deps.cfg.Report.Summary {
		s := service.Aggregate(records)
		summary = &s
	}

	rep := report.New(src.Name(), records, summary, time.Now())
	indent := r.deps.cfg.Report.Indent

	// stdout carries only the report
	if r.flags.Output == "" {
		return report.Write(r.out, rep, indent)
	}

	if err := report.WriteFile(r.flags.Output, rep, indent); err != nil {
		return err
	}
	log.Info().Str("output", r.flags.Output).Int("records", len(records)).Msg("report written")

	if r.flags.List {
		if err := views.RenderRecordList(records); err != nil {
			return err
		}
	}

	pterm.Success.Printf("Wrote %d records to %s\n", len(records), r.flags.Output)
	if unknown := countUnknown(records); unknown > 0 {
		pterm.Warning.Printf("%d lines could not be classified\n", unknown)
	}

	if summary != nil {
		return views.RenderSummary(*summary)
	}
	return nil
}

func countUnknown(records []model.TransactionRecord) int {
	n := 0
	for _, rec := range records {
		if !rec.Matched() {
			n++
		}
	}
	return n
}
