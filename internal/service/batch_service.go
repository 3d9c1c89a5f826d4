package service

import (
	"context"
	"fmt"

	"github.com/hance08/pesa/internal/logger"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/source"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type BatchService struct {
	classifier Classifier
	workers    int
}

// NewBatchService returns a batch service classifying up to workers lines at
// once. workers below 2 means strictly sequential processing.
func NewBatchService(cls Classifier, workers int) *BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchService{classifier: cls, workers: workers}
}

func (bs *BatchService) Workers() int {
	return bs.workers
}

// Process classifies lines and returns one record per line in input order.
// Line numbers are the 1-based positions in lines. The only error is ctx's.
func (bs *BatchService) Process(ctx context.Context, lines []string) ([]model.TransactionRecord, error) {
	numbered := make([]source.Line, len(lines))
	for i, l := range lines {
		numbered[i] = source.Line{Number: i + 1, Text: l}
	}
	return bs.process(ctx, numbered)
}

// ProcessSource reads every line of src and processes them like Process,
// keeping the source's line numbers.
func (bs *BatchService) ProcessSource(ctx context.Context, src source.Source) ([]model.TransactionRecord, error) {
	lines, err := src.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}
	return bs.process(ctx, lines)
}

func (bs *BatchService) process(ctx context.Context, lines []source.Line) ([]model.TransactionRecord, error) {
	records := make([]model.TransactionRecord, len(lines))

	if bs.workers < 2 || len(lines) < 2 {
		for i, l := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			records[i] = bs.classify(l)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(bs.workers)
		for i, l := range lines {
			if gctx.Err() != nil {
				break
			}
			i, l := i, l
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				records[i] = bs.classify(l)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	log := logger.FromContext(ctx)
	for i := range records {
		logRecord(log, &records[i])
	}

	return records, nil
}

func (bs *BatchService) classify(l source.Line) model.TransactionRecord {
	rec := bs.classifier.Classify(l.Text)
	rec.Line = l.Number
	return rec
}

func logRecord(log zerolog.Logger, rec *model.TransactionRecord) {
	ev := log.Info()
	if !rec.Matched() || rec.HasError() {
		ev = log.Warn()
	}

	ev = ev.Int("line", rec.Line).
		Str("type", string(rec.Type)).
		Str("language", string(rec.Language))
	if rec.Status != "" {
		ev = ev.Str("status", string(rec.Status))
	}
	if rec.Rule != "" {
		ev = ev.Str("rule", rec.Rule)
	}
	if rec.ParseError != "" {
		ev = ev.Str("parse_error", rec.ParseError)
	}
	ev.Msg("classified")

	for _, note := range rec.Notes {
		log.Debug().Int("line", rec.Line).Msg(note)
	}
}
