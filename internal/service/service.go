package service

import (
	"github.com/hance08/pesa/internal/config"
	"github.com/hance08/pesa/internal/model"
)

// Classifier turns one message line into a record.
type Classifier interface {
	Classify(line string) model.TransactionRecord
}

type Service struct {
	Batch *BatchService
}

func NewService(cls Classifier, cfg *config.Config) *Service {
	return &Service{
		Batch: NewBatchService(cls, cfg.Parser.Workers),
	}
}
