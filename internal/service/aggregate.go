package service

import (
	"github.com/hance08/pesa/internal/model"
)

// Aggregate reduces records into summary statistics in a single pass.
// Amounts count only for successful records that carry one; costs count
// for every record that carries one.
func Aggregate(records []model.TransactionRecord) model.SummaryStatistics {
	s := model.NewSummaryStatistics()

	for i := range records {
		rec := &records[i]
		s.Total++
		s.ByType[rec.Type]++

		if rec.Status == "" {
			s.NoStatus++
		} else {
			s.ByStatus[rec.Status]++
		}

		if rec.HasError() {
			s.WithParseError++
		}

		if rec.Amount != nil && rec.Status == model.StatusSuccess {
			s.TotalAmount = s.TotalAmount.Add(*rec.Amount)
			s.AmountCount++
		}

		if rec.Cost != nil {
			s.TotalCost = s.TotalCost.Add(*rec.Cost)
		}
	}

	s.RecomputeAverage()
	return s
}
