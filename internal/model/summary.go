package model

import "github.com/shopspring/decimal"

// AveragePlaces is the number of decimal places kept for AverageAmount.
const AveragePlaces = 2

// SummaryStatistics is derived from a sequence of records and recomputed per run.
type SummaryStatistics struct {
	Total          int
	ByStatus       map[Status]int
	NoStatus       int
	ByType         map[TransactionType]int
	WithParseError int

	TotalAmount   decimal.Decimal
	AmountCount   int
	AverageAmount decimal.Decimal
	TotalCost     decimal.Decimal
}

// NewSummaryStatistics returns an empty summary with every status and type present at zero.
func NewSummaryStatistics() SummaryStatistics {
	s := SummaryStatistics{
		ByStatus: make(map[Status]int, len(Statuses)),
		ByType:   make(map[TransactionType]int, len(TransactionTypes)),
	}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	for _, t := range TransactionTypes {
		s.ByType[t] = 0
	}
	return s
}

// Merge combines two summaries. The result equals the summary of the
// concatenated record sequences.
func (s SummaryStatistics) Merge(o SummaryStatistics) SummaryStatistics {
	out := NewSummaryStatistics()
	out.Total = s.Total + o.Total
	out.NoStatus = s.NoStatus + o.NoStatus
	out.WithParseError = s.WithParseError + o.WithParseError
	for k, v := range s.ByStatus {
		out.ByStatus[k] += v
	}
	for k, v := range o.ByStatus {
		out.ByStatus[k] += v
	}
	for k, v := range s.ByType {
		out.ByType[k] += v
	}
	for k, v := range o.ByType {
		out.ByType[k] += v
	}
	out.TotalAmount = s.TotalAmount.Add(o.TotalAmount)
	out.AmountCount = s.AmountCount + o.AmountCount
	out.TotalCost = s.TotalCost.Add(o.TotalCost)
	out.AverageAmount = average(out.TotalAmount, out.AmountCount)
	return out
}

func average(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(n)), AveragePlaces)
}

// RecomputeAverage refreshes AverageAmount from TotalAmount and AmountCount.
func (s *SummaryStatistics) RecomputeAverage() {
	s.AverageAmount = average(s.TotalAmount, s.AmountCount)
}
