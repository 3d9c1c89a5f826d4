package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSummaryStatistics(t *testing.T) {
	s := NewSummaryStatistics()

	assert.Len(t, s.ByType, len(TransactionTypes))
	assert.Len(t, s.ByStatus, len(Statuses))
	assert.True(t, s.AverageAmount.IsZero())
}

func TestSummaryStatistics_Merge(t *testing.T) {
	a := NewSummaryStatistics()
	a.Total = 2
	a.ByType[TypeSent] = 2
	a.ByStatus[StatusSuccess] = 2
	a.TotalAmount = decimal.NewFromInt(100)
	a.AmountCount = 2
	a.RecomputeAverage()

	b := NewSummaryStatistics()
	b.Total = 1
	b.ByType[TypeUnknown] = 1
	b.NoStatus = 1
	b.WithParseError = 1
	b.TotalAmount = decimal.NewFromInt(200)
	b.AmountCount = 1
	b.TotalCost = decimal.RequireFromString("7.50")
	b.RecomputeAverage()

	m := a.Merge(b)

	assert.Equal(t, 3, m.Total)
	assert.Equal(t, 2, m.ByType[TypeSent])
	assert.Equal(t, 1, m.ByType[TypeUnknown])
	assert.Equal(t, 1, m.NoStatus)
	assert.Equal(t, 1, m.WithParseError)
	assert.Equal(t, 3, m.AmountCount)
	assert.Equal(t, "300", m.TotalAmount.String())
	assert.Equal(t, "100", m.AverageAmount.String())
	assert.Equal(t, "7.5", m.TotalCost.String())

	// inputs are untouched
	assert.Equal(t, 2, a.Total)
	assert.Equal(t, 0, a.ByType[TypeUnknown])
}

func TestSummaryStatistics_AverageRounds(t *testing.T) {
	s := NewSummaryStatistics()
	s.TotalAmount = decimal.NewFromInt(10)
	s.AmountCount = 3
	s.RecomputeAverage()

	assert.Equal(t, "3.33", s.AverageAmount.String())
}
