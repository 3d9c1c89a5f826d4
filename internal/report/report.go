// Package report builds and writes the JSON run report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/pesa/internal/model"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimals written for every monetary value.
const moneyPlaces = 2

type Report struct {
	RunID        string        `json:"run_id"`
	ProcessedAt  string        `json:"processed_at"`
	InputSource  string        `json:"input_source"`
	Transactions []Transaction `json:"transactions"`
	Summary      *Summary      `json:"summary,omitempty"`
}

type Transaction struct {
	Line              int         `json:"line,omitempty"`
	TransactionID     string      `json:"transaction_id,omitempty"`
	Type              string      `json:"type"`
	Rule              string      `json:"rule,omitempty"`
	Status            string      `json:"status,omitempty"`
	FailureReason     string      `json:"failure_reason,omitempty"`
	Amount            json.Number `json:"amount,omitempty"`
	BalanceAfter      json.Number `json:"balance_after,omitempty"`
	MShwariBalance    json.Number `json:"mshwari_balance,omitempty"`
	Cost              json.Number `json:"cost,omitempty"`
	DailyLimit        json.Number `json:"daily_limit,omitempty"`
	Counterparty      string      `json:"counterparty,omitempty"`
	CounterpartyPhone string      `json:"counterparty_phone,omitempty"`
	AccountNumber     string      `json:"account_number,omitempty"`
	Agent             string      `json:"agent,omitempty"`
	MShwariDirection  string      `json:"mshwari_direction,omitempty"`
	FulizaInterest    json.Number `json:"fuliza_interest,omitempty"`
	FulizaOutstanding json.Number `json:"fuliza_outstanding,omitempty"`
	FulizaLimit       json.Number `json:"fuliza_limit,omitempty"`
	FulizaDueDate     string      `json:"fuliza_due_date,omitempty"`
	Timestamp         string      `json:"timestamp,omitempty"`
	Language          string      `json:"language"`
	RawText           string      `json:"raw_text"`
	Notes             []string    `json:"notes,omitempty"`
	ParseError        string      `json:"parse_error,omitempty"`
}

type Summary struct {
	TotalTransactions int            `json:"total_transactions"`
	ByStatus          map[string]int `json:"by_status"`
	NoStatus          int            `json:"no_status"`
	ByType            map[string]int `json:"by_type"`
	WithParseError    int            `json:"with_parse_error"`
	TotalAmount       json.Number    `json:"total_amount"`
	AmountCount       int            `json:"amount_count"`
	AverageAmount     json.Number    `json:"average_amount"`
	TotalCost         json.Number    `json:"total_cost"`
}

// New assembles the report for one run. summary may be nil.
func New(source string, records []model.TransactionRecord, summary *model.SummaryStatistics, now time.Time) Report {
	r := Report{
		RunID:        uuid.NewString(),
		ProcessedAt:  now.Format(time.RFC3339),
		InputSource:  source,
		Transactions: make([]Transaction, 0, len(records)),
	}

	for i := range records {
		r.Transactions = append(r.Transactions, newTransaction(&records[i]))
	}

	if summary != nil {
		r.Summary = newSummary(summary)
	}

	return r
}

func newTransaction(rec *model.TransactionRecord) Transaction {
	return Transaction{
		Line:              rec.Line,
		TransactionID:     rec.TransactionID,
		Type:              string(rec.Type),
		Rule:              rec.Rule,
		Status:            string(rec.Status),
		FailureReason:     rec.FailureReason,
		Amount:            money(rec.Amount),
		BalanceAfter:      money(rec.BalanceAfter),
		MShwariBalance:    money(rec.MShwariBalance),
		Cost:              money(rec.Cost),
		DailyLimit:        money(rec.DailyLimit),
		Counterparty:      rec.Counterparty,
		CounterpartyPhone: rec.CounterpartyPhone,
		AccountNumber:     rec.AccountNumber,
		Agent:             rec.Agent,
		MShwariDirection:  rec.MShwariDirection,
		FulizaInterest:    money(rec.FulizaInterest),
		FulizaOutstanding: money(rec.FulizaOutstanding),
		FulizaLimit:       money(rec.FulizaLimit),
		FulizaDueDate:     timestamp(rec.FulizaDueDate),
		Timestamp:         timestamp(rec.Timestamp),
		Language:          string(rec.Language),
		RawText:           rec.RawText,
		Notes:             rec.Notes,
		ParseError:        rec.ParseError,
	}
}

func newSummary(s *model.SummaryStatistics) *Summary {
	out := &Summary{
		TotalTransactions: s.Total,
		ByStatus:          make(map[string]int, len(s.ByStatus)),
		NoStatus:          s.NoStatus,
		ByType:            make(map[string]int, len(s.ByType)),
		WithParseError:    s.WithParseError,
		TotalAmount:       json.Number(s.TotalAmount.StringFixed(moneyPlaces)),
		AmountCount:       s.AmountCount,
		AverageAmount:     json.Number(s.AverageAmount.StringFixed(moneyPlaces)),
		TotalCost:         json.Number(s.TotalCost.StringFixed(moneyPlaces)),
	}
	for k, v := range s.ByStatus {
		out.ByStatus[string(k)] = v
	}
	for k, v := range s.ByType {
		out.ByType[string(k)] = v
	}
	return out
}

func money(d *decimal.Decimal) json.Number {
	if d == nil {
		return ""
	}
	return json.Number(d.StringFixed(moneyPlaces))
}

func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Write encodes r as JSON. indent is the number of spaces per level; 0 writes compact JSON.
func Write(w io.Writer, r Report, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteFile writes r to path, replacing any existing file.
func WriteFile(path string, r Report, indent int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return Write(f, r, indent)
}
