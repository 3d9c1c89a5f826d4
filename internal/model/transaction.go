package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

type TransactionType string

const (
	TypeFulizaUsage     TransactionType = "FulizaUsage"
	TypeFulizaRepayment TransactionType = "FulizaRepayment"
	TypeReceived        TransactionType = "Received"
	TypeSent            TransactionType = "Sent"
	TypeMShwari         TransactionType = "MShwari"
	TypeAirtimePurchase TransactionType = "AirtimePurchase"
	TypeWithdrawal      TransactionType = "Withdrawal"
	TypeBalanceCheck    TransactionType = "BalanceCheck"
	TypeUnknown         TransactionType = "Unknown"
)

// TransactionTypes lists every member of the enumeration in a stable order.
var TransactionTypes = []TransactionType{
	TypeFulizaUsage,
	TypeFulizaRepayment,
	TypeReceived,
	TypeSent,
	TypeMShwari,
	TypeAirtimePurchase,
	TypeWithdrawal,
	TypeBalanceCheck,
	TypeUnknown,
}

// HasCounterparty reports whether records of this type carry a counterparty.
func (t TransactionType) HasCounterparty() bool {
	switch t {
	case TypeSent, TypeReceived, TypeWithdrawal:
		return true
	}
	return false
}

// Status is empty when it could not be determined.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

var Statuses = []Status{StatusSuccess, StatusFailed}

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageSwahili Language = "Swahili"
)

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == LanguageSwahili {
		return language.Swahili
	}
	return language.English
}

// ParseLanguage accepts a language name ("Swahili") or a BCP 47 tag ("sw", "en-KE").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range []Language{LanguageEnglish, LanguageSwahili} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("unknown language %q", s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "sw":
		return LanguageSwahili, nil
	case "en":
		return LanguageEnglish, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

const (
	MShwariDeposit    = "deposit"
	MShwariWithdrawal = "withdrawal"
)

// TransactionRecord is the result of classifying one notification line.
// Optional values are nil (or empty strings) when the message does not carry them.
type TransactionRecord struct {
	Line          int
	TransactionID string
	Type          TransactionType
	Rule          string
	Status        Status
	FailureReason string

	Amount         *decimal.Decimal
	BalanceAfter   *decimal.Decimal
	MShwariBalance *decimal.Decimal
	Cost           *decimal.Decimal
	DailyLimit     *decimal.Decimal

	Counterparty      string
	CounterpartyPhone string
	AccountNumber     string
	Agent             string
	MShwariDirection  string

	FulizaInterest    *decimal.Decimal
	FulizaOutstanding *decimal.Decimal
	FulizaLimit       *decimal.Decimal
	FulizaDueDate     *time.Time

	Timestamp *time.Time
	Language  Language
	RawText   string
	Notes     []string

	ParseError string
}

// Matched reports whether a type-level rule matched the message.
func (r TransactionRecord) Matched() bool {
	return r.Type != TypeUnknown && r.Type != ""
}

// HasError reports whether extraction failed or was partial.
func (r TransactionRecord) HasError() bool {
	return r.ParseError != ""
}
