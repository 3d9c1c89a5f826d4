// Package classifier turns one M-PESA notification line into a TransactionRecord.
//
// Classification is a pure function of the line and the fixed rule table:
// no state is kept between calls, so a Classifier may be shared freely
// between goroutines.
package classifier

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hance08/pesa/internal/model"
	"github.com/shopspring/decimal"
)

const (
	ErrMsgEmpty   = "empty message"
	ErrMsgNoMatch = "no matching pattern"

	NoteStatusAssumed = "no confirmation or failure phrase; status assumed Success"
)

type Classifier struct {
	rules []Rule
}

// New returns a classifier over the default rule table.
func New() *Classifier {
	return &Classifier{rules: defaultRules}
}

// NewWithRules returns a classifier over a custom rule table, evaluated in order.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

var std = New()

// Classify classifies a line with the default rule table.
func Classify(line string) model.TransactionRecord {
	return std.Classify(line)
}

// Classify always returns exactly one record. Lines that match no rule come
// back as Unknown with ParseError set; fields that cannot be read are left
// empty and listed in ParseError.
func (c *Classifier) Classify(line string) (rec model.TransactionRecord) {
	defer func() {
		if r := recover(); r != nil {
			rec = model.TransactionRecord{
				Type:       model.TypeUnknown,
				Language:   model.LanguageEnglish,
				RawText:    line,
				ParseError: fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	rec = model.TransactionRecord{
		Type:     model.TypeUnknown,
		Language: model.LanguageEnglish,
		RawText:  line,
	}

	text := normalize(line)
	if text == "" {
		rec.ParseError = ErrMsgEmpty
		return rec
	}

	rec.Language = DetectLanguage(text)
	status, reason, conclusive := detectStatus(text)

	rule, captures, ok := c.dispatch(text, rec.Language)
	if !ok {
		rec.ParseError = ErrMsgNoMatch
		// A failure notice is still worth reporting as Failed.
		if conclusive && status == model.StatusFailed {
			rec.Status = status
			rec.FailureReason = reason
		}
		return rec
	}

	rec.Type = rule.Type
	rec.Rule = rule.Name
	rec.Status = status
	if status == model.StatusFailed {
		rec.FailureReason = reason
	}
	if !conclusive {
		rec.Notes = append(rec.Notes, NoteStatusAssumed)
	}

	var errs fieldErrors
	if rule.Extract != nil {
		rule.Extract(captures, &rec, &errs)
	}
	if !rec.Type.HasCounterparty() {
		rec.Counterparty = ""
		rec.CounterpartyPhone = ""
	}

	rec.TransactionID = extractTransactionID(text)
	extractMoneyFields(text, &rec, &errs)
	if rec.Cost == nil {
		zero := decimal.Zero
		rec.Cost = &zero
	}

	if ts, found, err := extractTimestamp(text); err != nil {
		errs.add("timestamp", err)
	} else if found {
		rec.Timestamp = &ts
	}

	if rec.Type == model.TypeFulizaUsage || rec.Type == model.TypeFulizaRepayment {
		if due, found, err := extractDueDate(text); err != nil {
			errs.add("fuliza_due_date", err)
		} else if found {
			rec.FulizaDueDate = &due
		}
	}

	rec.ParseError = errs.String()
	return rec
}

func (c *Classifier) dispatch(text string, lang model.Language) (Rule, Captures, bool) {
	for _, r := range c.rules {
		if r.Language != lang {
			continue
		}
		if captures, ok := r.match(text); ok {
			return r, captures, true
		}
	}
	return Rule{}, nil, false
}

// normalize drops invalid UTF-8, control characters and a leading BOM, and
// collapses whitespace runs to single spaces.
func normalize(line string) string {
	line = strings.TrimPrefix(line, "\ufeff")
	if !utf8.ValidString(line) {
		line = strings.ToValidUTF8(line, " ")
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, line)

	return strings.Join(strings.Fields(cleaned), " ")
}
