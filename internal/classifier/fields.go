package classifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/hance08/pesa/internal/constants"
	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/utils"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

var (
	errNotFound  = errors.New("not found in message")
	errNotNumber = errors.New("phrase present but no numeric value follows")
)

// fieldErrors collects per-field extraction failures of one message.
type fieldErrors struct {
	err *multierror.Error
}

func (f *fieldErrors) add(field string, err error) {
	f.err = multierror.Append(f.err, fmt.Errorf("%s: %w", field, err))
}

func (f *fieldErrors) String() string {
	if f.err == nil {
		return ""
	}
	f.err.ErrorFormat = func(es []error) string {
		msgs := make([]string, 0, len(es))
		for _, e := range es {
			msgs = append(msgs, e.Error())
		}
		return strings.Join(msgs, "; ")
	}
	return f.err.Error()
}

// valueTail follows a phrase: optional currency, then the number.
// The number group is optional so that a phrase followed by garbage is
// reported instead of silently skipped.
const valueTail = `\s*:?\s*(?:Ksh|KES)?\.?\s*(?P<value>\d[\d,]*(?:\.\d+)?)?`

// moneyField is an auxiliary value found anywhere in the message.
type moneyField struct {
	name     string
	patterns []*regexp.Regexp
	get      func(*model.TransactionRecord) **decimal.Decimal
}

func phrase(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr + valueTail)
}

var moneyFields = []moneyField{
	{
		name: "balance_after",
		patterns: []*regexp.Regexp{
			phrase(`(?:New\s+)?M-?PESA\s+balance\s+is`),
			phrase(`(?:Salio|Baki)\s+(?:(?:jipya|mpya|yako|lako)\s+){0,2}(?:(?:la|ya|katika)\s+)?(?:M-?PESA\s+)?ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.BalanceAfter },
	},
	{
		name: "mshwari_balance",
		patterns: []*regexp.Regexp{
			phrase(`M-?Shwari\s+(?:saving\s+)?(?:account\s+)?balance\s+is`),
			phrase(`(?:Salio|Baki)\s+(?:la|ya)\s+(?:akaunti\s+ya\s+)?M-?Shwari\s+ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.MShwariBalance },
	},
	{
		name: "cost",
		patterns: []*regexp.Regexp{
			phrase(`Transaction\s+cost,?`),
			phrase(`Gharama\s+ya\s+(?:(?:kutuma|kununua|matumizi|kulipa|kutoa)\s+)?ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.Cost },
	},
	{
		name: "daily_limit",
		patterns: []*regexp.Regexp{
			phrase(`Amount\s+you\s+can\s+transact\s+within\s+the\s+day\s+is`),
			phrase(`Kiwango\s+cha\s+Pesa\s+unachoweza\s+kutuma\s+kwa\s+siku\s+ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.DailyLimit },
	},
	{
		name: "fuliza_interest",
		patterns: []*regexp.Regexp{
			phrase(`(?:Interest|Access\s+Fee)\s+charged`),
			phrase(`Ada\s+ya\s+(?:Fuliza|kupata)\s+ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.FulizaInterest },
	},
	{
		name: "fuliza_outstanding",
		patterns: []*regexp.Regexp{
			phrase(`Total\s+Fuliza\s+M-?PESA\s+outstanding\s+amount\s+is`),
			phrase(`Jumla\s+ya\s+deni\s+la\s+Fuliza\s+M-?PESA\s+ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.FulizaOutstanding },
	},
	{
		name: "fuliza_limit",
		patterns: []*regexp.Regexp{
			phrase(`(?:Available\s+)?Fuliza\s+M-?PESA\s+limit\s+is`),
			phrase(`Kiwango\s+cha\s+Fuliza\s+M-?PESA\s+(?:kinachopatikana\s+)?ni`),
		},
		get: func(r *model.TransactionRecord) **decimal.Decimal { return &r.FulizaLimit },
	},
}

// extractMoneyFields fills auxiliary values that the rule did not set.
func extractMoneyFields(text string, rec *model.TransactionRecord, errs *fieldErrors) {
	for _, f := range moneyFields {
		dst := f.get(rec)
		if *dst != nil {
			continue
		}
		for _, re := range f.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			raw := m[re.SubexpIndex("value")]
			if raw == "" {
				errs.add(f.name, errNotNumber)
				break
			}
			v, err := utils.ParseAmount(raw)
			if err != nil {
				errs.add(f.name, err)
				break
			}
			*dst = &v
			break
		}
	}
}

var transactionIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z0-9]{10})\b\s*(?i:confirmed|imethibitishwa)`),
	regexp.MustCompile(`^([A-Z0-9]{10})\b`),
}

// extractTransactionID returns the confirmation code, or "" if the message has none.
func extractTransactionID(text string) string {
	for _, re := range transactionIDPatterns {
		m := re.FindStringSubmatch(text)
		if m != nil && isConfirmationCode(m[1]) {
			return m[1]
		}
	}
	return ""
}

func isConfirmationCode(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLetter(r):
			letter = true
		}
	}
	return letter && digit
}

const (
	datePart = `(?P<date>\d{1,2}/\d{1,2}/\d{2,4})`
	timePart = `(?P<time>\d{1,2}:\d{2}\s*[AaPp][Mm])`
)

var (
	// "due on" dates belong to Fuliza, not to the transaction time.
	englishTimestamp = regexp.MustCompile(`(?i)(?:(?P<due>due)\s+)?\bon\s+` + datePart + `(?:\s+at\s+` + timePart + `)?`)
	swahiliTimestamp = regexp.MustCompile(`(?i)\b(?:tarehe|siku|mnamo)\s+` + datePart + `(?:\s+(?:saa\s+)?` + timePart + `)?`)
	bareTimestamp    = regexp.MustCompile(`\b` + datePart + `\s+(?:at\s+|saa\s+)?` + timePart)

	fulizaDueDate = regexp.MustCompile(`(?i)(?:due\s+on|kabla\s+ya|tarehe\s+ya\s+mwisho)\s+` + datePart)

	meridiem = regexp.MustCompile(`(?i)(\d)\s*([ap]m)$`)
)

var eat = time.FixedZone(constants.EATName, constants.EATOffset)

// extractTimestamp reports ok=false when no date is present at all.
func extractTimestamp(text string) (ts time.Time, ok bool, err error) {
	for _, m := range englishTimestamp.FindAllStringSubmatch(text, -1) {
		if m[englishTimestamp.SubexpIndex("due")] != "" {
			continue
		}
		ts, err = parseMessageTime(m[englishTimestamp.SubexpIndex("date")], m[englishTimestamp.SubexpIndex("time")])
		return ts, true, err
	}

	for _, re := range []*regexp.Regexp{swahiliTimestamp, bareTimestamp} {
		if m := re.FindStringSubmatch(text); m != nil {
			ts, err = parseMessageTime(m[re.SubexpIndex("date")], m[re.SubexpIndex("time")])
			return ts, true, err
		}
	}

	return time.Time{}, false, nil
}

func extractDueDate(text string) (time.Time, bool, error) {
	m := fulizaDueDate.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, nil
	}
	ts, err := parseMessageTime(m[fulizaDueDate.SubexpIndex("date")], "")
	return ts, true, err
}

// parseMessageTime reads day-first dates ("1/2/24" is 1 February 2024).
func parseMessageTime(date, clock string) (time.Time, error) {
	layout := "2/1/06"
	if parts := strings.Split(date, "/"); len(parts) == 3 && len(parts[2]) == 4 {
		layout = "2/1/2006"
	}

	value := date
	if clock != "" {
		layout += " 3:04 PM"
		value += " " + strings.ToUpper(meridiem.ReplaceAllString(strings.TrimSpace(clock), "$1 $2"))
	}

	ts, err := time.ParseInLocation(layout, value, eat)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", strings.TrimSpace(date+" "+clock))
	}
	return ts, nil
}
