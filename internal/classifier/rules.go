package classifier

import (
	"regexp"
	"strings"

	"github.com/hance08/pesa/internal/model"
	"github.com/hance08/pesa/internal/utils"
)

// Rule binds a transaction type and language to the message shapes that
// identify it. The first matching pattern of the first matching rule wins.
type Rule struct {
	Name     string
	Type     model.TransactionType
	Language model.Language
	Patterns []*regexp.Regexp
	Extract  ExtractFunc
}

// Captures holds the named groups of the pattern that matched.
type Captures map[string]string

// ExtractFunc copies rule-specific captures into the record.
type ExtractFunc func(c Captures, rec *model.TransactionRecord, errs *fieldErrors)

func (r Rule) match(text string) (Captures, bool) {
	for _, re := range r.Patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		c := make(Captures, len(m))
		for i, name := range re.SubexpNames() {
			if name != "" && m[i] != "" {
				c[name] = strings.TrimSpace(m[i])
			}
		}
		return c, true
	}
	return nil, false
}

// Building blocks shared by the patterns below. Amounts take any run of
// digits, commas and dots so a malformed value is reported, not skipped.
// Names may contain dots ("MARY W. NJERI"); a dot ends one only before a
// new sentence.
const (
	amt      = `(?:Ksh|KES)\.?\s?(?P<amount>\d[\d,.]*\d|\d)`
	optAmt   = `(?:(?:Ksh|KES)\.?\s?(?P<amount>\d[\d,.]*\d|\d))?`
	party    = `(?P<party>[^0-9,]+?)`
	phone    = `(?:\s+(?P<phone>\+?\d{9,12}))?`
	bankAcct = `(?:\s+(?P<phone>\d{6,12}))?`
	sentence = `\.\s*(?:New|Transaction|Amount|Salio|Baki|Gharama|Kiwango)\b|\.\s+(?-i:[A-Z][a-z])`
	enEnd    = `(?:\.?\s+on\s|\.?\s+at\s|\s+\d{1,2}/|` + sentence + `|,|\.?\s*$)`
	swEnd    = `(?:\s+(?:tarehe|siku|mnamo|saa)\s|\s+\d{1,2}/|` + sentence + `|,|\.?\s*$)`
)

func pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// defaultRules is the fixed, ordered rule table. Fuliza repayment comes
// before the transfer rules because its text also reads like a payment.
var defaultRules = []Rule{
	{
		Name:     "fuliza-repayment-en",
		Type:     model.TypeFulizaRepayment,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+from\s+your\s+M-?PESA\s+has\s+been\s+used\s+to\s+(?:fully\s+|partially\s+)?pay\s+(?:your\s+)?(?:outstanding\s+)?Fuliza`),
		},
		Extract: extractAmount,
	},
	{
		Name:     "fuliza-repayment-sw",
		Type:     model.TypeFulizaRepayment,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+kutoka\s+(?:kwa\s+)?M-?PESA\s+(?:yako\s+)?(?:imetumika|zimetumika)\s+kulipa\s+(?:deni\s+(?:la|lako\s+la)\s+)?Fuliza`),
		},
		Extract: extractAmount,
	},
	{
		Name:     "fuliza-usage-en",
		Type:     model.TypeFulizaUsage,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(`Fuliza\s+M-?PESA\s+amount\s+is\s+` + amt),
		},
		Extract: extractAmount,
	},
	{
		Name:     "fuliza-usage-sw",
		Type:     model.TypeFulizaUsage,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(`Kiasi\s+cha\s+Fuliza\s+M-?PESA\s+(?:ulichotumia\s+)?ni\s+` + amt),
		},
		Extract: extractAmount,
	},
	{
		Name:     "mshwari-en",
		Type:     model.TypeMShwari,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+transferred\s+(?P<direction>from|to)\s+M-?Shwari\s+account`),
		},
		Extract: extractMShwari,
	},
	{
		Name:     "mshwari-sw",
		Type:     model.TypeMShwari,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+(?:imehamishwa|zimehamishwa)\s+(?P<direction>kutoka|kwa|kwenda)\s+(?:akaunti\s+ya\s+)?M-?Shwari`),
		},
		Extract: extractMShwari,
	},
	{
		Name:     "airtime-en",
		Type:     model.TypeAirtimePurchase,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(`You\s+bought\s+` + amt + `\s+of\s+airtime(?:\s+for\s+(?P<account>\d{9,12}))?`),
			pattern(`to\s+buy\s+` + optAmt + `\s*(?:of\s+)?airtime`),
		},
		Extract: extractAmount,
	},
	{
		Name:     "airtime-sw",
		Type:     model.TypeAirtimePurchase,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(`Umenunua\s+` + amt + `\s+ya\s+(?:mjazo|muda\s+wa\s+maongezi)(?:\s+(?:kwa|ya)\s+(?P<account>\d{9,12}))?`),
		},
		Extract: extractAmount,
	},
	{
		Name:     "withdrawal-en",
		Type:     model.TypeWithdrawal,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(`Withdraw\s+` + amt + `\s+from\s+(?P<agent>[^.]+?)(?:\s+New\s+M-?PESA|\.|$)`),
			pattern(`(?:insufficient\s+funds|do\s+not\s+have\s+enough\s+money)[^.]*?\s+to\s+withdraw\s+` + optAmt),
		},
		Extract: extractWithdrawal,
	},
	{
		Name:     "withdrawal-sw",
		Type:     model.TypeWithdrawal,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(`(?:Umetoa|Toa)\s+` + amt + `\s+kutoka\s+(?:kwa\s+)?(?P<agent>[^.]+?)(?:\s+(?:Salio|Baki)\b|\.|$)`),
		},
		Extract: extractWithdrawal,
	},
	{
		Name:     "balance-check-en",
		Type:     model.TypeBalanceCheck,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(`Your\s+account\s+balance\s+was:?\s*M-?PESA\s+Account\s*:\s*` + amt),
		},
		Extract: extractBalanceCheck,
	},
	{
		Name:     "balance-check-sw",
		Type:     model.TypeBalanceCheck,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(`Baki\s+yako\s+ni:?\s*Akaunti\s+ya\s+M-?PESA\s*:\s*` + amt),
		},
		Extract: extractBalanceCheck,
	},
	{
		Name:     "received-en",
		Type:     model.TypeReceived,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(`You\s+have\s+received\s+` + amt + `\s+from\s+` + party + phone + enEnd),
			pattern(amt + `\s+received\s+from\s+` + party + phone + enEnd),
		},
		Extract: extractParty,
	},
	{
		Name:     "received-sw",
		Type:     model.TypeReceived,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(`Umepokea\s+` + amt + `\s+kutoka\s+(?:kwa\s+)?` + party + bankAcct + swEnd),
		},
		Extract: extractParty,
	},
	{
		Name:     "sent-en",
		Type:     model.TypeSent,
		Language: model.LanguageEnglish,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+sent\s+to\s+` + party + `(?:\s+for\s+account\s+(?P<account>[^,]+?))?` + phone + enEnd),
			pattern(amt + `\s+paid\s+to\s+` + party + phone + enEnd),
			pattern(`(?:insufficient\s+funds|do\s+not\s+have\s+enough\s+money)[^.]*?\s+to\s+(?:send|pay)\s+` + optAmt),
		},
		Extract: extractParty,
	},
	{
		Name:     "sent-sw",
		Type:     model.TypeSent,
		Language: model.LanguageSwahili,
		Patterns: []*regexp.Regexp{
			pattern(amt + `\s+(?:imetumwa|zimetumwa)\s+kwa\s+` + party + `(?:\s+kwa\s+akaunti\s+(?:nambari\s+)?(?P<account>[^,]+?))?` + phone + swEnd),
			pattern(`Umetumiwa\s+` + amt + `\s+na\s+` + party + phone + swEnd),
			pattern(`Umelipa\s+` + amt + `\s+(?:kwa|kwenda)\s+` + party + phone + swEnd),
			pattern(`(?:hakuna\s+pesa\s+za\s+kutosha|salio\s+lako\s+halitoshi)[^.]*?kutuma\s+` + optAmt),
		},
		Extract: extractParty,
	},
}

// Rules returns a copy of the rule table in priority order.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

func extractAmount(c Captures, rec *model.TransactionRecord, errs *fieldErrors) {
	raw, ok := c["amount"]
	if !ok {
		errs.add("amount", errNotFound)
	} else if v, err := utils.ParseAmount(raw); err != nil {
		errs.add("amount", err)
	} else {
		rec.Amount = &v
	}

	if acct, ok := c["account"]; ok {
		rec.AccountNumber = acct
	}
}

func extractParty(c Captures, rec *model.TransactionRecord, errs *fieldErrors) {
	extractAmount(c, rec, errs)
	rec.Counterparty = c["party"]
	rec.CounterpartyPhone = c["phone"]
}

func extractWithdrawal(c Captures, rec *model.TransactionRecord, errs *fieldErrors) {
	extractAmount(c, rec, errs)
	rec.Agent = c["agent"]
	rec.Counterparty = c["agent"]
}

func extractMShwari(c Captures, rec *model.TransactionRecord, errs *fieldErrors) {
	extractAmount(c, rec, errs)

	switch strings.ToLower(c["direction"]) {
	case "to", "kwa", "kwenda":
		rec.MShwariDirection = model.MShwariDeposit
	case "from", "kutoka":
		rec.MShwariDirection = model.MShwariWithdrawal
	}
}

func extractBalanceCheck(c Captures, rec *model.TransactionRecord, errs *fieldErrors) {
	extractAmount(c, rec, errs)
	if rec.Amount != nil {
		balance := *rec.Amount
		rec.BalanceAfter = &balance
	}
}
