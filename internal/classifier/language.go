package classifier

import (
	"strings"
	"unicode"

	"github.com/hance08/pesa/internal/model"
	"golang.org/x/text/cases"
)

// Words that occur in one language's notifications but not the other's.
var swahiliMarkers = toSet(
	"imethibitishwa", "umetumiwa", "umepokea", "umetuma", "imetumwa", "zimetumwa",
	"umelipa", "umenunua", "umetoa", "imehamishwa", "zimehamishwa", "imetumika",
	"salio", "baki", "jipya", "mpya", "kutoka", "kwa", "na", "ni", "ya", "la", "cha",
	"gharama", "tarehe", "siku", "saa", "mnamo", "akaunti", "yako", "lako", "kiasi",
	"kiwango", "hakuna", "imefeli", "haikufaulu", "kutosha", "halitoshi",
	"mjazo", "kulipa", "deni", "jumla", "huduma", "haipatikani", "unachoweza", "kutuma",
)

var englishMarkers = toSet(
	"confirmed", "received", "sent", "to", "from", "you", "your", "have", "has", "been",
	"balance", "new", "is", "on", "at", "transaction", "cost", "bought", "airtime",
	"withdraw", "paid", "account", "amount", "failed", "insufficient", "used", "pay",
	"of", "the", "for", "was", "transferred", "outstanding", "interest", "charged",
	"available", "limit", "due", "fully", "money", "enough",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// DetectLanguage counts language markers in the message. Swahili wins only
// with strictly more markers; ties and marker-free text are English.
func DetectLanguage(text string) model.Language {
	folded := cases.Fold().String(text)

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var en, sw int
	for _, w := range words {
		if _, ok := swahiliMarkers[w]; ok {
			sw++
		}
		if _, ok := englishMarkers[w]; ok {
			en++
		}
	}

	if sw > en {
		return model.LanguageSwahili
	}
	return model.LanguageEnglish
}
