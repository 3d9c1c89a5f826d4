package classifier

import (
	"testing"

	"github.com/hance08/pesa/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Language
	}{
		{"english confirmation", "QAB1CD2EFG Confirmed. Ksh500.00 sent to JOHN DOE on 1/1/24", model.LanguageEnglish},
		{"swahili confirmation", "QAB1CD2EFG Imethibitishwa. Ksh500.00 imetumwa kwa JOHN DOE tarehe 1/1/24", model.LanguageSwahili},
		{"swahili without confirmation", "Umetumiwa Ksh1,000.00 na JANE DOE. Salio jipya ni Ksh300.00.", model.LanguageSwahili},
		{"mixed case", "UMEPOKEA KSH100 KUTOKA MAMA", model.LanguageSwahili},
		{"no markers", "lorem ipsum dolor", model.LanguageEnglish},
		{"empty", "", model.LanguageEnglish},
		{"tie", "confirmed salio", model.LanguageEnglish},
		{"product names are neutral", "M-PESA M-Shwari Fuliza", model.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestLanguage_Tag(t *testing.T) {
	assert.Equal(t, "sw", model.LanguageSwahili.Tag().String())
	assert.Equal(t, "en", model.LanguageEnglish.Tag().String())
}
