package classifier

import (
	"testing"

	"github.com/hance08/pesa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Table(t *testing.T) {
	rules := Rules()
	require.NotEmpty(t, rules)

	seen := make(map[string]bool)
	for _, r := range rules {
		assert.NotEmpty(t, r.Name)
		assert.False(t, seen[r.Name], "duplicate rule name %s", r.Name)
		seen[r.Name] = true

		assert.NotEqual(t, model.TypeUnknown, r.Type, r.Name)
		assert.NotEmpty(t, r.Patterns, r.Name)
		assert.NotNil(t, r.Extract, r.Name)
		assert.Contains(t, []model.Language{model.LanguageEnglish, model.LanguageSwahili}, r.Language, r.Name)
	}
}

func TestRules_EveryTypeCovered(t *testing.T) {
	covered := make(map[model.TransactionType]map[model.Language]bool)
	for _, r := range Rules() {
		if covered[r.Type] == nil {
			covered[r.Type] = make(map[model.Language]bool)
		}
		covered[r.Type][r.Language] = true
	}

	for _, typ := range model.TransactionTypes {
		if typ == model.TypeUnknown {
			continue
		}
		assert.True(t, covered[typ][model.LanguageEnglish], "%s has no English rule", typ)
		assert.True(t, covered[typ][model.LanguageSwahili], "%s has no Swahili rule", typ)
	}
}

func TestRules_FulizaRepaymentBeforeTransfers(t *testing.T) {
	pos := make(map[model.TransactionType]int)
	for i, r := range Rules() {
		if _, ok := pos[r.Type]; !ok {
			pos[r.Type] = i
		}
	}

	assert.Less(t, pos[model.TypeFulizaRepayment], pos[model.TypeSent])
	assert.Less(t, pos[model.TypeFulizaRepayment], pos[model.TypeReceived])
	assert.Less(t, pos[model.TypeWithdrawal], pos[model.TypeReceived])
	assert.Less(t, pos[model.TypeMShwari], pos[model.TypeSent])
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].Name = "changed"

	assert.NotEqual(t, "changed", Rules()[0].Name)
}

func TestRule_Match(t *testing.T) {
	rules := Rules()
	var sent Rule
	for _, r := range rules {
		if r.Name == "sent-en" {
			sent = r
		}
	}
	require.NotEmpty(t, sent.Name)

	c, ok := sent.match("Ksh1,500.00 sent to KPLC PREPAID for account 12345678 on 3/1/24")
	require.True(t, ok)
	assert.Equal(t, "1,500.00", c["amount"])
	assert.Equal(t, "KPLC PREPAID", c["party"])
	assert.Equal(t, "12345678", c["account"])
	_, hasPhone := c["phone"]
	assert.False(t, hasPhone)

	_, ok = sent.match("You have received Ksh10.00 from A B")
	assert.False(t, ok)
}

// A repayment notice also reads like a payment; the repayment rule must come first.
func TestRules_PriorityResolvesOverlap(t *testing.T) {
	line := "Ksh200.00 from your M-PESA has been used to pay your Fuliza M-PESA"

	var matched []string
	for _, r := range Rules() {
		if r.Language != model.LanguageEnglish {
			continue
		}
		if _, ok := r.match(line); ok {
			matched = append(matched, r.Name)
		}
	}

	require.NotEmpty(t, matched)
	assert.Equal(t, "fuliza-repayment-en", matched[0])
}
