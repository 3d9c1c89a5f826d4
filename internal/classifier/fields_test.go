package classifier

import (
	"testing"
	"time"

	"github.com/hance08/pesa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTransactionID(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"QAB1CD2EFG Confirmed. Ksh5 sent", "QAB1CD2EFG"},
		{"QAB1CD2EFG confirmed.", "QAB1CD2EFG"},
		{"RKT9XY8ZW7 Imethibitishwa.", "RKT9XY8ZW7"},
		{"QAB1CD2EFG Ksh5 sent to X", "QAB1CD2EFG"},
		{"ABCDEFGHIJ Confirmed.", ""},
		{"0712345678 Confirmed.", ""},
		{"Confirmed. Ksh5 sent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTransactionID(tt.text))
		})
	}
}

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      time.Time
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "english date and time",
			text:      "sent on 15/3/24 at 9:05 PM New",
			want:      time.Date(2024, 3, 15, 21, 5, 0, 0, eat),
			wantFound: true,
		},
		{
			name:      "english lowercase meridiem without space",
			text:      "on 1/12/2023 at 10:30am.",
			want:      time.Date(2023, 12, 1, 10, 30, 0, 0, eat),
			wantFound: true,
		},
		{
			name:      "swahili",
			text:      "mnamo 2/1/24 saa 3:30 PM Baki",
			want:      time.Date(2024, 1, 2, 15, 30, 0, 0, eat),
			wantFound: true,
		},
		{
			name:      "bare date and time",
			text:      "Umelipa Ksh100.00 kwa JAVA 9/1/24 8:15 AM",
			want:      time.Date(2024, 1, 9, 8, 15, 0, 0, eat),
			wantFound: true,
		},
		{
			name:      "due date skipped",
			text:      "outstanding amount is Ksh 10 due on 12/02/24.",
			wantFound: false,
		},
		{
			name:      "invalid",
			text:      "on 31/2/24",
			wantFound: true,
			wantErr:   true,
		},
		{
			name:      "none",
			text:      "no date here",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := extractTimestamp(tt.text)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantFound {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtractMoneyFields(t *testing.T) {
	text := "New M-PESA balance is Ksh1,200.50. Transaction cost, Ksh.7.00. Amount you can transact within the day is 299,000.00."
	var rec model.TransactionRecord
	var errs fieldErrors

	extractMoneyFields(text, &rec, &errs)

	assert.Empty(t, errs.String())
	assertMoney(t, "1200.50", rec.BalanceAfter, "balance_after")
	assertMoney(t, "7", rec.Cost, "cost")
	assertMoney(t, "299000", rec.DailyLimit, "daily_limit")
	assert.Nil(t, rec.MShwariBalance)
}

func TestExtractMoneyFields_KeepsRuleValues(t *testing.T) {
	preset := dec("10")
	rec := model.TransactionRecord{BalanceAfter: &preset}
	var errs fieldErrors

	extractMoneyFields("M-PESA balance is Ksh99.00", &rec, &errs)

	assertMoney(t, "10", rec.BalanceAfter, "balance_after")
}

func TestFieldErrors(t *testing.T) {
	var errs fieldErrors
	assert.Equal(t, "", errs.String())

	errs.add("amount", errNotFound)
	errs.add("timestamp", errNotNumber)

	assert.Equal(t, "amount: not found in message; timestamp: phrase present but no numeric value follows", errs.String())
}

func TestDetectStatus(t *testing.T) {
	tests := []struct {
		text       string
		want       model.Status
		conclusive bool
	}{
		{"QAB1CD2EFG Confirmed. Ksh5 sent", model.StatusSuccess, true},
		{"QAB1CD2EFG Imethibitishwa.", model.StatusSuccess, true},
		{"Failed. Insufficient funds", model.StatusFailed, true},
		{"Muamala haikufaulu.", model.StatusFailed, true},
		{"We could not complete your request", model.StatusFailed, true},
		{"Umetumiwa Ksh5 na X", model.StatusSuccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, reason, conclusive := detectStatus(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.conclusive, conclusive)
			if conclusive {
				assert.NotEmpty(t, reason)
			}
		})
	}
}
