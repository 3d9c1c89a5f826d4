package classifier

import (
	"regexp"
	"strings"

	"github.com/hance08/pesa/internal/model"
)

var failurePhrases = regexp.MustCompile(`(?i)\bfailed\b|` +
	`\bcould\s+not\b|` +
	`\binsufficient\s+funds\b|` +
	`\bdo\s+not\s+have\s+enough\s+money\b|` +
	`\breached\s+your\s+Fuliza\s+M-?PESA\s+limit\b|` +
	`\bFuliza\s+M-?PESA\s+limit\s+is\s+not\s+available\b|` +
	`\bhaikufaulu\b|` +
	`\bimefeli\b|` +
	`\bhakuna\s+pesa\s+za\s+kutosha\b|` +
	`\bsalio\s+lako\s+halitoshi\b|` +
	`\bumekataa\s+kuidhinisha\b|` +
	`\bhuduma\s+hii?\s+haipatikani\b`)

var confirmationPhrases = regexp.MustCompile(`(?i)\bconfirmed\b|\bimethibitishwa\b`)

// detectStatus returns the status and the phrase that decided it.
// conclusive is false when neither a failure nor a confirmation phrase is present.
func detectStatus(text string) (status model.Status, reason string, conclusive bool) {
	if m := failurePhrases.FindString(text); m != "" {
		return model.StatusFailed, strings.TrimSpace(m), true
	}
	if m := confirmationPhrases.FindString(text); m != "" {
		return model.StatusSuccess, strings.TrimSpace(m), true
	}
	return model.StatusSuccess, "", false
}
