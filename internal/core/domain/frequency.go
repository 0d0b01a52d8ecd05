package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// Frequency tags how often a transaction recurs. It is stored as metadata
// only; nothing expands it into further transactions.
type Frequency string

const (
	OneTime    Frequency = "ONE_TIME"
	Daily      Frequency = "DAILY"
	Workdays   Frequency = "WORKDAYS"
	Weekly     Frequency = "WEEKLY"
	Monthly    Frequency = "MONTHLY"
	Quarterly  Frequency = "QUARTERLY"
	HalfYearly Frequency = "HALF_YEARLY"
	Yearly     Frequency = "YEARLY"
)

var frequencyLabels = map[Frequency]string{
	OneTime:    "一次",
	Daily:      "每天",
	Workdays:   "每個工作日",
	Weekly:     "每周",
	Monthly:    "每月",
	Quarterly:  "每季",
	HalfYearly: "每半年",
	Yearly:     "每年",
}

// Frequencies returns every frequency in display order.
func Frequencies() []Frequency {
	return []Frequency{OneTime, Daily, Workdays, Weekly, Monthly, Quarterly, HalfYearly, Yearly}
}

// ParseFrequency accepts the code or the display label. Empty means OneTime.
func ParseFrequency(s string) (Frequency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OneTime, nil
	}
	for _, f := range Frequencies() {
		if s == string(f) || s == frequencyLabels[f] {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, s)
}

// Label returns the display label of the frequency.
func (f Frequency) Label() string {
	return frequencyLabels[f]
}

// IsRecurring reports whether f is anything other than OneTime.
func (f Frequency) IsRecurring() bool {
	return f != OneTime
}
