package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account kinds a user can hold.
type AccountType string

const (
	Cash   AccountType = "CASH"
	Credit AccountType = "CREDIT"
	Bank   AccountType = "BANK"
)

var accountTypeLabels = map[AccountType]string{
	Cash:   "現金",
	Credit: "信用卡",
	Bank:   "銀行",
}

// AccountTypes returns every account type in display order.
func AccountTypes() []AccountType {
	return []AccountType{Cash, Credit, Bank}
}

// ParseAccountType accepts either the code ("CASH") or the display label ("現金").
func ParseAccountType(s string) (AccountType, error) {
	s = strings.TrimSpace(s)
	for _, t := range AccountTypes() {
		if s == string(t) || s == accountTypeLabels[t] {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, s)
}

// Label returns the display label of the account type.
func (t AccountType) Label() string {
	return accountTypeLabels[t]
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

// Account is a named balance-holding entity.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	Balance        decimal.Decimal `json:"balance"`        // Mutated only by the balance engine
	InitialBalance decimal.Decimal `json:"initialBalance"` // Snapshot at creation
	BillingDay     *int            `json:"billingDay,omitempty"`
	DueDay         *int            `json:"dueDay,omitempty"`
	Note           string          `json:"note,omitempty"`
	AuditFields
}

// Validate checks the invariants a freshly constructed account must satisfy.
func (a Account) Validate() error {
	if strings.TrimSpace(a.AccountID) == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !a.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, a.AccountType)
	}
	if a.AccountType != Credit && (a.BillingDay != nil || a.DueDay != nil) {
		return fmt.Errorf("%w: billing and due days apply to credit accounts only", apperrors.ErrValidation)
	}
	for _, day := range []*int{a.BillingDay, a.DueDay} {
		if day != nil && (*day < 1 || *day > 31) {
			return fmt.Errorf("%w: day of month %d out of range 1-31", apperrors.ErrValidation, *day)
		}
	}
	return nil
}
