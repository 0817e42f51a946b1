package core

import (
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	StatusActive   ProjectStatus = "active"
	StatusArchived ProjectStatus = "archived"
)

type (
	TransactionType string
	ProjectStatus   string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID       int64
		Date     Date
		Type     TransactionType
		Category string
		// Project is a soft reference to Project.Name. Empty means the
		// transaction is not project-scoped. A name with no matching project
		// is not an error; aggregation treats it as an ordinary grouping key.
		Project     string
		Description string
		Amount      Money
		CreatedAt   time.Time
	}

	Project struct {
		ID        int64
		Name      string
		Client    string
		Budget    Money // zero means no budget tracked
		Status    ProjectStatus
		CreatedAt time.Time
	}
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseTransactionType normalizes a user-entered type label to its canonical
// lowercase form and rejects anything outside the income/expense vocabulary.
// Entry surfaces must go through this; a label the aggregators do not
// recognize would otherwise be stored but counted in neither bucket.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	default:
		return "", &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// MonthKey returns the calendar-month bucket for the date, e.g. "2024-03".
// Day-of-month is discarded.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// String formats the date in the ledger's YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Validate enforces the interactive-entry admission rules: date, type and
// category present, amount strictly positive. Categories are free-form here;
// any fixed vocabulary is a presentation concern.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if strings.TrimSpace(string(t.Type)) == "" {
		return &ValidationError{Field: "type", Reason: "required"}
	}
	if strings.TrimSpace(t.Category) == "" {
		return &ValidationError{Field: "category", Reason: "required"}
	}
	if t.Amount.Cents <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}

// Validate enforces the field constraints of a candidate project. Name
// uniqueness is checked separately via CheckProjectName.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Budget.Cents < 0 {
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	return nil
}

// CheckProjectName rejects a name already present among existing project
// names. The match is case-sensitive and spans all statuses, so an archived
// project still blocks reuse of its name.
func CheckProjectName(name string, existing []string) error {
	for _, n := range existing {
		if n == name {
			return &DuplicateNameError{Name: name}
		}
	}
	return nil
}
