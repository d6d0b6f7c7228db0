package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

type (
	// Period is the granularity of a budget cycle.
	Period string

	// Expense is a single recorded spending. The ID is immutable once created.
	Expense struct {
		ID       string    `json:"id"`
		Title    string    `json:"title"`
		Category string    `json:"category"`
		Amount   float64   `json:"amount"`
		Date     time.Time `json:"date"`
		Note     string    `json:"note,omitempty"`
	}

	// Budget is a spending limit for one category over a recurring period.
	// Categories join to expenses by exact string equality.
	Budget struct {
		ID        string    `json:"id"`
		Category  string    `json:"category"`
		Amount    float64   `json:"amount"`
		Period    Period    `json:"period"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	// BudgetAlert is an append-only fact recording that a budget was at or
	// over its limit when an expense was recorded. Alerts outlive the budget
	// they reference.
	BudgetAlert struct {
		ID         string    `json:"id"`
		BudgetID   string    `json:"budgetId"`
		Category   string    `json:"category"`
		Spent      float64   `json:"spent"`
		Budget     float64   `json:"budget"`
		Percentage float64   `json:"percentage"`
		Exceeded   bool      `json:"exceeded"`
		CreatedAt  time.Time `json:"createdAt"`
	}
)

var (
	ErrMissingID     = errors.New("missing id")
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidPeriod = errors.New("invalid period")
)

// IsValid returns true if the period is one of the known granularities.
func (p Period) IsValid() bool {
	switch p {
	case Daily, Weekly, Monthly, Yearly:
		return true
	default:
		return false
	}
}

func (p Period) String() string {
	return string(p)
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if e.Amount < 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	if b.Amount <= 0 || math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return ErrInvalidAmount
	}
	if !b.Period.IsValid() {
		return ErrInvalidPeriod
	}
	return nil
}
