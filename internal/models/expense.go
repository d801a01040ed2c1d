package models

import (
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCategory is used for expenses that are logged without a category.
const DefaultCategory = "Other"

// Expense represents a single dated spend record owned by one user.
//
// Expenses are created and deleted, never updated in place.
type Expense struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"not null"`
	User       User      `json:"-"`
	Category   string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	OccurredOn types.Date
}

// BeforeSave ensures consistency for the expense.
//
// It trims the category and falls back to the default category when it is
// blank, defaults the date to today, and rejects negative amounts.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		e.Category = DefaultCategory
	}

	if e.OccurredOn.IsZero() {
		e.OccurredOn = types.Today()
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// ExpensesForUser returns all expenses of one user, most recent date
// first. Expenses on the same date keep their insertion order.
func ExpensesForUser(db *gorm.DB, userID uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where(&Expense{UserID: userID}).
		Order("occurred_on DESC").
		Order("datetime(created_at) ASC").
		Find(&expenses).Error
	return expenses, err
}

// ExpenseForUser returns one expense, but only if it belongs to the given
// user. Asking for another user's expense behaves exactly like asking for
// one that does not exist.
func ExpenseForUser(db *gorm.DB, id, userID uuid.UUID) (Expense, error) {
	var expense Expense
	err := db.Where(&Expense{UserID: userID}).First(&expense, "id = ?", id).Error
	return expense, err
}
