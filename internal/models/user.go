package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a registered account.
//
// Every expense belongs to exactly one user, and a user only ever sees
// their own expenses. The monthly budget is a spending ceiling for the
// current month; zero means no limit is configured.
type User struct {
	DefaultModel
	Username      string          `gorm:"uniqueIndex"`
	PasswordHash  string          `json:"-"`
	MonthlyBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Expenses      []Expense       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave ensures consistency for the user.
//
// It trims whitespace from the username and rejects empty usernames and
// negative budgets.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return ErrUsernameEmpty
	}

	if u.MonthlyBudget.IsNegative() {
		return ErrBudgetNegative
	}

	return nil
}

// UserByUsername returns the user with the given username.
func UserByUsername(db *gorm.DB, username string) (User, error) {
	var user User
	err := db.Where(&User{Username: strings.TrimSpace(username)}).First(&user).Error
	return user, err
}

// SetBudget persists a new monthly budget for the user.
func (u *User) SetBudget(db *gorm.DB, budget decimal.Decimal) error {
	if budget.IsNegative() {
		return ErrBudgetNegative
	}

	err := db.Model(u).Select("MonthlyBudget").Updates(User{MonthlyBudget: budget}).Error
	if err != nil {
		return err
	}

	u.MonthlyBudget = budget
	return nil
}

// Delete removes the user together with all their expenses and sessions
// in a single transaction.
//
// The store enforces this as an application level invariant so that no
// expense can outlive its owner, regardless of driver cascade support.
func (u User) Delete(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&Expense{UserID: u.ID}).Delete(&Expense{}).Error; err != nil {
			return err
		}

		if err := tx.Where(&Session{UserID: u.ID}).Delete(&Session{}).Error; err != nil {
			return err
		}

		return tx.Delete(&u).Error
	})
}
