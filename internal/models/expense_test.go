package models_test

import (
	"testing"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	user := suite.createTestUser("holmes")

	tests := []struct {
		name         string
		category     string
		wantCategory string
	}{
		{"empty category becomes Other", "", models.DefaultCategory},
		{"whitespace category becomes Other", "   ", models.DefaultCategory},
		{"category is trimmed", "  Food ", "Food"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			expense := models.Expense{UserID: user.ID, Category: tt.category, Amount: decimal.NewFromInt(1)}
			require.NoError(t, models.DB.Create(&expense).Error)

			assert.Equal(t, tt.wantCategory, expense.Category)
			assert.True(t, expense.OccurredOn.Equal(types.Today()), "date must default to today, is %s", expense.OccurredOn)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseNegativeAmount() {
	user := suite.createTestUser("watson")

	err := models.DB.Create(&models.Expense{UserID: user.ID, Amount: decimal.NewFromFloat(-5)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestExpenseRequiresUser() {
	expense := models.Expense{Category: "Orphan", Amount: decimal.NewFromInt(1)}
	err := models.DB.Create(&expense).Error
	assert.Error(suite.T(), err, "an expense must reference an existing user")
}

func (suite *TestSuiteStandard) TestExpensesForUserOrder() {
	user := suite.createTestUser("lovelace")

	first := models.Expense{UserID: user.ID, Category: "Books", Amount: decimal.NewFromInt(10), OccurredOn: types.NewDate(2024, 6, 10)}
	second := models.Expense{UserID: user.ID, Category: "Tea", Amount: decimal.NewFromInt(3), OccurredOn: types.NewDate(2024, 6, 12)}
	third := models.Expense{UserID: user.ID, Category: "Paper", Amount: decimal.NewFromInt(2), OccurredOn: types.NewDate(2024, 6, 12)}

	for _, e := range []*models.Expense{&first, &second, &third} {
		require.NoError(suite.T(), models.DB.Create(e).Error)
	}

	expenses, err := models.ExpensesForUser(models.DB, user.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 3)

	// Most recent date first, same-day expenses in insertion order
	assert.Equal(suite.T(), second.ID, expenses[0].ID)
	assert.Equal(suite.T(), third.ID, expenses[1].ID)
	assert.Equal(suite.T(), first.ID, expenses[2].ID)
}

func (suite *TestSuiteStandard) TestExpenseForUserScoping() {
	owner := suite.createTestUser("jekyll")
	intruder := suite.createTestUser("hyde")

	expense := models.Expense{UserID: owner.ID, Category: "Chemistry", Amount: decimal.NewFromInt(66)}
	require.NoError(suite.T(), models.DB.Create(&expense).Error)

	found, err := models.ExpenseForUser(models.DB, expense.ID, owner.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), expense.ID, found.ID)

	_, err = models.ExpenseForUser(models.DB, expense.ID, intruder.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "another user's expense must look like a missing one")
}
