package controllers

import (
	"net/http"
	"strings"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterDashboardRoutes registers the dashboard and its form actions
// with the authenticated page group.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.GET("/", GetDashboard)
	r.GET("/dashboard", GetDashboard)
	r.POST("/add", PostAddExpense)
	r.POST("/delete/:id", PostDeleteExpense)
	r.POST("/set-budget", PostSetBudget)
	r.GET("/logout", GetLogout)
}

type expenseRow struct {
	ID       uuid.UUID
	Date     string
	Category string
	Amount   string
}

type dashboardPage struct {
	Title      string
	Username   string
	Rows       []expenseRow
	MonthSpent string
	Budget     string
	HasBudget  bool
	OverBudget bool
	Error      string
	Notice     string
}

// GetDashboard renders the month-to-date summary with the expense and
// budget forms.
func GetDashboard(c *gin.Context) {
	renderDashboard(c, http.StatusOK, "")
}

// renderDashboard loads the current month summary for the authenticated
// user. An error message can be passed in to re-render the page after a
// failed form submission.
func renderDashboard(c *gin.Context, status int, errMsg string) {
	user := CurrentUser(c)

	expenses, err := models.ExpensesForUser(models.DB, user.ID)
	if err != nil {
		httputil.LogUnexpected(c, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	summary := reports.MonthToDate(expenses, user.MonthlyBudget, types.Today())

	rows := make([]expenseRow, 0, len(summary.Expenses))
	for _, e := range summary.Expenses {
		rows = append(rows, expenseRow{
			ID:       e.ID,
			Date:     e.OccurredOn.String(),
			Category: e.Category,
			Amount:   e.Amount.StringFixed(reports.Places),
		})
	}

	c.HTML(status, "dashboard.html", dashboardPage{
		Title:      "Dashboard",
		Username:   user.Username,
		Rows:       rows,
		MonthSpent: summary.Spent.StringFixed(reports.Places),
		Budget:     summary.Budget.StringFixed(reports.Places),
		HasBudget:  summary.Budget.IsPositive(),
		OverBudget: summary.OverBudget,
		Error:      errMsg,
	})
}

// PostAddExpense creates a new expense for the authenticated user.
func PostAddExpense(c *gin.Context) {
	user := CurrentUser(c)

	amount, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("amount")))
	if err != nil {
		renderDashboard(c, http.StatusBadRequest, "Invalid amount")
		return
	}
	if amount.IsNegative() {
		renderDashboard(c, http.StatusBadRequest, "The amount must be zero or positive")
		return
	}

	var occurredOn types.Date
	if dateStr := strings.TrimSpace(c.PostForm("occurred_on")); dateStr != "" {
		occurredOn, err = types.ParseDate(dateStr)
		if err != nil {
			renderDashboard(c, http.StatusBadRequest, "Invalid date, use the YYYY-MM-DD format")
			return
		}
	}

	expense := models.Expense{
		UserID:     user.ID,
		Category:   c.PostForm("category"),
		Amount:     amount,
		OccurredOn: occurredOn,
	}

	if err := models.DB.Create(&expense).Error; err != nil {
		httputil.LogUnexpected(c, err)
		renderDashboard(c, httputil.Status(err), "Could not save the expense")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// PostDeleteExpense deletes one of the caller's expenses.
//
// Unknown IDs and other users' expenses are both answered with a 404, so
// the response never reveals whether a foreign expense exists.
func PostDeleteExpense(c *gin.Context) {
	user := CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	expense, err := models.ExpenseForUser(models.DB, id, user.ID)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		httputil.LogUnexpected(c, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// PostSetBudget updates the monthly budget.
//
// A value that does not parse leaves the stored budget untouched.
func PostSetBudget(c *gin.Context) {
	user := CurrentUser(c)

	budget, err := decimal.NewFromString(strings.TrimSpace(c.PostForm("monthly_budget")))
	if err != nil {
		renderDashboard(c, http.StatusBadRequest, "Invalid budget value")
		return
	}

	if err := user.SetBudget(models.DB, budget); err != nil {
		status := httputil.Status(err)
		if status == http.StatusInternalServerError {
			httputil.LogUnexpected(c, err)
			renderDashboard(c, status, "Could not save the budget")
			return
		}

		renderDashboard(c, status, "Invalid budget value")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
