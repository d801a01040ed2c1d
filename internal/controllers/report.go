package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the report page with the authenticated
// page group.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.GET("/report", GetReport)
}

// RegisterAPIRoutes registers the JSON endpoints with the authenticated
// API group.
func RegisterAPIRoutes(r *gin.RouterGroup) {
	r.GET("/summary", GetSummary)
}

type reportPage struct {
	Title    string
	Username string
}

// GetReport renders the report page. The page itself is static; its
// script fetches /api/summary and draws the charts.
func GetReport(c *gin.Context) {
	c.HTML(http.StatusOK, "report.html", reportPage{
		Title:    "Reports",
		Username: CurrentUser(c).Username,
	})
}

// @Summary		Spending summary
// @Description	Returns per-category spending sums over a date window
// @Produce	json
// @Success	200		{object}	reports.Summary
// @Failure	400		{object}	httputil.HTTPError
// @Failure	401		{object}	httputil.HTTPError
// @Param		range	query		string	false	"Range keyword, month or year. Defaults to month."
// @Param		start	query		string	false	"Window start as YYYY-MM-DD. Only used together with end."
// @Param		end		query		string	false	"Window end as YYYY-MM-DD. Only used together with start."
// @Router		/api/summary [get]
func GetSummary(c *gin.Context) {
	user := CurrentUser(c)

	var start, end *types.Date

	// Malformed explicit dates fail the request. Only the range keyword
	// is allowed to fall back to a default.
	if s := strings.TrimSpace(c.Query("start")); s != "" {
		parsed, err := types.ParseDate(s)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errors.New("could not parse start, did you use the YYYY-MM-DD format?"))
			return
		}
		start = &parsed
	}

	if e := strings.TrimSpace(c.Query("end")); e != "" {
		parsed, err := types.ParseDate(e)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errors.New("could not parse end, did you use the YYYY-MM-DD format?"))
			return
		}
		end = &parsed
	}

	expenses, err := models.ExpensesForUser(models.DB, user.ID)
	if err != nil {
		httputil.LogUnexpected(c, err)
		httputil.NewError(c, httputil.Status(err), models.ErrGeneral)
		return
	}

	windowStart, windowEnd := reports.ResolveWindow(c.Query("range"), start, end, types.Today())
	c.JSON(http.StatusOK, reports.Range(expenses, windowStart, windowEnd))
}
