package controllers_test

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/reports"
	"github.com/centsible/backend/internal/types"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestReportPage() {
	headers := suite.signup("morre")

	r := test.Request(suite.T(), http.MethodGet, "/report", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), "Reports")
}

func (suite *TestSuiteStandard) TestSummaryRequiresLogin() {
	r := test.Request(suite.T(), http.MethodGet, "/api/summary", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var apiError httputil.HTTPError
	test.DecodeResponse(suite.T(), &r, &apiError)
	suite.Assert().Equal("you need to log in to use this endpoint", apiError.Error)
}

func (suite *TestSuiteStandard) TestSummaryDefaultsToMonth() {
	headers := suite.signup("morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/summary", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Assert().True(summary.Start.Equal(types.Today().FirstOfMonth()), "start is %s", summary.Start)
	suite.Assert().True(summary.End.Equal(types.Today()), "end is %s", summary.End)
	suite.Assert().Len(summary.Labels, 0)
	suite.Assert().Len(summary.Values, 0)
	suite.Assert().True(summary.Total.IsZero())
}

func (suite *TestSuiteStandard) TestSummaryYearKeyword() {
	headers := suite.signup("morre")

	r := test.Request(suite.T(), http.MethodGet, "/api/summary?range=year", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().True(summary.Start.Equal(types.Today().FirstOfYear()), "start is %s", summary.Start)
}

func (suite *TestSuiteStandard) TestSummaryUnknownKeyword() {
	headers := suite.signup("morre")

	// Anything that is not "year" means the current month
	r := test.Request(suite.T(), http.MethodGet, "/api/summary?range=fortnight", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().True(summary.Start.Equal(types.Today().FirstOfMonth()), "start is %s", summary.Start)
}

func (suite *TestSuiteStandard) TestSummaryExplicitWindow() {
	headers := suite.signup("morre")

	suite.createExpense("morre", "Food", "10.005", "2026-03-10")
	suite.createExpense("morre", "Food", "5.00", "2026-03-20")
	suite.createExpense("morre", "Travel", "20", "2026-03-31")
	suite.createExpense("morre", "Rent", "800", "2026-04-01")

	r := test.Request(suite.T(), http.MethodGet, "/api/summary?start=2026-03-01&end=2026-03-31", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Assert().Equal([]string{"Travel", "Food"}, summary.Labels)

	suite.Require().Len(summary.Values, 2)
	suite.Assert().True(decimal.RequireFromString("20").Equal(summary.Values[0]), "values are %v", summary.Values)
	suite.Assert().True(decimal.RequireFromString("15.01").Equal(summary.Values[1]), "values are %v", summary.Values)
	suite.Assert().True(decimal.RequireFromString("35.01").Equal(summary.Total), "total is %s", summary.Total)

	suite.Assert().Equal("2026-03-01", summary.Start.String())
	suite.Assert().Equal("2026-03-31", summary.End.String())
}

func (suite *TestSuiteStandard) TestSummaryPartialWindowIgnored() {
	headers := suite.signup("morre")

	// Only one explicit date falls back to the range keyword
	r := test.Request(suite.T(), http.MethodGet, "/api/summary?start=2020-01-01", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().True(summary.Start.Equal(types.Today().FirstOfMonth()), "start is %s", summary.Start)
	suite.Assert().True(summary.End.Equal(types.Today()), "end is %s", summary.End)
}

func (suite *TestSuiteStandard) TestSummaryMalformedDates() {
	headers := suite.signup("morre")

	for _, query := range []string{"start=01.03.2026&end=2026-03-31", "start=2026-03-01&end=tomorrow"} {
		r := test.Request(suite.T(), http.MethodGet, "/api/summary?"+query, nil, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var apiError httputil.HTTPError
		test.DecodeResponse(suite.T(), &r, &apiError)
		suite.Assert().Contains(apiError.Error, "YYYY-MM-DD")
	}
}

func (suite *TestSuiteStandard) TestSummaryScopedToUser() {
	suite.signup("morre")
	suite.createExpense("morre", "Food", "10", "2026-03-10")

	other := suite.signup("till")
	r := test.Request(suite.T(), http.MethodGet, "/api/summary?start=2026-01-01&end=2026-12-31", nil, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary reports.Summary
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().Len(summary.Labels, 0)
	suite.Assert().True(summary.Total.IsZero())
}
