package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func farFuture() time.Time {
	return time.Now().Add(24 * time.Hour)
}

func (suite *TestSuiteStandard) TestSessionRoundTrip() {
	user := suite.createTestUser("turing")
	require.NoError(suite.T(), models.CreateSession(models.DB, "valid-token", user.ID, farFuture()))

	resolved, err := models.SessionUser(models.DB, "valid-token")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, resolved.ID)
	assert.Equal(suite.T(), "turing", resolved.Username)
}

func (suite *TestSuiteStandard) TestSessionUnknownToken() {
	_, err := models.SessionUser(models.DB, "no-such-token")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSessionExpired() {
	user := suite.createTestUser("hopper")
	require.NoError(suite.T(), models.CreateSession(models.DB, "stale-token", user.ID, time.Now().Add(-time.Minute)))

	_, err := models.SessionUser(models.DB, "stale-token")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// The expired session is removed on sight
	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestSessionDeleteIdempotent() {
	user := suite.createTestUser("ritchie")
	require.NoError(suite.T(), models.CreateSession(models.DB, "bye", user.ID, farFuture()))

	require.NoError(suite.T(), models.DeleteSession(models.DB, "bye"))
	require.NoError(suite.T(), models.DeleteSession(models.DB, "bye"))
}

func (suite *TestSuiteStandard) TestPurgeExpiredSessions() {
	user := suite.createTestUser("kernighan")
	require.NoError(suite.T(), models.CreateSession(models.DB, "old", user.ID, time.Now().Add(-time.Hour)))
	require.NoError(suite.T(), models.CreateSession(models.DB, "new", user.ID, farFuture()))

	require.NoError(suite.T(), models.PurgeExpiredSessions(models.DB))

	var tokens []string
	require.NoError(suite.T(), models.DB.Model(&models.Session{}).Pluck("token", &tokens).Error)
	assert.Equal(suite.T(), []string{"new"}, tokens)
}
