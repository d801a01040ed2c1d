package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a server side login session.
//
// The token is handed to the browser in a cookie; everything else stays in
// the database so that sessions can be revoked at any time.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"not null"`
	User      User
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreateSession stores a new session for the user.
func CreateSession(db *gorm.DB, token string, userID uuid.UUID, expiresAt time.Time) error {
	return db.Create(&Session{Token: token, UserID: userID, ExpiresAt: expiresAt}).Error
}

// SessionUser resolves a session token to its user.
//
// Expired sessions do not resolve. They are deleted on sight so the table
// does not accumulate dead rows.
func SessionUser(db *gorm.DB, token string) (User, error) {
	var session Session
	err := db.Preload("User").First(&session, "token = ?", token).Error
	if err != nil {
		return User{}, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		_ = db.Delete(&session).Error
		return User{}, fmt.Errorf("%w active session matching your query", ErrResourceNotFound)
	}

	return session.User, nil
}

// DeleteSession removes a session. Deleting a session that does not exist
// is not an error.
func DeleteSession(db *gorm.DB, token string) error {
	return db.Delete(&Session{}, "token = ?", token).Error
}

// PurgeExpiredSessions removes all sessions whose expiry has passed.
func PurgeExpiredSessions(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&Session{}).Error
}
