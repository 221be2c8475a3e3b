package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

// GetByToken looks up a session by exact token match. Expiry is the caller's
// concern; this is a plain read.
func (r *SessionRepository) GetByToken(token string) (*model.Session, error) {
	var session model.Session
	err := r.db.Where("session_token = ?", token).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteByToken(token string) error {
	return r.db.Where("session_token = ?", token).Delete(&model.Session{}).Error
}

// DeleteExpiredBefore removes sessions whose expiry is before the cutoff.
// Used only by the out-of-band cleanup binary.
func (r *SessionRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", cutoff).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

// CountExpiredBefore reports how many sessions DeleteExpiredBefore would remove.
func (r *SessionRepository) CountExpiredBefore(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Session{}).Where("expires_at < ?", cutoff).Count(&count).Error
	return count, err
}
