package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

// GetActiveByUserID returns the most recent active subscription. Ordering by
// recency de-duplicates defensively if concurrent lazy creation ever raced.
func (r *SubscriptionRepository) GetActiveByUserID(userID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
		Order("started_at DESC, id DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Replace cancels every active subscription for the user and inserts the new
// one as a single transaction, so concurrent plan changes serialize without
// leaving two active rows.
func (r *SubscriptionRepository) Replace(userID string, sub *model.Subscription) error {
	now := time.Now().UTC()
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Subscription{}).
			Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
			Updates(map[string]interface{}{
				"status":   model.SubscriptionStatusCancelled,
				"ended_at": now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Create(sub).Error
	})
}

func (r *SubscriptionRepository) ListByUserID(userID string) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) CountActiveByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
		Count(&count).Error
	return count, err
}
