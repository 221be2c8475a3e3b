package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(trip *model.Trip) error {
	return r.db.Create(trip).Error
}

func (r *TripRepository) GetByTripID(tripID, userID string) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Where("trip_id = ? AND user_id = ?", tripID, userID).First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListByUserID(userID string, limit int) ([]*model.Trip, error) {
	var trips []*model.Trip
	err := r.db.Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

// UpdateFields writes only the given columns, scoped by owner.
func (r *TripRepository) UpdateFields(tripID, userID string, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&model.Trip{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *TripRepository) Delete(tripID, userID string) (int64, error) {
	result := r.db.Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&model.Trip{})
	return result.RowsAffected, result.Error
}

// CountAutomaticSince counts automatically captured trips starting at or after
// the given instant. Recomputed per query, never cached.
func (r *TripRepository) CountAutomaticSince(userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Trip{}).
		Where("user_id = ? AND is_automatic = ? AND start_time >= ?", userID, true, since).
		Count(&count).Error
	return count, err
}

func (r *TripRepository) SumDistanceSince(userID string, since time.Time, businessOnly bool) (float64, error) {
	var total float64
	query := r.db.Model(&model.Trip{}).
		Select("COALESCE(SUM(distance), 0)").
		Where("user_id = ? AND start_time >= ?", userID, since)
	if businessOnly {
		query = query.Where("is_business = ?", true)
	}
	err := query.Scan(&total).Error
	return total, err
}

func (r *TripRepository) SumDistanceBetween(userID string, start, end time.Time, businessOnly bool) (float64, error) {
	var total float64
	query := r.db.Model(&model.Trip{}).
		Select("COALESCE(SUM(distance), 0)").
		Where("user_id = ? AND start_time BETWEEN ? AND ?", userID, start, end)
	if businessOnly {
		query = query.Where("is_business = ?", true)
	}
	err := query.Scan(&total).Error
	return total, err
}
