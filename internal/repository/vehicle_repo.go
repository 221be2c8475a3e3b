package repository

import (
	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(vehicle *model.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *VehicleRepository) GetByVehicleID(vehicleID, userID string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ListByUserID(userID string) ([]*model.Vehicle, error) {
	var vehicles []*model.Vehicle
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

// Delete is scoped by owner; the rows-affected count distinguishes not-found.
func (r *VehicleRepository) Delete(vehicleID, userID string) (int64, error) {
	result := r.db.Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Delete(&model.Vehicle{})
	return result.RowsAffected, result.Error
}
