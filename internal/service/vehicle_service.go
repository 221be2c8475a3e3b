package service

import (
	"errors"

	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)

type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
}

func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
	}
}

func (s *VehicleService) Create(userID string, req *dto.CreateVehicleRequest) (*model.Vehicle, error) {
	businessPct := 100
	if req.BusinessPercentage != nil {
		businessPct = *req.BusinessPercentage
	}

	vehicle := &model.Vehicle{
		VehicleID:          newRecordID("vehicle"),
		UserID:             userID,
		Name:               req.Name,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		BusinessPercentage: businessPct,
	}
	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) List(userID string) ([]*model.Vehicle, error) {
	return s.vehicleRepo.ListByUserID(userID)
}

func (s *VehicleService) Delete(userID, vehicleID string) error {
	rows, err := s.vehicleRepo.Delete(vehicleID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
