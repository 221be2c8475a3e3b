package service

import (
	"errors"

	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrAutoTripLimit    = errors.New("automatic trip limit reached for this month")
)

const tripListLimit = 100

type TripService struct {
	tripRepo    *repository.TripRepository
	entitlement *EntitlementService
}

func NewTripService(tripRepo *repository.TripRepository, entitlement *EntitlementService) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		entitlement: entitlement,
	}
}

// Create logs a trip. Automatic captures are gated by the plan's monthly
// allowance; the check-then-insert is unsynchronized, so crossing the limit
// exactly at a boundary may exceed it by one. Accepted, not remediated.
func (s *TripService) Create(userID string, req *dto.CreateTripRequest) (*model.Trip, error) {
	if req.IsAutomatic {
		check, err := s.entitlement.CheckFeature(userID, FeatureAutoTrip)
		if err != nil {
			return nil, err
		}
		if !check.Allowed {
			return nil, ErrAutoTripLimit
		}
	}

	isBusiness := true
	if req.IsBusiness != nil {
		isBusiness = *req.IsBusiness
	}

	trip := &model.Trip{
		TripID:        newRecordID("trip"),
		UserID:        userID,
		VehicleID:     req.VehicleID,
		StartTime:     req.StartTime.UTC(),
		Distance:      req.Distance,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Purpose:       req.Purpose,
		IsBusiness:    isBusiness,
		IsAutomatic:   req.IsAutomatic,
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		trip.EndTime = &end
	}

	if err := s.tripRepo.Create(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) List(userID string) ([]*model.Trip, error) {
	return s.tripRepo.ListByUserID(userID, tripListLimit)
}

// Update writes only the populated fields of the request. An empty update set
// is a validation error, not a no-op.
func (s *TripService) Update(userID, tripID string, req *dto.UpdateTripRequest) (*model.Trip, error) {
	fields := map[string]interface{}{}
	if req.VehicleID != nil {
		fields["vehicle_id"] = *req.VehicleID
	}
	if req.StartTime != nil {
		fields["start_time"] = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		fields["end_time"] = req.EndTime.UTC()
	}
	if req.Distance != nil {
		fields["distance"] = *req.Distance
	}
	if req.StartLocation != nil {
		fields["start_location"] = *req.StartLocation
	}
	if req.EndLocation != nil {
		fields["end_location"] = *req.EndLocation
	}
	if req.Purpose != nil {
		fields["purpose"] = *req.Purpose
	}
	if req.IsBusiness != nil {
		fields["is_business"] = *req.IsBusiness
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	rows, err := s.tripRepo.UpdateFields(tripID, userID, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrTripNotFound
	}

	return s.tripRepo.GetByTripID(tripID, userID)
}

func (s *TripService) Delete(userID, tripID string) error {
	rows, err := s.tripRepo.Delete(tripID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTripNotFound
	}
	return nil
}
