package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	ErrInvalidPlan = errors.New("invalid plan type")
)

const (
	FeatureAutoTrip = "auto_trip"
	FeatureBankLink = "bank_link"

	defaultPlanType = "basic"

	// Unlimited marks a limit or remaining allowance that is not metered.
	Unlimited = -1
)

type EntitlementService struct {
	subscriptionRepo *repository.SubscriptionRepository
	tripRepo         *repository.TripRepository
	cfg              *config.Config
}

func NewEntitlementService(subscriptionRepo *repository.SubscriptionRepository, tripRepo *repository.TripRepository, cfg *config.Config) *EntitlementService {
	return &EntitlementService{
		subscriptionRepo: subscriptionRepo,
		tripRepo:         tripRepo,
		cfg:              cfg,
	}
}

// GetCurrentPlan returns the most recent active subscription, lazily
// materializing a basic one for users without any subscription row. The
// re-read after creation keeps concurrent first-time queries converging on a
// single row.
func (s *EntitlementService) GetCurrentPlan(userID string) (*model.Subscription, error) {
	sub, err := s.subscriptionRepo.GetActiveByUserID(userID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub = &model.Subscription{
		UserID:    userID,
		PlanType:  defaultPlanType,
		Status:    model.SubscriptionStatusActive,
		StartedAt: time.Now().UTC(),
	}
	if err := s.subscriptionRepo.Create(sub); err != nil {
		return nil, err
	}

	return s.subscriptionRepo.GetActiveByUserID(userID)
}

// ChangePlan cancels the active subscription and inserts the new tier as one
// atomic unit. A failed change leaves the prior active row untouched.
func (s *EntitlementService) ChangePlan(userID, planType string) (*model.Subscription, error) {
	if _, ok := s.cfg.Subscription.Plans[planType]; !ok {
		return nil, ErrInvalidPlan
	}

	sub := &model.Subscription{
		UserID:    userID,
		PlanType:  planType,
		Status:    model.SubscriptionStatusActive,
		StartedAt: time.Now().UTC(),
	}
	if err := s.subscriptionRepo.Replace(userID, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetStatus is the entitlement summary: plan, features and this month's usage
// against the plan limits.
func (s *EntitlementService) GetStatus(userID string) (*dto.SubscriptionStatus, error) {
	sub, err := s.GetCurrentPlan(userID)
	if err != nil {
		return nil, err
	}
	plan := s.planConfig(sub.PlanType)

	autoTrips, err := s.tripRepo.CountAutomaticSince(userID, monthStart())
	if err != nil {
		return nil, err
	}

	status := &dto.SubscriptionStatus{
		PlanType: sub.PlanType,
		IsActive: sub.Status == model.SubscriptionStatusActive,
		Features: plan.Features,
		Usage: map[string]int{
			"auto_trips_this_month": int(autoTrips),
		},
		Limits: map[string]int{
			"auto_trips": plan.AutoTripLimit,
		},
	}
	return status, nil
}

// CheckFeature reports whether the feature is usable now and how much
// allowance remains. Unknown feature names are not gated.
func (s *EntitlementService) CheckFeature(userID, feature string) (*dto.FeatureCheck, error) {
	sub, err := s.GetCurrentPlan(userID)
	if err != nil {
		return nil, err
	}
	plan := s.planConfig(sub.PlanType)

	check := &dto.FeatureCheck{
		Feature:   feature,
		Allowed:   true,
		Remaining: Unlimited,
	}

	switch feature {
	case FeatureAutoTrip:
		if plan.AutoTripLimit < 0 {
			return check, nil
		}
		count, err := s.tripRepo.CountAutomaticSince(userID, monthStart())
		if err != nil {
			return nil, err
		}
		remaining := plan.AutoTripLimit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		check.Allowed = int(count) < plan.AutoTripLimit
		check.Remaining = remaining
	case FeatureBankLink:
		check.Allowed = plan.BankLink
		if !plan.BankLink {
			check.Remaining = 0
		}
	}

	return check, nil
}

func (s *EntitlementService) planConfig(planType string) config.PlanConfig {
	plan, ok := s.cfg.Subscription.Plans[planType]
	if !ok {
		plan = s.cfg.Subscription.Plans[defaultPlanType]
	}
	return plan
}

// monthStart is the first instant of the current calendar month, UTC.
func monthStart() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
