package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/repository"
	"github.com/milewise/mile_go_server/internal/testutil"
)

func testPlansConfig() *config.Config {
	return &config.Config{
		Subscription: config.SubscriptionConfig{
			Plans: map[string]config.PlanConfig{
				"basic": {
					Name:          "Basic",
					Price:         0,
					Interval:      "month",
					Features:      []string{"Manual trip tracking", "Basic tax reports"},
					AutoTripLimit: 20,
				},
				"mid": {
					Name:          "Drive",
					Price:         5.99,
					Interval:      "month",
					Popular:       true,
					Features:      []string{"Unlimited automatic trip tracking"},
					AutoTripLimit: -1,
				},
				"premium": {
					Name:          "Drive + Money",
					Price:         9.99,
					Interval:      "month",
					Features:      []string{"Bank account linking"},
					AutoTripLimit: -1,
					BankLink:      true,
				},
			},
		},
		Report: config.ReportConfig{
			MileageRate: 0.67,
			TaxRate:     0.25,
		},
	}
}

func setupEntitlementService(t *testing.T) (*EntitlementService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tripRepo := repository.NewTripRepository(db)

	service := NewEntitlementService(subscriptionRepo, tripRepo, testPlansConfig())

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestEntitlementService_GetCurrentPlan_LazyBasic(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	sub, err := service.GetCurrentPlan(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "basic", sub.PlanType)
	assert.Equal(t, model.SubscriptionStatusActive, sub.Status)

	// Repeated queries reuse the materialized row
	_, err = service.GetCurrentPlan(user.UserID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Subscription{}).Where("user_id = ?", user.UserID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEntitlementService_GetCurrentPlan_ExistingPlan(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.UserID, "premium")

	sub, err := service.GetCurrentPlan(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "premium", sub.PlanType)
}

func TestEntitlementService_ChangePlan(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.UserID, "basic")

	sub, err := service.ChangePlan(user.UserID, "premium")
	require.NoError(t, err)
	assert.Equal(t, "premium", sub.PlanType)

	var active int64
	require.NoError(t, db.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ?", user.UserID, model.SubscriptionStatusActive).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestEntitlementService_ChangePlan_Twice(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	_, err := service.ChangePlan(user.UserID, "mid")
	require.NoError(t, err)
	_, err = service.ChangePlan(user.UserID, "premium")
	require.NoError(t, err)

	var active int64
	require.NoError(t, db.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ?", user.UserID, model.SubscriptionStatusActive).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)

	current, err := service.GetCurrentPlan(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "premium", current.PlanType)
}

func TestEntitlementService_ChangePlan_UnknownTier(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.UserID, "mid")

	_, err := service.ChangePlan(user.UserID, "gold")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	// The rejected change leaves the active row untouched
	current, err := service.GetCurrentPlan(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "mid", current.PlanType)
}

func TestEntitlementService_CheckFeature_AutoTripUnderLimit(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	for i := 0; i < 19; i++ {
		testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true))
	}

	check, err := service.CheckFeature(user.UserID, FeatureAutoTrip)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 1, check.Remaining)
}

func TestEntitlementService_CheckFeature_AutoTripAtLimit(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	for i := 0; i < 20; i++ {
		testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true))
	}

	check, err := service.CheckFeature(user.UserID, FeatureAutoTrip)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining)
}

func TestEntitlementService_CheckFeature_ManualTripsNotCounted(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	for i := 0; i < 25; i++ {
		testutil.TestTrip(t, db, user.UserID)
	}

	check, err := service.CheckFeature(user.UserID, FeatureAutoTrip)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 20, check.Remaining)
}

func TestEntitlementService_CheckFeature_LastMonthNotCounted(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	now := time.Now().UTC()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Add(-time.Hour)
	for i := 0; i < 20; i++ {
		testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true), testutil.WithStartTime(lastMonth))
	}

	check, err := service.CheckFeature(user.UserID, FeatureAutoTrip)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, 20, check.Remaining)
}

func TestEntitlementService_CheckFeature_AutoTripUnlimited(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.UserID, "mid")
	for i := 0; i < 50; i++ {
		testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true))
	}

	check, err := service.CheckFeature(user.UserID, FeatureAutoTrip)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, Unlimited, check.Remaining)
}

func TestEntitlementService_CheckFeature_BankLink(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	basicUser := testutil.TestUser(t, db)
	midUser := testutil.TestUser(t, db)
	premiumUser := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, midUser.UserID, "mid")
	testutil.TestSubscription(t, db, premiumUser.UserID, "premium")

	check, err := service.CheckFeature(basicUser.UserID, FeatureBankLink)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, 0, check.Remaining)

	check, err = service.CheckFeature(midUser.UserID, FeatureBankLink)
	require.NoError(t, err)
	assert.False(t, check.Allowed)

	check, err = service.CheckFeature(premiumUser.UserID, FeatureBankLink)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, Unlimited, check.Remaining)
}

func TestEntitlementService_CheckFeature_UnknownFeature(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	check, err := service.CheckFeature(user.UserID, "teleportation")
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, Unlimited, check.Remaining)
}

func TestEntitlementService_GetStatus(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	for i := 0; i < 3; i++ {
		testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true))
	}

	status, err := service.GetStatus(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "basic", status.PlanType)
	assert.True(t, status.IsActive)
	assert.Equal(t, 3, status.Usage["auto_trips_this_month"])
	assert.Equal(t, 20, status.Limits["auto_trips"])
}

func TestEntitlementService_GetStatus_UnknownStoredPlan(t *testing.T) {
	service, db, cleanup := setupEntitlementService(t)
	defer cleanup()

	// A stale row referencing a tier no longer in the catalog falls back to basic limits
	user := testutil.TestUser(t, db)
	testutil.TestSubscription(t, db, user.UserID, "legacy")

	status, err := service.GetStatus(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "legacy", status.PlanType)
	assert.Equal(t, 20, status.Limits["auto_trips"])
}
