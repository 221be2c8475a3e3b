package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/repository"
	"github.com/milewise/mile_go_server/internal/service"
	"github.com/milewise/mile_go_server/internal/testutil"
)

func plansConfig() *config.Config {
	return &config.Config{
		Subscription: config.SubscriptionConfig{
			Plans: map[string]config.PlanConfig{
				"basic": {
					Name:          "Basic",
					Price:         0,
					Interval:      "month",
					Features:      []string{"Manual trip tracking"},
					Limitations:   []string{"20 automatic trips per month"},
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
	}
}

func setupSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tripRepo := repository.NewTripRepository(db)

	cfg := plansConfig()
	entitlementService := service.NewEntitlementService(subscriptionRepo, tripRepo, cfg)
	h := NewSubscriptionHandler(entitlementService, cfg)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return h, db, cleanup
}

func TestSubscriptionHandler_GetStatus(t *testing.T) {
	h, db, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestTrip(t, db, user.UserID, testutil.WithAutomatic(true))

	router := gin.New()
	router.GET("/subscription/status", asUser(user, "tok"), h.GetStatus)

	w := performRequest(router, "GET", "/subscription/status", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"plan_type":"basic"`)
	assert.Contains(t, body, `"auto_trips_this_month":1`)
	assert.Contains(t, body, `"auto_trips":20`)
}

func TestSubscriptionHandler_ChangePlan(t *testing.T) {
	h, db, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.POST("/subscription/plan", asUser(user, "tok"), h.ChangePlan)

	w := performRequest(router, "POST", "/subscription/plan", dto.ChangePlanRequest{PlanType: "premium"})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	assert.Contains(t, w.Body.String(), `"plan_type":"premium"`)
}

func TestSubscriptionHandler_ChangePlan_UnknownTier(t *testing.T) {
	h, db, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.POST("/subscription/plan", asUser(user, "tok"), h.ChangePlan)

	w := performRequest(router, "POST", "/subscription/plan", dto.ChangePlanRequest{PlanType: "gold"})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestSubscriptionHandler_CheckLimit(t *testing.T) {
	h, db, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.GET("/subscription/limits", asUser(user, "tok"), h.CheckLimit)

	w := performRequest(router, "GET", "/subscription/limits?feature=auto_trip", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)
	assert.Contains(t, w.Body.String(), `"remaining":20`)
}

func TestSubscriptionHandler_CheckLimit_MissingFeature(t *testing.T) {
	h, db, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.GET("/subscription/limits", asUser(user, "tok"), h.CheckLimit)

	w := performRequest(router, "GET", "/subscription/limits", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestSubscriptionHandler_ListPlans(t *testing.T) {
	h, _, cleanup := setupSubscriptionHandler(t)
	defer cleanup()

	// Public route, no auth middleware
	router := gin.New()
	router.GET("/subscription/plans", h.ListPlans)

	w := performRequest(router, "GET", "/subscription/plans", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var catalog dto.PlanCatalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	require.Len(t, catalog.Plans, 3)

	// Cheapest first
	assert.Equal(t, "basic", catalog.Plans[0].ID)
	assert.Equal(t, "mid", catalog.Plans[1].ID)
	assert.Equal(t, "premium", catalog.Plans[2].ID)
	assert.True(t, catalog.Plans[1].Popular)
}
