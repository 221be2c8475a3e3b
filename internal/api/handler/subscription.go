package handler

import (
	"errors"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type SubscriptionHandler struct {
	entitlementService *service.EntitlementService
	cfg                *config.Config
}

func NewSubscriptionHandler(entitlementService *service.EntitlementService, cfg *config.Config) *SubscriptionHandler {
	return &SubscriptionHandler{
		entitlementService: entitlementService,
		cfg:                cfg,
	}
}

// GetStatus returns the caller's entitlement summary.
// GET /api/v1/subscription/status
func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	status, err := h.entitlementService.GetStatus(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, status)
}

// ChangePlan switches the caller to another tier.
// POST /api/v1/subscription/plan
func (h *SubscriptionHandler) ChangePlan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.entitlementService.ChangePlan(userID, req.PlanType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlan) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "plan changed", sub)
}

// CheckLimit answers whether a feature is usable right now.
// GET /api/v1/subscription/limits?feature=auto_trip
func (h *SubscriptionHandler) CheckLimit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	feature := c.Query("feature")
	if feature == "" {
		response.ParamError(c, "feature required")
		return
	}

	check, err := h.entitlementService.CheckFeature(userID, feature)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, check)
}

// ListPlans returns the static plan catalog. Public.
// GET /api/v1/subscription/plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	ids := make([]string, 0, len(h.cfg.Subscription.Plans))
	for id := range h.cfg.Subscription.Plans {
		ids = append(ids, id)
	}
	// Cheapest first
	sort.Slice(ids, func(i, j int) bool {
		a, b := h.cfg.Subscription.Plans[ids[i]], h.cfg.Subscription.Plans[ids[j]]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return ids[i] < ids[j]
	})

	catalog := dto.PlanCatalog{Plans: make([]dto.PlanItem, 0, len(ids))}
	for _, id := range ids {
		plan := h.cfg.Subscription.Plans[id]
		catalog.Plans = append(catalog.Plans, dto.PlanItem{
			ID:          id,
			Name:        plan.Name,
			Price:       plan.Price,
			Interval:    plan.Interval,
			Popular:     plan.Popular,
			Features:    plan.Features,
			Limitations: plan.Limitations,
		})
	}

	response.Success(c, catalog)
}
