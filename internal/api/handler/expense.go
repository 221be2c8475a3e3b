package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// Create records an expense.
// POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	expense, err := h.expenseService.Create(userID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, expense)
}

// List returns the caller's most recent expenses.
// GET /api/v1/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	expenses, err := h.expenseService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, expenses)
}

// Delete removes an expense owned by the caller.
// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	err := h.expenseService.Delete(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "expense deleted", nil)
}
