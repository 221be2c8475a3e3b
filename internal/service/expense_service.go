package service

import (
	"errors"

	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

const expenseListLimit = 100

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

func (s *ExpenseService) Create(userID string, req *dto.CreateExpenseRequest) (*model.Expense, error) {
	expense := &model.Expense{
		ExpenseID:          newRecordID("expense"),
		UserID:             userID,
		VehicleID:          req.VehicleID,
		Amount:             req.Amount,
		Category:           req.Category,
		Date:               req.Date.UTC(),
		Notes:              req.Notes,
		ReceiptImageBase64: req.ReceiptImageBase64,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) List(userID string) ([]*model.Expense, error) {
	return s.expenseRepo.ListByUserID(userID, expenseListLimit)
}

func (s *ExpenseService) Delete(userID, expenseID string) error {
	rows, err := s.expenseRepo.Delete(expenseID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
