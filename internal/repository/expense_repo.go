package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *ExpenseRepository) ListByUserID(userID string, limit int) ([]*model.Expense, error) {
	var expenses []*model.Expense
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Delete(expenseID, userID string) (int64, error) {
	result := r.db.Where("expense_id = ? AND user_id = ?", expenseID, userID).
		Delete(&model.Expense{})
	return result.RowsAffected, result.Error
}

func (r *ExpenseRepository) SumAmountSince(userID string, since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date >= ?", userID, since).
		Scan(&total).Error
	return total, err
}

func (r *ExpenseRepository) SumAmountBetween(userID string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Scan(&total).Error
	return total, err
}
