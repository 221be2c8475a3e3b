package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
	"github.com/milewise/mile_go_server/internal/testutil"
)

func setupExpenseService(t *testing.T) (*ExpenseService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	service := NewExpenseService(repository.NewExpenseRepository(db))

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestExpenseService_Create(t *testing.T) {
	service, db, cleanup := setupExpenseService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	notes := "Oil change"
	receipt := "dGVzdC1yZWNlaXB0"
	expense, err := service.Create(user.UserID, &dto.CreateExpenseRequest{
		Amount:             89.99,
		Category:           "maintenance",
		Date:               time.Now().UTC(),
		Notes:              &notes,
		ReceiptImageBase64: &receipt,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(expense.ExpenseID, "expense_"))
	assert.Equal(t, 89.99, expense.Amount)
	assert.Equal(t, "maintenance", expense.Category)
	require.NotNil(t, expense.ReceiptImageBase64)
	assert.Equal(t, receipt, *expense.ReceiptImageBase64)
}

func TestExpenseService_List(t *testing.T) {
	service, db, cleanup := setupExpenseService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestExpense(t, db, user.UserID, 10, time.Now().UTC())
	testutil.TestExpense(t, db, user.UserID, 20, time.Now().UTC())

	expenses, err := service.List(user.UserID)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}

func TestExpenseService_Delete_NotOwned(t *testing.T) {
	service, db, cleanup := setupExpenseService(t)
	defer cleanup()

	alice := testutil.TestUser(t, db)
	bob := testutil.TestUser(t, db)
	expense := testutil.TestExpense(t, db, alice.UserID, 15, time.Now().UTC())

	assert.ErrorIs(t, service.Delete(bob.UserID, expense.ExpenseID), ErrExpenseNotFound)
	assert.NoError(t, service.Delete(alice.UserID, expense.ExpenseID))
}
