package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/milewise/mile_go_server/internal/model"
)

var seq int64

func nextSeq() int64 {
	return atomic.AddInt64(&seq, 1)
}

// TestUser creates a user row.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	n := nextSeq()
	user := &model.User{
		UserID: fmt.Sprintf("user_%012d", n),
		Email:  fmt.Sprintf("test_%d@example.com", n),
		Name:   "Test User",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail sets the user email.
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// TestSession creates a session row, valid for 7 days unless overridden.
func TestSession(t *testing.T, db *gorm.DB, userID, token string, opts ...func(*model.Session)) *model.Session {
	t.Helper()

	session := &model.Session{
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    time.Now().UTC().Add(7 * 24 * time.Hour),
	}

	for _, opt := range opts {
		opt(session)
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return session
}

// WithExpiry sets the session expiry.
func WithExpiry(expiresAt time.Time) func(*model.Session) {
	return func(s *model.Session) {
		s.ExpiresAt = expiresAt
	}
}

// TestSubscription creates a subscription row, active unless overridden.
func TestSubscription(t *testing.T, db *gorm.DB, userID, planType string, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:    userID,
		PlanType:  planType,
		Status:    model.SubscriptionStatusActive,
		StartedAt: time.Now().UTC(),
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithStatus sets the subscription status.
func WithStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}

// WithStartedAt sets the subscription start.
func WithStartedAt(startedAt time.Time) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.StartedAt = startedAt
	}
}

// TestVehicle creates a vehicle row.
func TestVehicle(t *testing.T, db *gorm.DB, userID, name string) *model.Vehicle {
	t.Helper()

	vehicle := &model.Vehicle{
		VehicleID:          fmt.Sprintf("vehicle_%012d", nextSeq()),
		UserID:             userID,
		Name:               name,
		BusinessPercentage: 100,
	}

	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("Failed to create test vehicle: %v", err)
	}

	return vehicle
}

// TestTrip creates a trip row: 10 business miles starting now unless overridden.
func TestTrip(t *testing.T, db *gorm.DB, userID string, opts ...func(*model.Trip)) *model.Trip {
	t.Helper()

	trip := &model.Trip{
		TripID:     fmt.Sprintf("trip_%012d", nextSeq()),
		UserID:     userID,
		StartTime:  time.Now().UTC(),
		Distance:   10,
		IsBusiness: true,
	}

	for _, opt := range opts {
		opt(trip)
	}

	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("Failed to create test trip: %v", err)
	}

	return trip
}

// WithAutomatic marks the trip as automatically captured.
func WithAutomatic(automatic bool) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.IsAutomatic = automatic
	}
}

// WithStartTime sets the trip start.
func WithStartTime(startTime time.Time) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.StartTime = startTime
	}
}

// WithDistance sets the trip distance.
func WithDistance(distance float64) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.Distance = distance
	}
}

// WithBusiness sets the business flag.
func WithBusiness(business bool) func(*model.Trip) {
	return func(tr *model.Trip) {
		tr.IsBusiness = business
	}
}

// TestExpense creates an expense row.
func TestExpense(t *testing.T, db *gorm.DB, userID string, amount float64, date time.Time) *model.Expense {
	t.Helper()

	expense := &model.Expense{
		ExpenseID: fmt.Sprintf("expense_%012d", nextSeq()),
		UserID:    userID,
		Amount:    amount,
		Category:  "fuel",
		Date:      date,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return expense
}
