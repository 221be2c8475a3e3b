package service

import (
	"math"
	"time"

	"github.com/milewise/mile_go_server/config"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/repository"
)

type ReportService struct {
	tripRepo    *repository.TripRepository
	expenseRepo *repository.ExpenseRepository
	cfg         *config.Config
}

func NewReportService(tripRepo *repository.TripRepository, expenseRepo *repository.ExpenseRepository, cfg *config.Config) *ReportService {
	return &ReportService{
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		cfg:         cfg,
	}
}

// Dashboard summarizes the current month and year to date for the user.
func (s *ReportService) Dashboard(userID string) (*dto.DashboardStats, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	monthMiles, err := s.tripRepo.SumDistanceSince(userID, monthStart, true)
	if err != nil {
		return nil, err
	}
	yearMiles, err := s.tripRepo.SumDistanceSince(userID, yearStart, true)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenseRepo.SumAmountSince(userID, yearStart)
	if err != nil {
		return nil, err
	}

	mileageDeduction := yearMiles * s.cfg.Report.MileageRate
	totalDeduction := mileageDeduction + totalExpenses

	stats := &dto.DashboardStats{
		MonthMiles:          round2(monthMiles),
		YearMiles:           round2(yearMiles),
		TotalExpenses:       round2(totalExpenses),
		MileageDeduction:    round2(mileageDeduction),
		TotalDeduction:      round2(totalDeduction),
		EstimatedTaxSavings: round2(totalDeduction * s.cfg.Report.TaxRate),
	}
	return stats, nil
}

// TaxReport aggregates trips and expenses over a caller-chosen period.
func (s *ReportService) TaxReport(userID string, start, end time.Time) (*dto.TaxReport, error) {
	totalMiles, err := s.tripRepo.SumDistanceBetween(userID, start, end, false)
	if err != nil {
		return nil, err
	}
	businessMiles, err := s.tripRepo.SumDistanceBetween(userID, start, end, true)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenseRepo.SumAmountBetween(userID, start, end)
	if err != nil {
		return nil, err
	}

	totalDeduction := businessMiles*s.cfg.Report.MileageRate + totalExpenses

	report := &dto.TaxReport{
		TotalMiles:      round2(totalMiles),
		BusinessMiles:   round2(businessMiles),
		TotalDeduction:  round2(totalDeduction),
		TotalExpenses:   round2(totalExpenses),
		TotalTaxSavings: round2(totalDeduction * s.cfg.Report.TaxRate),
		PeriodStart:     start,
		PeriodEnd:       end,
	}
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
