// services/report_service.go
package services

import (
	"fmt"
	"time"

	"safir-backend/models"

	"gorm.io/gorm"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// DashboardOverview backs the admin landing page.
type DashboardOverview struct {
	TotalRooms         int64   `json:"total_rooms"`
	OccupiedRooms      int64   `json:"occupied_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	Revenue            float64 `json:"revenue"`
	ActiveReservations int64   `json:"active_reservations"`
	RoomStatusCounts   struct {
		Available   int64 `json:"available"`
		Booked      int64 `json:"booked"`
		Maintenance int64 `json:"maintenance"`
	} `json:"room_status_counts"`
}

// PerformanceReport carries the hotel KPIs: ADR, RevPAR and occupancy, plus a
// monthly income-vs-expense series from the ledger.
type PerformanceReport struct {
	TotalRevenue      float64        `json:"total_revenue"`
	TotalNights       int64          `json:"total_nights"`
	TotalReservations int64          `json:"total_reservations"`
	ADR               float64        `json:"adr"`
	RevPAR            float64        `json:"revpar"`
	OccupancyRate     float64        `json:"occupancy_rate"`
	Monthly           []MonthlyTotal `json:"monthly"`
}

type MonthlyTotal struct {
	Month    string  `json:"month"` // "2024-03"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// revPARWindow keeps RevPAR a simplified monthly figure.
const revPARWindow = 30

func (s *ReportService) roomCounts(overview *DashboardOverview) error {
	if err := s.DB.Model(&models.Room{}).Count(&overview.TotalRooms).Error; err != nil {
		return err
	}
	counts := map[string]*int64{
		models.RoomAvailable:   &overview.RoomStatusCounts.Available,
		models.RoomBooked:      &overview.RoomStatusCounts.Booked,
		models.RoomMaintenance: &overview.RoomStatusCounts.Maintenance,
	}
	for status, dst := range counts {
		if err := s.DB.Model(&models.Room{}).
			Where("status = ?", status).
			Count(dst).Error; err != nil {
			return err
		}
	}
	overview.OccupiedRooms = overview.RoomStatusCounts.Booked
	return nil
}

// Overview computes the dashboard headline numbers. Revenue counts CONFIRMED
// and COMPLETED reservations only.
func (s *ReportService) Overview() (DashboardOverview, error) {
	var overview DashboardOverview

	if err := s.roomCounts(&overview); err != nil {
		return overview, fmt.Errorf("failed to count rooms: %w", err)
	}
	if overview.TotalRooms > 0 {
		overview.OccupancyRate = float64(overview.OccupiedRooms) / float64(overview.TotalRooms) * 100
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("status IN ?", []string{models.ReservationConfirmed, models.ReservationCompleted}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&overview.Revenue).Error; err != nil {
		return overview, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationConfirmed).
		Count(&overview.ActiveReservations).Error; err != nil {
		return overview, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return overview, nil
}

// Report computes the analytics page KPIs.
func (s *ReportService) Report() (PerformanceReport, error) {
	var report PerformanceReport

	revenueStatuses := []string{models.ReservationConfirmed, models.ReservationCompleted}

	if err := s.DB.Model(&models.Reservation{}).
		Where("status IN ?", revenueStatuses).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&report.TotalRevenue).Error; err != nil {
		return report, fmt.Errorf("failed to sum revenue: %w", err)
	}

	var nights int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("status IN ?", revenueStatuses).
		Select("COALESCE(SUM(total_nights), 0)").
		Scan(&nights).Error; err != nil {
		return report, fmt.Errorf("failed to sum nights: %w", err)
	}
	report.TotalNights = nights

	if err := s.DB.Model(&models.Reservation{}).
		Count(&report.TotalReservations).Error; err != nil {
		return report, fmt.Errorf("failed to count reservations: %w", err)
	}

	var totalRooms, bookedRooms int64
	if err := s.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return report, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).
		Where("status = ?", models.RoomBooked).
		Count(&bookedRooms).Error; err != nil {
		return report, fmt.Errorf("failed to count booked rooms: %w", err)
	}

	if report.TotalNights > 0 {
		report.ADR = report.TotalRevenue / float64(report.TotalNights)
	}
	if totalRooms > 0 {
		report.RevPAR = report.TotalRevenue / (float64(totalRooms) * revPARWindow)
		report.OccupancyRate = float64(bookedRooms) / float64(totalRooms) * 100
	}

	monthly, err := s.monthlySeries(6)
	if err != nil {
		return report, err
	}
	report.Monthly = monthly

	return report, nil
}

// monthlySeries buckets ledger entries by calendar month in Go, which keeps
// the query portable across MySQL and the sqlite test driver.
func (s *ReportService) monthlySeries(months int) ([]MonthlyTotal, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var txs []models.Transaction
	if err := s.DB.
		Where("date >= ?", start).
		Order("date ASC").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to load ledger for monthly series: %w", err)
	}

	series := make([]MonthlyTotal, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		series[i] = MonthlyTotal{Month: key}
		index[key] = i
	}

	for _, tx := range txs {
		i, ok := index[tx.Date.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			series[i].Income += tx.Amount
		case models.TransactionExpense:
			series[i].Expenses += tx.Amount
		}
	}

	return series, nil
}
