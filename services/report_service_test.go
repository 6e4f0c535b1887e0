package services

import (
	"testing"
	"time"

	"safir-backend/models"
)

func TestDashboardOverview(t *testing.T) {
	db := testDB(t)
	suite := seedRoom(t, db, "Nile Suite", 4500, 800)
	seedRoom(t, db, "Family Room", 2800, 500)
	economy := seedRoom(t, db, "Economy Room", 1500, 400)
	resSvc := NewReservationService(db)
	svc := NewReportService(db)

	// One CONFIRMED walk-in, one NEW online booking. Only the first counts
	// toward revenue and active reservations; both lock their rooms.
	confirmed, err := resSvc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "Mona Fathy", RoomIDs: []uint{suite.ID},
		CheckIn: "2024-03-01", CheckOut: "2024-03-03",
	})
	if err != nil {
		t.Fatalf("CreateWalkIn failed: %v", err)
	}
	if _, err := resSvc.CreateOnline(OnlineReservationInput{
		FullName: "Omar Hassan", Phone: "+20100", RoomID: economy.ID,
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
	}); err != nil {
		t.Fatalf("CreateOnline failed: %v", err)
	}

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}

	if overview.TotalRooms != 3 {
		t.Fatalf("total rooms = %d, want 3", overview.TotalRooms)
	}
	if overview.OccupiedRooms != 2 {
		t.Fatalf("occupied rooms = %d, want 2", overview.OccupiedRooms)
	}
	if !almostEqual(overview.OccupancyRate, 200.0/3) {
		t.Fatalf("occupancy rate = %v, want %v", overview.OccupancyRate, 200.0/3)
	}
	if !almostEqual(overview.Revenue, confirmed.TotalPrice) {
		t.Fatalf("revenue = %v, want %v (confirmed only)", overview.Revenue, confirmed.TotalPrice)
	}
	if overview.ActiveReservations != 1 {
		t.Fatalf("active reservations = %d, want 1", overview.ActiveReservations)
	}
	if overview.RoomStatusCounts.Available != 1 || overview.RoomStatusCounts.Booked != 2 {
		t.Fatalf("room status counts off: %+v", overview.RoomStatusCounts)
	}
}

func TestPerformanceReport(t *testing.T) {
	db := testDB(t)
	suite := seedRoom(t, db, "Nile Suite", 4500, 800)
	seedRoom(t, db, "Family Room", 2800, 500)
	seedRoom(t, db, "Economy Room", 1500, 400)
	resSvc := NewReservationService(db)
	svc := NewReportService(db)

	// 4500 x 2 nights = 9000, x 1.26 = 11340 revenue over 2 nights.
	reservation, err := resSvc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "Mona Fathy", RoomIDs: []uint{suite.ID},
		CheckIn: "2024-03-01", CheckOut: "2024-03-03",
	})
	if err != nil {
		t.Fatalf("CreateWalkIn failed: %v", err)
	}

	report, err := svc.Report()
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	if !almostEqual(report.TotalRevenue, reservation.TotalPrice) {
		t.Fatalf("total revenue = %v, want %v", report.TotalRevenue, reservation.TotalPrice)
	}
	if report.TotalNights != 2 {
		t.Fatalf("total nights = %d, want 2", report.TotalNights)
	}
	if report.TotalReservations != 1 {
		t.Fatalf("total reservations = %d, want 1", report.TotalReservations)
	}
	if !almostEqual(report.ADR, reservation.TotalPrice/2) {
		t.Fatalf("ADR = %v, want %v", report.ADR, reservation.TotalPrice/2)
	}
	if !almostEqual(report.RevPAR, reservation.TotalPrice/(3*revPARWindow)) {
		t.Fatalf("RevPAR = %v, want %v", report.RevPAR, reservation.TotalPrice/(3*revPARWindow))
	}
	if !almostEqual(report.OccupancyRate, 100.0/3) {
		t.Fatalf("occupancy rate = %v, want %v", report.OccupancyRate, 100.0/3)
	}
	if len(report.Monthly) != 6 {
		t.Fatalf("monthly series has %d buckets, want 6", len(report.Monthly))
	}
}

func TestMonthlySeriesBuckets(t *testing.T) {
	db := testDB(t)
	vault := seedVault(t, db, "MAIN", "Main Safe", 150000)
	finSvc := NewFinanceService(db)
	svc := NewReportService(db)

	now := time.Now().UTC()
	thisMonth := now.Format("2006-01-02")
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -1, 0).Format("2006-01-02")

	seedTransaction(t, finSvc, vault.ID, models.TransactionIncome, 5000, thisMonth)
	seedTransaction(t, finSvc, vault.ID, models.TransactionIncome, 1000, lastMonth)
	seedTransaction(t, finSvc, vault.ID, models.TransactionExpense, 400, lastMonth)

	series, err := svc.monthlySeries(6)
	if err != nil {
		t.Fatalf("monthlySeries failed: %v", err)
	}
	if len(series) != 6 {
		t.Fatalf("got %d buckets, want 6", len(series))
	}

	latest := series[5]
	if latest.Month != now.Format("2006-01") {
		t.Fatalf("latest bucket = %q, want %q", latest.Month, now.Format("2006-01"))
	}
	if !almostEqual(latest.Income, 5000) || !almostEqual(latest.Expenses, 0) {
		t.Fatalf("latest bucket off: %+v", latest)
	}

	previous := series[4]
	if !almostEqual(previous.Income, 1000) || !almostEqual(previous.Expenses, 400) {
		t.Fatalf("previous bucket off: %+v", previous)
	}
}
