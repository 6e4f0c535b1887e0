package services

import (
	"strings"
	"testing"

	"safir-backend/models"
)

func TestCreateOnline(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Nile Suite", 4500, 800)
	svc := NewReservationService(db)

	reservation, err := svc.CreateOnline(OnlineReservationInput{
		FullName:      "Omar Hassan",
		Phone:         "+201001234567",
		RoomID:        room.ID,
		CheckIn:       "2024-03-01",
		CheckOut:      "2024-03-04",
		ExtraBeds:     1,
		PaymentOption: "DEPOSIT",
	})
	if err != nil {
		t.Fatalf("CreateOnline failed: %v", err)
	}

	if reservation.Status != models.ReservationNew {
		t.Fatalf("status = %q, want %q", reservation.Status, models.ReservationNew)
	}
	if reservation.Source != models.SourceOnline {
		t.Fatalf("source = %q, want %q", reservation.Source, models.SourceOnline)
	}
	if reservation.PaymentMethod != models.PaymentCard {
		t.Fatalf("payment method = %q, want %q for DEPOSIT", reservation.PaymentMethod, models.PaymentCard)
	}
	if reservation.TotalNights != 3 {
		t.Fatalf("total nights = %d, want 3", reservation.TotalNights)
	}
	// 4500 x 3 + 800 extra bed = 14300, x 1.14 VAT = 16302.
	if !almostEqual(reservation.TotalPrice, 16302) {
		t.Fatalf("total price = %v, want 16302", reservation.TotalPrice)
	}
	if !strings.HasPrefix(reservation.ReferenceCode, "RES-") {
		t.Fatalf("reference code %q missing RES- prefix", reservation.ReferenceCode)
	}
	if len(reservation.Rooms) != 1 {
		t.Fatalf("got %d reservation rooms, want 1", len(reservation.Rooms))
	}

	if got := roomStatus(t, db, room.ID); got != models.RoomBooked {
		t.Fatalf("room status = %q, want %q after online booking", got, models.RoomBooked)
	}
}

func TestCreateOnlineArrivalPaysCash(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Garden Room", 1500, 400)
	svc := NewReservationService(db)

	reservation, err := svc.CreateOnline(OnlineReservationInput{
		FullName:      "Sara Adel",
		Phone:         "+201119876543",
		RoomID:        room.ID,
		CheckIn:       "2024-05-10",
		CheckOut:      "2024-05-11",
		PaymentOption: "ARRIVAL",
	})
	if err != nil {
		t.Fatalf("CreateOnline failed: %v", err)
	}
	if reservation.PaymentMethod != models.PaymentCash {
		t.Fatalf("payment method = %q, want %q for ARRIVAL", reservation.PaymentMethod, models.PaymentCash)
	}
	if reservation.PaidAmount != 0 {
		t.Fatalf("paid amount = %v, want 0 for online booking", reservation.PaidAmount)
	}
}

func TestCreateOnlineValidation(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Nile Suite", 4500, 800)
	svc := NewReservationService(db)

	cases := []struct {
		name  string
		input OnlineReservationInput
	}{
		{"missing name", OnlineReservationInput{Phone: "+20100", RoomID: room.ID, CheckIn: "2024-03-01", CheckOut: "2024-03-02"}},
		{"missing phone", OnlineReservationInput{FullName: "A", RoomID: room.ID, CheckIn: "2024-03-01", CheckOut: "2024-03-02"}},
		{"missing room", OnlineReservationInput{FullName: "A", Phone: "+20100", CheckIn: "2024-03-01", CheckOut: "2024-03-02"}},
		{"unknown room", OnlineReservationInput{FullName: "A", Phone: "+20100", RoomID: 9999, CheckIn: "2024-03-01", CheckOut: "2024-03-02"}},
		{"bad date", OnlineReservationInput{FullName: "A", Phone: "+20100", RoomID: room.ID, CheckIn: "01/03/2024", CheckOut: "2024-03-02"}},
	}

	for _, tc := range cases {
		_, err := svc.CreateOnline(tc.input)
		if err == nil {
			t.Fatalf("%s: expected validation error, got nil", tc.name)
		}
		if !strings.HasPrefix(err.Error(), "validation:") {
			t.Fatalf("%s: error %q missing validation prefix", tc.name, err)
		}
	}
}

func TestCreateWalkIn(t *testing.T) {
	db := testDB(t)
	economy := seedRoom(t, db, "Economy Room", 1500, 400)
	family := seedRoom(t, db, "Family Room", 2800, 500)
	svc := NewReservationService(db)

	nationalID := "29801011234567"
	reservation, err := svc.CreateWalkIn(WalkInReservationInput{
		CustomerName:  "Mona Fathy",
		CustomerPhone: "+201227654321",
		NationalID:    &nationalID,
		RoomIDs:       []uint{economy.ID, family.ID},
		CheckIn:       "2024-03-01",
		CheckOut:      "2024-03-03",
		PaidAmount:    5000,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("CreateWalkIn failed: %v", err)
	}

	if reservation.Status != models.ReservationConfirmed {
		t.Fatalf("status = %q, want %q", reservation.Status, models.ReservationConfirmed)
	}
	if reservation.Source != models.SourceWalkIn {
		t.Fatalf("source = %q, want %q", reservation.Source, models.SourceWalkIn)
	}
	if reservation.PaymentMethod != models.PaymentCard {
		t.Fatalf("payment method = %q, want %q", reservation.PaymentMethod, models.PaymentCard)
	}
	// (1500 + 2800) x 2 = 8600, x 1.26 = 10836.
	if !almostEqual(reservation.TotalPrice, 10836) {
		t.Fatalf("total price = %v, want 10836", reservation.TotalPrice)
	}
	if reservation.PaidAmount != 5000 {
		t.Fatalf("paid amount = %v, want 5000", reservation.PaidAmount)
	}
	if reservation.NationalID == nil || *reservation.NationalID != nationalID {
		t.Fatalf("national id not persisted: %v", reservation.NationalID)
	}
	if len(reservation.Rooms) != 2 {
		t.Fatalf("got %d reservation rooms, want 2", len(reservation.Rooms))
	}

	for _, id := range []uint{economy.ID, family.ID} {
		if got := roomStatus(t, db, id); got != models.RoomBooked {
			t.Fatalf("room %d status = %q, want %q", id, got, models.RoomBooked)
		}
	}
}

func TestCreateWalkInValidation(t *testing.T) {
	db := testDB(t)
	svc := NewReservationService(db)

	_, err := svc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "",
		RoomIDs:      []uint{1},
		CheckIn:      "2024-03-01",
		CheckOut:     "2024-03-02",
	})
	if err == nil || !strings.HasPrefix(err.Error(), "validation:") {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	_, err = svc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "Mona",
		RoomIDs:      nil,
		CheckIn:      "2024-03-01",
		CheckOut:     "2024-03-02",
	})
	if err == nil || !strings.HasPrefix(err.Error(), "validation:") {
		t.Fatalf("expected validation error for empty room list, got %v", err)
	}
}

func TestConfirmReservation(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Nile Suite", 4500, 800)
	svc := NewReservationService(db)

	reservation, err := svc.CreateOnline(OnlineReservationInput{
		FullName: "Omar Hassan", Phone: "+20100", RoomID: room.ID,
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
	})
	if err != nil {
		t.Fatalf("CreateOnline failed: %v", err)
	}

	if err := svc.Confirm(reservation.ReferenceCode); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	got, err := svc.GetByReference(reservation.ReferenceCode)
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if got.Status != models.ReservationConfirmed {
		t.Fatalf("status = %q, want %q", got.Status, models.ReservationConfirmed)
	}
	// Confirming does not touch the room; it stays locked.
	if status := roomStatus(t, db, room.ID); status != models.RoomBooked {
		t.Fatalf("room status = %q, want %q after confirm", status, models.RoomBooked)
	}

	// Confirming twice is rejected.
	if err := svc.Confirm(reservation.ReferenceCode); err == nil {
		t.Fatal("expected error confirming an already confirmed reservation")
	} else if !strings.HasPrefix(err.Error(), "invalid_status_transition") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelReleasesRooms(t *testing.T) {
	db := testDB(t)
	economy := seedRoom(t, db, "Economy Room", 1500, 400)
	family := seedRoom(t, db, "Family Room", 2800, 500)
	svc := NewReservationService(db)

	reservation, err := svc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "Mona Fathy", RoomIDs: []uint{economy.ID, family.ID},
		CheckIn: "2024-03-01", CheckOut: "2024-03-03",
	})
	if err != nil {
		t.Fatalf("CreateWalkIn failed: %v", err)
	}

	if err := svc.Cancel(reservation.ReferenceCode); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	got, err := svc.GetByReference(reservation.ReferenceCode)
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if got.Status != models.ReservationCancelled {
		t.Fatalf("status = %q, want %q", got.Status, models.ReservationCancelled)
	}
	for _, id := range []uint{economy.ID, family.ID} {
		if status := roomStatus(t, db, id); status != models.RoomAvailable {
			t.Fatalf("room %d status = %q, want %q after cancel", id, status, models.RoomAvailable)
		}
	}
}

func TestCompleteReleasesRooms(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Nile Suite", 4500, 800)
	svc := NewReservationService(db)

	reservation, err := svc.CreateWalkIn(WalkInReservationInput{
		CustomerName: "Mona Fathy", RoomIDs: []uint{room.ID},
		CheckIn: "2024-03-01", CheckOut: "2024-03-03",
	})
	if err != nil {
		t.Fatalf("CreateWalkIn failed: %v", err)
	}

	if err := svc.Complete(reservation.ReferenceCode); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	got, err := svc.GetByReference(reservation.ReferenceCode)
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if got.Status != models.ReservationCompleted {
		t.Fatalf("status = %q, want %q", got.Status, models.ReservationCompleted)
	}
	if status := roomStatus(t, db, room.ID); status != models.RoomAvailable {
		t.Fatalf("room status = %q, want %q after completion", status, models.RoomAvailable)
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	db := testDB(t)
	room := seedRoom(t, db, "Nile Suite", 4500, 800)
	svc := NewReservationService(db)

	reservation, err := svc.CreateOnline(OnlineReservationInput{
		FullName: "Omar Hassan", Phone: "+20100", RoomID: room.ID,
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
	})
	if err != nil {
		t.Fatalf("CreateOnline failed: %v", err)
	}

	err = svc.Complete(reservation.ReferenceCode)
	if err == nil {
		t.Fatal("expected error completing a NEW reservation")
	}
	if !strings.HasPrefix(err.Error(), "invalid_status_transition") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetByReferenceNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewReservationService(db)

	_, err := svc.GetByReference("RES-NOPE1234")
	if err == nil || err.Error() != "reservation_not_found" {
		t.Fatalf("expected reservation_not_found, got %v", err)
	}
}

func TestGetAllWithRoomsEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewReservationService(db)

	list, err := svc.GetAllWithRooms()
	if err != nil {
		t.Fatalf("GetAllWithRooms failed: %v", err)
	}
	if list == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(list) != 0 {
		t.Fatalf("expected no reservations, got %d", len(list))
	}
}
