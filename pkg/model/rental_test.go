package model

import "testing"

func TestRentalStatus_Transitions(t *testing.T) {
	if !RentalStatusRented.CanTransitionTo(RentalStatusReturned) {
		t.Error("rented → returned should be valid")
	}
	if RentalStatusReturned.CanTransitionTo(RentalStatusRented) {
		t.Error("returned → rented should be invalid")
	}
	if !RentalStatusReturned.IsTerminal() {
		t.Error("returned should be terminal")
	}
}

func TestFilterRentals(t *testing.T) {
	rentals := []Rental{
		{ID: 1, Status: RentalStatusRented},
		{ID: 2, Status: RentalStatusReturned},
		{ID: 3, Status: RentalStatusRented},
	}
	if got := FilterRentals(rentals, ""); len(got) != 3 {
		t.Errorf("all: got %d, want 3", len(got))
	}
	if got := FilterRentals(rentals, RentalStatusRented); len(got) != 2 {
		t.Errorf("rented: got %d, want 2", len(got))
	}
	if got := FilterRentals(rentals, RentalStatusReturned); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("returned: got %+v", got)
	}
}

func TestNewRental_Validate(t *testing.T) {
	if err := (NewRental{EquipmentID: 1, Days: 3}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := (NewRental{}).Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(ve.Details))
	}
}

func TestRevenueTotal(t *testing.T) {
	rows := []RevenueRow{{Revenue: 100.5}, {Revenue: 200}}
	if got := RevenueTotal(rows); got != 300.5 {
		t.Errorf("RevenueTotal = %v, want 300.5", got)
	}
}
