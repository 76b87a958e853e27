package model

import (
	"encoding/json"
	"testing"
)

func TestAircraft_StatusPredicates(t *testing.T) {
	t.Parallel()

	a := Aircraft{Status: AircraftAvailable}
	if !a.IsAvailable() || a.IsInFlight() || a.IsInMaintenance() {
		t.Fatalf("predicates wrong for %s", a.Status)
	}
}

func TestAircraft_UnknownStatusPreserved(t *testing.T) {
	t.Parallel()

	// A status added server-side must not break the decode; it is kept
	// verbatim and falls through every predicate.
	var a Aircraft
	raw := `{"id":"a1","tailNumber":"N12345","type":"C172","hourlyRate":150,"tachCurrent":1204.5,"status":"GROUNDED"}`
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Status != "GROUNDED" {
		t.Fatalf("status = %q", a.Status)
	}
	if a.IsAvailable() || a.IsInFlight() || a.IsInMaintenance() {
		t.Fatalf("unknown status must not satisfy any predicate")
	}
}

func TestBooking_DecodeWithRelationships(t *testing.T) {
	t.Parallel()

	raw := `{
		"id":"b1","aircraftId":"a1","memberId":"m1",
		"startDate":"2024-03-01T08:00:00.000Z","endDate":"2024-03-01T10:00:00Z",
		"startTime":"08:00","endTime":"10:00",
		"type":"DUAL","status":"STANDBY",
		"aircraft":{"id":"a1","tailNumber":"N12345","type":"C172","hourlyRate":150,"tachCurrent":1204.5,"status":"AVAILABLE"},
		"member":{"id":"m1","name":"Pat"}
	}`
	var b Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !b.IsStandby() || b.IsConfirmed() || b.IsPending() {
		t.Fatalf("status predicates wrong for %s", b.Status)
	}
	if b.StartDate.Hour() != 8 || b.EndDate.Hour() != 10 {
		t.Fatalf("dates decoded wrong: %v .. %v", b.StartDate, b.EndDate)
	}
	if b.Aircraft == nil || b.Aircraft.TailNumber != "N12345" {
		t.Fatalf("nested aircraft missing")
	}
	if b.Member == nil || b.Member.Name != "Pat" {
		t.Fatalf("nested member missing")
	}
}

func TestTransaction_ChargeAndPaymentClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ     string
		charge  bool
		payment bool
	}{
		{"FLIGHT_CHARGE", true, false},
		{"MONTHLY_DUES", true, false},
		{"ASSESSMENT", true, false},
		{"INSTRUCTION_FEE", true, false},
		{"PAYMENT", false, true},
		{"CREDIT", false, true},
		{"FREE_HOURS_CREDIT", false, true},
		{"SOMETHING_NEW", false, false},
	}
	for _, c := range cases {
		tr := Transaction{Type: c.typ}
		if tr.IsCharge() != c.charge || tr.IsPayment() != c.payment {
			t.Fatalf("%s: charge=%v payment=%v", c.typ, tr.IsCharge(), tr.IsPayment())
		}
	}
}

func TestUser_RolePredicates(t *testing.T) {
	t.Parallel()

	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin")
	}
	if !(User{Role: RoleInstructor}).IsInstructor() {
		t.Fatal("instructor")
	}
	if (User{Role: "DISPATCHER"}).IsAdmin() {
		t.Fatal("unknown role must not be admin")
	}
}

func TestCheckout_Decode(t *testing.T) {
	t.Parallel()

	raw := `{"id":"c1","aircraftId":"a1","memberId":"m1","tachOut":1204.5,
		"checkOutTime":"2024-03-01T10:00:00.000Z","status":"OUT"}`
	var c Checkout
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !c.IsOut() {
		t.Fatalf("status = %q", c.Status)
	}
	if c.TachIn != nil || c.CheckInTime != nil {
		t.Fatalf("open checkout must have no check-in data")
	}
}

func TestBookingRequest_StandbyOmittedWhenNil(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(BookingRequest{AircraftID: "a1", Type: BookingSolo})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if _, present := m["status"]; present {
		t.Fatalf("status must be omitted unless standby: %s", b)
	}
}
