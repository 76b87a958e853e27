package model

// Request and auth payloads. Tach, fuel and hour figures that originate in
// form fields travel as strings; the server parses them.

// LoginRequest is the body of POST /api/auth/mobile.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the error payload shape on non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BookingRequest is the body of POST /api/bookings. Status is set to
// BookingStandby when resubmitting after a conflict, otherwise omitted.
type BookingRequest struct {
	AircraftID   string         `json:"aircraftId"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	Type         BookingType    `json:"type"`
	InstructorID *string        `json:"instructorId,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
	Status       *BookingStatus `json:"status,omitempty"`
}

// DeleteBookingResponse is returned by DELETE /api/bookings.
type DeleteBookingResponse struct {
	Deleted bool `json:"deleted"`
}

// CheckOutRequest is the check-out body of POST /api/checkouts.
type CheckOutRequest struct {
	AircraftID     string  `json:"aircraftId"`
	TachOut        string  `json:"tachOut"`
	Destination    *string `json:"destination,omitempty"`
	ExpectedReturn *string `json:"expectedReturn,omitempty"`
}

// CheckInRequest is the check-in body of POST /api/checkouts. The server
// distinguishes the two flows by body shape.
type CheckInRequest struct {
	CheckoutID string  `json:"checkoutId"`
	TachIn     string  `json:"tachIn"`
	FuelAdded  *string `json:"fuelAdded,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// SquawkRequest is the body of POST /api/squawks.
type SquawkRequest struct {
	AircraftID  string `json:"aircraftId"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// ProfileUpdateRequest is the body of PATCH /api/profile.
type ProfileUpdateRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	AddressLine1      string `json:"addressLine1"`
	AddressLine2      string `json:"addressLine2"`
	City              string `json:"city"`
	State             string `json:"state"`
	Zip               string `json:"zip"`
	EmergencyName     string `json:"emergencyName"`
	EmergencyPhone    string `json:"emergencyPhone"`
	EmergencyRelation string `json:"emergencyRelation"`
	PilotCertNumber   string `json:"pilotCertNumber"`
	MedicalClass      string `json:"medicalClass"`
	TotalHours        string `json:"totalHours"`
}
