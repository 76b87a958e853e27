// Package model defines the wire records exchanged with the Airmates API.
//
// These are inert data-transfer structures: the server owns all business
// rules, the client only decodes, displays and resubmits them. Field names
// follow the API's camelCase JSON contract. Date-only values ("2024-03-01")
// and clock values ("08:00") stay plain strings; true instants use APITime.
package model

// Aircraft is a fleet aircraft, optionally with related records when the
// server was asked to include them.
type Aircraft struct {
	ID          string         `json:"id"`
	TailNumber  string         `json:"tailNumber"`
	Type        string         `json:"type"`
	Year        *int           `json:"year,omitempty"`
	HourlyRate  float64        `json:"hourlyRate"`
	TachCurrent float64        `json:"tachCurrent"`
	Status      AircraftStatus `json:"status"`
	Image       *string        `json:"image,omitempty"`
	Notes       *string        `json:"notes,omitempty"`

	Maintenance []MaintenanceItem  `json:"maintenance,omitempty"`
	Documents   []AircraftDocument `json:"documents,omitempty"`
	Squawks     []Squawk           `json:"squawks,omitempty"`
	Checkouts   []Checkout         `json:"checkouts,omitempty"`
	Flights     []Flight           `json:"flights,omitempty"`
}

func (a Aircraft) IsAvailable() bool     { return a.Status == AircraftAvailable }
func (a Aircraft) IsInFlight() bool      { return a.Status == AircraftInFlight }
func (a Aircraft) IsInMaintenance() bool { return a.Status == AircraftMaintenance }

// MaintenanceItem is a scheduled or completed maintenance task.
type MaintenanceItem struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Description   *string  `json:"description,omitempty"`
	DueDate       *string  `json:"dueDate,omitempty"`
	DueTach       *float64 `json:"dueTach,omitempty"`
	Completed     bool     `json:"completed"`
	CompletedDate *string  `json:"completedDate,omitempty"`
}

// AircraftDocument is an airworthiness or registration document on file.
type AircraftDocument struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Expires    *string `json:"expires,omitempty"`
	FileURL    *string `json:"fileUrl,omitempty"`
	AircraftID string  `json:"aircraftId"`
}

// Booking is a schedule slot for an aircraft, possibly with an instructor.
type Booking struct {
	ID           string        `json:"id"`
	AircraftID   string        `json:"aircraftId"`
	MemberID     string        `json:"memberId"`
	InstructorID *string       `json:"instructorId,omitempty"`
	StartDate    APITime       `json:"startDate"`
	EndDate      APITime       `json:"endDate"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Type         BookingType   `json:"type"`
	Status       BookingStatus `json:"status"`
	Notes        *string       `json:"notes,omitempty"`
	CreatedAt    *APITime      `json:"createdAt,omitempty"`

	Aircraft   *Aircraft      `json:"aircraft,omitempty"`
	Member     *BookingMember `json:"member,omitempty"`
	Instructor *Instructor    `json:"instructor,omitempty"`
}

func (b Booking) IsPending() bool   { return b.Status == BookingPending }
func (b Booking) IsConfirmed() bool { return b.Status == BookingConfirmed }
func (b Booking) IsStandby() bool   { return b.Status == BookingStandby }

// BookingMember is the trimmed member record embedded in bookings and checkouts.
type BookingMember struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Instructor is a club instructor with optional schedule and bookings.
type Instructor struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Specialties *string  `json:"specialties,omitempty"`
	Available   bool     `json:"available"`

	User     *InstructorUser      `json:"user,omitempty"`
	Schedule []InstructorSchedule `json:"schedule,omitempty"`
	Bookings []Booking            `json:"bookings,omitempty"`
}

// InstructorUser is the user record embedded in an instructor.
type InstructorUser struct {
	ID      *string  `json:"id,omitempty"`
	Name    string   `json:"name"`
	Email   *string  `json:"email,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Image   *string  `json:"image,omitempty"`
	Ratings []string `json:"ratings,omitempty"`
}

// InstructorSchedule is a weekly availability window.
type InstructorSchedule struct {
	ID           string  `json:"id"`
	InstructorID string  `json:"instructorId"`
	DayOfWeek    int     `json:"dayOfWeek"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Available    bool    `json:"available"`
	Notes        *string `json:"notes,omitempty"`
}

// Checkout records an aircraft leaving (and returning to) the field.
// Tach readings drive flight-time and billing computation on the server.
type Checkout struct {
	ID             string         `json:"id"`
	AircraftID     string         `json:"aircraftId"`
	MemberID       string         `json:"memberId"`
	TachOut        float64        `json:"tachOut"`
	TachIn         *float64       `json:"tachIn,omitempty"`
	CheckOutTime   APITime        `json:"checkOutTime"`
	CheckInTime    *APITime       `json:"checkInTime,omitempty"`
	Destination    *string        `json:"destination,omitempty"`
	ExpectedReturn *APITime       `json:"expectedReturn,omitempty"`
	FuelAdded      *float64       `json:"fuelAdded,omitempty"`
	Status         CheckoutStatus `json:"status"`
	Notes          *string        `json:"notes,omitempty"`

	Aircraft *Aircraft      `json:"aircraft,omitempty"`
	Member   *BookingMember `json:"member,omitempty"`
}

func (c Checkout) IsOut() bool { return c.Status == CheckoutOut }

// CheckoutResponse is returned by a check-in: the closed checkout plus the
// flight record the server derived from it.
type CheckoutResponse struct {
	Checkout Checkout `json:"checkout"`
	Flight   *Flight  `json:"flight,omitempty"`
}

// Flight is a completed, billable flight.
type Flight struct {
	ID           string  `json:"id"`
	AircraftID   string  `json:"aircraftId"`
	MemberID     string  `json:"memberId"`
	CheckoutID   *string `json:"checkoutId,omitempty"`
	InstructorID *string `json:"instructorId,omitempty"`
	Date         string  `json:"date"`
	TachOut      float64 `json:"tachOut"`
	TachIn       float64 `json:"tachIn"`
	HobbsTime    float64 `json:"hobbsTime"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Notes        *string `json:"notes,omitempty"`
	Billed       *bool   `json:"billed,omitempty"`

	Aircraft   *FlightAircraft `json:"aircraft,omitempty"`
	Member     *BookingMember  `json:"member,omitempty"`
	Instructor *Instructor     `json:"instructor,omitempty"`
}

// FlightAircraft is the trimmed aircraft record embedded in flights.
type FlightAircraft struct {
	TailNumber string `json:"tailNumber"`
	Type       string `json:"type"`
}

// Squawk is a reported aircraft discrepancy.
type Squawk struct {
	ID             string       `json:"id"`
	AircraftID     string       `json:"aircraftId"`
	ReporterID     string       `json:"reporterId"`
	Description    string       `json:"description"`
	Category       string       `json:"category"`
	Priority       string       `json:"priority"`
	Status         SquawkStatus `json:"status"`
	Resolution     *string      `json:"resolution,omitempty"`
	ResolvedAt     *APITime     `json:"resolvedAt,omitempty"`
	ResolvedByID   *string      `json:"resolvedById,omitempty"`
	ResolvedByName *string      `json:"resolvedByName,omitempty"`
	CreatedAt      *APITime     `json:"createdAt,omitempty"`

	Reporter *SquawkReporter `json:"reporter,omitempty"`
	Aircraft *SquawkAircraft `json:"aircraft,omitempty"`
}

// SquawkReporter is the reporter record embedded in a squawk.
type SquawkReporter struct {
	Name string `json:"name"`
}

// SquawkAircraft is the aircraft record embedded in a squawk.
type SquawkAircraft struct {
	TailNumber string `json:"tailNumber"`
}

// Transaction is an account ledger entry.
type Transaction struct {
	ID                    string            `json:"id"`
	MemberID              string            `json:"memberId"`
	Type                  string            `json:"type"`
	Amount                float64           `json:"amount"`
	Description           string            `json:"description"`
	Status                TransactionStatus `json:"status"`
	BillingMonth          *string           `json:"billingMonth,omitempty"`
	StripePaymentIntentID *string           `json:"stripePaymentIntentId,omitempty"`
	CreatedAt             *APITime          `json:"createdAt,omitempty"`
	CreatedBy             *string           `json:"createdBy,omitempty"`
}

func (t Transaction) IsCharge() bool  { return chargeTypes[t.Type] }
func (t Transaction) IsPayment() bool { return paymentTypes[t.Type] }

// User is a club member account, including the profile fields editable
// through PATCH /api/profile.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Image    *string `json:"image,omitempty"`
	Role     Role    `json:"role"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	TierName *string `json:"tierName,omitempty"`
	TierID   *string `json:"tierId,omitempty"`

	AddressLine1        *string  `json:"addressLine1,omitempty"`
	AddressLine2        *string  `json:"addressLine2,omitempty"`
	City                *string  `json:"city,omitempty"`
	State               *string  `json:"state,omitempty"`
	Zip                 *string  `json:"zip,omitempty"`
	EmergencyName       *string  `json:"emergencyName,omitempty"`
	EmergencyPhone      *string  `json:"emergencyPhone,omitempty"`
	EmergencyRelation   *string  `json:"emergencyRelation,omitempty"`
	PilotCertNumber     *string  `json:"pilotCertNumber,omitempty"`
	Ratings             []string `json:"ratings,omitempty"`
	MedicalClass        *string  `json:"medicalClass,omitempty"`
	MedicalExpiry       *string  `json:"medicalExpiry,omitempty"`
	FlightReviewDate    *string  `json:"flightReviewDate,omitempty"`
	FlightReviewExpiry  *string  `json:"flightReviewExpiry,omitempty"`
	LastPassengerFlight *string  `json:"lastPassengerFlight,omitempty"`
	LastNightFlight     *string  `json:"lastNightFlight,omitempty"`
	LastIFRActivity     *string  `json:"lastIFRActivity,omitempty"`
	TotalHours          *float64 `json:"totalHours,omitempty"`
	JoinedAt            *string  `json:"joinedAt,omitempty"`
	StripeCustomerID    *string  `json:"stripeCustomerId,omitempty"`
	AutoPayEnabled      *bool    `json:"autoPayEnabled,omitempty"`
	DefaultPaymentID    *string  `json:"defaultPaymentMethodId,omitempty"`

	MembershipTier    *MembershipTier    `json:"membershipTier,omitempty"`
	InstructorProfile *InstructorProfile `json:"instructorProfile,omitempty"`
}

func (u User) IsAdmin() bool      { return u.Role == RoleAdmin }
func (u User) IsInstructor() bool { return u.Role == RoleInstructor }

// MembershipTier describes the member's dues and booking limits.
type MembershipTier struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MonthlyDues       float64 `json:"monthlyDues"`
	FreeHoursPerMonth float64 `json:"freeHoursPerMonth"`
	MaxActiveBookings int     `json:"maxActiveBookings"`
	MaxBookingDaysOut int     `json:"maxBookingDaysOut"`
	Description       *string `json:"description,omitempty"`
}

// InstructorProfile is the instructor record embedded in a user.
type InstructorProfile struct {
	ID          string   `json:"id"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Specialties *string  `json:"specialties,omitempty"`
	Available   bool     `json:"available"`
}

// ExpiringMedical flags a member whose medical certificate is near expiry.
type ExpiringMedical struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MedicalExpiry *string `json:"medicalExpiry,omitempty"`
	MedicalClass  *string `json:"medicalClass,omitempty"`
}

// DashboardData is the aggregate behind GET /api/dashboard.
type DashboardData struct {
	AircraftCount       int               `json:"aircraftCount"`
	ActiveCheckouts     int               `json:"activeCheckouts"`
	TodayBookings       []Booking         `json:"todayBookings"`
	UnpaidTotal         *float64          `json:"unpaidTotal,omitempty"`
	MemberCount         int               `json:"memberCount"`
	InstructorCount     int               `json:"instructorCount"`
	UpcomingMaintenance []MaintenanceItem `json:"upcomingMaintenance"`
	ExpiringMedicals    []ExpiringMedical `json:"expiringMedicals"`
	RecentCheckouts     []Checkout        `json:"recentCheckouts"`
	MyUpcomingBookings  []Booking         `json:"myUpcomingBookings"`
}

// MyAccountData is the aggregate behind GET /api/my-account.
type MyAccountData struct {
	User           User          `json:"user"`
	Transactions   []Transaction `json:"transactions"`
	Flights        []Flight      `json:"flights"`
	ActiveBookings int           `json:"activeBookings"`
	Balance        float64       `json:"balance"`
}
