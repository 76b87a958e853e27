package model

// Status values arrive as plain strings on the wire. They decode into the
// typed constants below; a value the client does not recognize is preserved
// verbatim so server-side additions render through the default treatment
// instead of failing the decode.

// AircraftStatus is the fleet availability state of an aircraft.
type AircraftStatus string

const (
	AircraftAvailable   AircraftStatus = "AVAILABLE"
	AircraftInFlight    AircraftStatus = "IN_FLIGHT"
	AircraftMaintenance AircraftStatus = "MAINTENANCE"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingStandby   BookingStatus = "STANDBY"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// BookingType distinguishes solo, dual-instruction and maintenance slots.
type BookingType string

const (
	BookingSolo        BookingType = "SOLO"
	BookingDual        BookingType = "DUAL"
	BookingMaintenance BookingType = "MAINTENANCE"
)

// CheckoutStatus tracks whether an aircraft is still out.
type CheckoutStatus string

const (
	CheckoutOut       CheckoutStatus = "OUT"
	CheckoutCompleted CheckoutStatus = "COMPLETED"
)

// SquawkStatus is the resolution state of a reported discrepancy.
type SquawkStatus string

const (
	SquawkOpen       SquawkStatus = "OPEN"
	SquawkInProgress SquawkStatus = "IN_PROGRESS"
	SquawkResolved   SquawkStatus = "RESOLVED"
)

// TransactionStatus is the billing state of a ledger entry.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionPaid      TransactionStatus = "PAID"
	TransactionOverdue   TransactionStatus = "OVERDUE"
)

// Role is a member's role within the club.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleMember     Role = "MEMBER"
)

// chargeTypes and paymentTypes classify transaction type strings for the
// account ledger. Unlisted types fall through both predicates.
var (
	chargeTypes = map[string]bool{
		"FLIGHT_CHARGE":   true,
		"MONTHLY_DUES":    true,
		"ASSESSMENT":      true,
		"INSTRUCTION_FEE": true,
	}
	paymentTypes = map[string]bool{
		"PAYMENT":           true,
		"CREDIT":            true,
		"FREE_HOURS_CREDIT": true,
	}
)
