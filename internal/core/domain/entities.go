package domain

// Worker roles
const (
	RoleWorker      = "TRABAJADOR"
	RoleCoordinator = "COORDINADOR"
	RoleAdmin       = "ADMIN"
)

// ValidRole reports whether role is one of the three known roles
func ValidRole(role string) bool {
	return role == RoleWorker || role == RoleCoordinator || role == RoleAdmin
}

// Request types
const (
	TypeRemoteWork     = "TELETRABAJO"
	TypeAdministrative = "ADMINISTRATIVO"
)

// ValidRequestType reports whether t is a known request type
func ValidRequestType(t string) bool {
	return t == TypeRemoteWork || t == TypeAdministrative
}

// Shift (jornada) values
const (
	ShiftFull      = "COMPLETO"
	ShiftMorning   = "MANANA"
	ShiftAfternoon = "TARDE"
)

// ValidShift reports whether s is a known shift
func ValidShift(s string) bool {
	return s == ShiftFull || s == ShiftMorning || s == ShiftAfternoon
}

// Request statuses
const (
	StatusPending  = "PENDIENTE"
	StatusApproved = "APROBADO"
	StatusRejected = "RECHAZADO"
)

// DecisionStatus reports whether status is a legal decision value.
// PENDING is not a decision; requests never transition back to it.
func DecisionStatus(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// DayCost returns how many leave days a request consumes.
// A full shift costs a whole day, morning/afternoon half a day.
func DayCost(shift string) float64 {
	if shift == ShiftFull {
		return 1.0
	}
	return 0.5
}

// MinAdvanceNotice is the minimum business-day notice required for an
// administrative leave request.
const MinAdvanceNotice = 1
