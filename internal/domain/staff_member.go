package domain

// StaffStatus enumerates employment states reported by the backend.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
	StaffStatusOnLeave  StaffStatus = "on_leave"
)

// Valid reports whether s is a known status.
func (s StaffStatus) Valid() bool {
	switch s {
	case StaffStatusActive, StaffStatusInactive, StaffStatusOnLeave:
		return true
	}
	return false
}

// StaffPositions lists the positions offered by the add-staff form.
var StaffPositions = []string{
	"Support Worker",
	"Coordinator",
	"Manager",
	"Admin",
	"Therapist",
	"Nurse",
}

// Staff is a staff record as listed by the backend.
type Staff struct {
	ID        int         `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     *string     `json:"phone,omitempty"`
	Position  *string     `json:"position,omitempty"`
	Status    StaffStatus `json:"status"`
	HireDate  *Timestamp  `json:"hire_date,omitempty"`
}

// FullName joins first and last name.
func (s Staff) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
