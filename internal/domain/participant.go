package domain

// Participant is an NDIS participant record.
type Participant struct {
	ID               int        `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`
	NDISNumber       *string    `json:"ndis_number,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        *Timestamp `json:"created_at,omitempty"`
}
