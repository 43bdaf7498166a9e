package models

// Reservation lifecycle states. A reservation starts as active; the other
// three states are terminal.
const (
	ReservationActive    = "active"
	ReservationArchived  = "archived"
	ReservationCancelled = "cancelled"
	ReservationArrived   = "arrived"
)

type Reservation struct {
	ID         string  `json:"id"`
	TableID    string  `json:"table_id"`
	StartTime  string  `json:"start_time"`
	GuestName  string  `json:"guest_name"`
	Phone      string  `json:"phone"`
	PartySize  int     `json:"party_size"`
	Notes      string  `json:"notes"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	ArchivedAt *string `json:"archived_at"`
}
