package services

import (
	"strings"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationService struct {
	Store *store.Store
}

func NewReservationService(st *store.Store) *ReservationService {
	return &ReservationService{Store: st}
}

// ReservationUpdate carries the optional fields of an update request. Nil
// fields are left unchanged.
type ReservationUpdate struct {
	TableID   *string
	StartTime *string
	GuestName *string
	Phone     *string
	PartySize *int
	Notes     *string
}

// Create validates and appends a new reservation in the active state,
// returning the created record. The table must exist at the moment of
// creation.
func (s *ReservationService) Create(tableID, startTime, guestName, phone string, partySize int, notes string) (*models.Reservation, error) {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return nil, &models.ValidationError{Field: "table_id", Message: "table is required"}
	}
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, &models.ValidationError{Field: "guest_name", Message: "guest name must not be empty"}
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, &models.ValidationError{Field: "phone", Message: "phone must not be empty"}
	}
	if strings.TrimSpace(startTime) == "" {
		return nil, &models.ValidationError{Field: "start_time", Message: "start time must not be empty"}
	}
	start, err := parseStartTime(strings.TrimSpace(startTime))
	if err != nil {
		return nil, &models.ValidationError{Field: "start_time", Message: "start time format is invalid"}
	}
	if partySize <= 0 {
		return nil, &models.ValidationError{Field: "party_size", Message: "party size must be greater than 0"}
	}

	reservation := models.Reservation{
		ID:        models.NewReservationID(),
		TableID:   tableID,
		StartTime: start.Format(startTimeLayout),
		GuestName: guestName,
		Phone:     phone,
		PartySize: partySize,
		Notes:     strings.TrimSpace(notes),
		Status:    models.ReservationActive,
		CreatedAt: time.Now().Format(timestampLayout),
	}
	err = s.Store.Update(func(doc *models.Document) (bool, error) {
		if !doc.HasTable(tableID) {
			return false, &models.NotFoundError{Message: "table not found"}
		}
		doc.Reservations = append(doc.Reservations, reservation)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s created for table %s at %s", reservation.ID, reservation.TableID, reservation.StartTime)
	return &reservation, nil
}

// Update applies the provided fields to an active reservation. Only active
// reservations may be modified; each supplied field is revalidated with
// creation-time rules, and a supplied table_id must reference an existing
// table.
func (s *ReservationService) Update(id string, changes ReservationUpdate) (*models.Reservation, error) {
	var parsedStart *time.Time
	if changes.StartTime != nil {
		value := strings.TrimSpace(*changes.StartTime)
		if value == "" {
			return nil, &models.ValidationError{Field: "start_time", Message: "start time must not be empty"}
		}
		start, err := parseStartTime(value)
		if err != nil {
			return nil, &models.ValidationError{Field: "start_time", Message: "start time format is invalid"}
		}
		parsedStart = &start
	}
	if changes.GuestName != nil && strings.TrimSpace(*changes.GuestName) == "" {
		return nil, &models.ValidationError{Field: "guest_name", Message: "guest name must not be empty"}
	}
	if changes.Phone != nil && strings.TrimSpace(*changes.Phone) == "" {
		return nil, &models.ValidationError{Field: "phone", Message: "phone must not be empty"}
	}
	if changes.PartySize != nil && *changes.PartySize <= 0 {
		return nil, &models.ValidationError{Field: "party_size", Message: "party size must be greater than 0"}
	}

	var updated models.Reservation
	err := s.Store.Update(func(doc *models.Document) (bool, error) {
		if changes.TableID != nil && !doc.HasTable(*changes.TableID) {
			return false, &models.NotFoundError{Message: "table not found"}
		}

		reservation := doc.FindReservation(id)
		if reservation == nil {
			return false, &models.NotFoundError{Message: "reservation not found"}
		}
		if reservation.Status != models.ReservationActive {
			return false, &models.InvalidStateError{Message: "only active reservations may be modified"}
		}

		if changes.TableID != nil {
			reservation.TableID = *changes.TableID
		}
		if parsedStart != nil {
			reservation.StartTime = parsedStart.Format(startTimeLayout)
		}
		if changes.GuestName != nil {
			reservation.GuestName = strings.TrimSpace(*changes.GuestName)
		}
		if changes.Phone != nil {
			reservation.Phone = strings.TrimSpace(*changes.Phone)
		}
		if changes.PartySize != nil {
			reservation.PartySize = *changes.PartySize
		}
		if changes.Notes != nil {
			reservation.Notes = strings.TrimSpace(*changes.Notes)
		}
		updated = *reservation
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Cancel transitions the reservation to cancelled and stamps archived_at.
// The current status is not checked; update is the only guarded operation.
func (s *ReservationService) Cancel(id string) error {
	err := s.transition(id, models.ReservationCancelled)
	if err != nil {
		return err
	}
	utils.InfoLogger.Printf("Reservation %s cancelled", id)
	return nil
}

// MarkArrived transitions the reservation to arrived, stamps archived_at
// and returns the updated record. The current status is not checked; update
// is the only guarded operation.
func (s *ReservationService) MarkArrived(id string) (*models.Reservation, error) {
	var updated models.Reservation
	err := s.Store.Update(func(doc *models.Document) (bool, error) {
		reservation := doc.FindReservation(id)
		if reservation == nil {
			return false, &models.NotFoundError{Message: "reservation not found"}
		}
		stamp := time.Now().Format(timestampLayout)
		reservation.Status = models.ReservationArrived
		reservation.ArchivedAt = &stamp
		updated = *reservation
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s marked as arrived", id)
	return &updated, nil
}

// ClearAll empties the reservation collection. When it is already empty the
// save is skipped, so a second call is a no-op.
func (s *ReservationService) ClearAll() error {
	return s.Store.Update(func(doc *models.Document) (bool, error) {
		if len(doc.Reservations) == 0 {
			return false, nil
		}
		doc.Reservations = []models.Reservation{}
		return true, nil
	})
}

func (s *ReservationService) transition(id, status string) error {
	return s.Store.Update(func(doc *models.Document) (bool, error) {
		reservation := doc.FindReservation(id)
		if reservation == nil {
			return false, &models.NotFoundError{Message: "reservation not found"}
		}
		stamp := time.Now().Format(timestampLayout)
		reservation.Status = status
		reservation.ArchivedAt = &stamp
		return true, nil
	})
}
