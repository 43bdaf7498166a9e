package services

import (
	"sort"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

// archiveAfter is how long past its start time an active reservation may
// linger before the listing sweep archives it.
const archiveAfter = 15 * time.Minute

type ListingService struct {
	Store *store.Store
}

func NewListingService(st *store.Store) *ListingService {
	return &ListingService{Store: st}
}

// TableWithReservations is a table together with its reservations sorted by
// start time.
type TableWithReservations struct {
	models.Table
	Reservations []models.Reservation `json:"reservations"`
}

// TablesWithReservations returns every table with its reservations nested,
// archiving overdue active reservations along the way. Tables are ordered
// by floor rank, then natural name order; reservations within a table are
// ordered by start time. Reservations referencing a deleted table are
// dropped from the view.
func (s *ListingService) TablesWithReservations() ([]TableWithReservations, error) {
	var result []TableWithReservations
	err := s.Store.Update(func(doc *models.Document) (bool, error) {
		archived := archiveOverdue(doc, time.Now())

		byTable := make(map[string][]models.Reservation, len(doc.Tables))
		for _, table := range doc.Tables {
			byTable[table.ID] = []models.Reservation{}
		}
		for _, reservation := range doc.Reservations {
			list, ok := byTable[reservation.TableID]
			if !ok {
				continue
			}
			byTable[reservation.TableID] = append(list, reservation)
		}

		result = make([]TableWithReservations, 0, len(doc.Tables))
		for _, table := range doc.Tables {
			list := byTable[table.ID]
			sort.Slice(list, func(i, j int) bool {
				return list[i].StartTime < list[j].StartTime
			})
			result = append(result, TableWithReservations{Table: table, Reservations: list})
		}
		sort.Slice(result, func(i, j int) bool {
			return tableLess(&result[i].Table, &result[j].Table)
		})

		return archived > 0, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// archiveOverdue transitions every active reservation whose start time is
// at or before now minus archiveAfter. Reservations with an unparsable
// start time are skipped.
func archiveOverdue(doc *models.Document, now time.Time) int {
	cutoff := now.Add(-archiveAfter)
	stamp := now.Format(timestampLayout)
	archived := 0
	for i := range doc.Reservations {
		reservation := &doc.Reservations[i]
		if reservation.Status != models.ReservationActive {
			continue
		}
		start, err := parseStartTime(reservation.StartTime)
		if err != nil {
			continue
		}
		if start.After(cutoff) {
			continue
		}
		reservation.Status = models.ReservationArchived
		reservation.ArchivedAt = &stamp
		archived++
	}
	if archived > 0 {
		utils.InfoLogger.Printf("Auto-archived %d overdue reservations", archived)
	}
	return archived
}
