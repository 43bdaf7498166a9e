package services

import (
	"strings"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
	"github.com/yeremiapane/reservation-app/utils"
)

type TableService struct {
	Store *store.Store
}

func NewTableService(st *store.Store) *TableService {
	return &TableService{Store: st}
}

// Add validates and appends a new table, returning the created record.
func (s *TableService) Add(name, floor string, seats int) (*models.Table, error) {
	name, err := validTableName(name)
	if err != nil {
		return nil, err
	}
	if err := validSeats(seats); err != nil {
		return nil, err
	}
	floor = strings.TrimSpace(floor)
	if !models.KnownFloor(floor) {
		return nil, &models.ValidationError{Field: "floor", Message: "floor must be 一楼 or 二楼"}
	}

	table := models.Table{
		ID:    models.NewTableID(),
		Name:  name,
		Floor: floor,
		Seats: seats,
	}
	err = s.Store.Update(func(doc *models.Document) (bool, error) {
		doc.Tables = append(doc.Tables, table)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s created (name=%s floor=%s seats=%d)", table.ID, table.Name, table.Floor, table.Seats)
	return &table, nil
}

// Update changes the provided fields of an existing table; omitted fields
// are left unchanged. Each supplied field is validated with the same rules
// as Add.
func (s *TableService) Update(id string, name *string, seats *int) (*models.Table, error) {
	var updated models.Table
	err := s.Store.Update(func(doc *models.Document) (bool, error) {
		table := doc.FindTable(id)
		if table == nil {
			return false, &models.NotFoundError{Message: "table not found"}
		}
		if name != nil {
			clean, err := validTableName(*name)
			if err != nil {
				return false, err
			}
			table.Name = clean
		}
		if seats != nil {
			if err := validSeats(*seats); err != nil {
				return false, err
			}
			table.Seats = *seats
		}
		updated = *table
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the table and, within the same critical section, every
// reservation bound to it.
func (s *TableService) Delete(id string) error {
	var dropped int
	err := s.Store.Update(func(doc *models.Document) (bool, error) {
		tables := make([]models.Table, 0, len(doc.Tables))
		for _, table := range doc.Tables {
			if table.ID != id {
				tables = append(tables, table)
			}
		}
		if len(tables) == len(doc.Tables) {
			return false, &models.NotFoundError{Message: "table not found"}
		}
		doc.Tables = tables

		reservations := make([]models.Reservation, 0, len(doc.Reservations))
		for _, res := range doc.Reservations {
			if res.TableID != id {
				reservations = append(reservations, res)
			}
		}
		dropped = len(doc.Reservations) - len(reservations)
		doc.Reservations = reservations
		return true, nil
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %s deleted along with %d reservations", id, dropped)
	return nil
}

// Get returns a copy of the table, or nil when the id is unknown. Absence
// is a valid query outcome, not an error.
func (s *TableService) Get(id string) (*models.Table, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	if table := doc.FindTable(id); table != nil {
		found := *table
		return &found, nil
	}
	return nil, nil
}

func validTableName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &models.ValidationError{Field: "name", Message: "table name must not be empty"}
	}
	return name, nil
}

func validSeats(seats int) error {
	if seats <= 0 {
		return &models.ValidationError{Field: "seats", Message: "seats must be greater than 0"}
	}
	return nil
}
