package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/store"
)

func seedTables(t *testing.T, st *store.Store, tables ...models.Table) {
	t.Helper()
	err := st.Save(&models.Document{Tables: tables, Reservations: []models.Reservation{}})
	assert.NoError(t, err)
}

func startTimeIn(d time.Duration) string {
	return time.Now().Add(d).Format(startTimeLayout)
}

func TestListingNaturalOrdering(t *testing.T) {
	st := store.Open(t.TempDir() + "/data.json")
	seedTables(t, st,
		models.Table{ID: "t1", Name: "二楼10", Floor: models.FloorUpper, Seats: 6},
		models.Table{ID: "t2", Name: "二楼2", Floor: models.FloorUpper, Seats: 6},
		models.Table{ID: "t3", Name: "一楼0", Floor: models.FloorGround, Seats: 4},
		models.Table{ID: "t4", Name: "一楼1", Floor: models.FloorGround, Seats: 4},
	)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)

	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Name)
	}
	// Floor rank first, then numeric-aware name comparison: "10" must not
	// sort before "2".
	assert.Equal(t, []string{"一楼0", "一楼1", "二楼2", "二楼10"}, names)
}

func TestListingUnrecognizedFloorSortsLast(t *testing.T) {
	st := store.Open(t.TempDir() + "/data.json")
	seedTables(t, st,
		models.Table{ID: "t1", Name: "天台1", Floor: "天台", Seats: 2},
		models.Table{ID: "t2", Name: "二楼1", Floor: models.FloorUpper, Seats: 6},
		models.Table{ID: "t3", Name: "一楼1", Floor: models.FloorGround, Seats: 4},
	)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)
	assert.Equal(t, "一楼1", tables[0].Name)
	assert.Equal(t, "二楼1", tables[1].Name)
	assert.Equal(t, "天台1", tables[2].Name)
}

func TestListingIncludesTablesWithoutReservations(t *testing.T) {
	st := newEmptyStore(t)
	mustAddTable(t, st, "一楼1", models.FloorGround, 4)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.NotNil(t, tables[0].Reservations)
	assert.Empty(t, tables[0].Reservations)
}

func TestListingSortsReservationsByStartTime(t *testing.T) {
	st := newEmptyStore(t)
	table := mustAddTable(t, st, "一楼1", models.FloorGround, 4)
	svc := NewReservationService(st)

	late, err := svc.Create(table.ID, "2031-01-01T21:00", "王先生", "138", 2, "")
	assert.NoError(t, err)
	early, err := svc.Create(table.ID, "2031-01-01T18:00", "李女士", "139", 2, "")
	assert.NoError(t, err)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)
	assert.Len(t, tables[0].Reservations, 2)
	assert.Equal(t, early.ID, tables[0].Reservations[0].ID)
	assert.Equal(t, late.ID, tables[0].Reservations[1].ID)
}

func TestListingArchivesOverdueReservations(t *testing.T) {
	st := newEmptyStore(t)
	table := mustAddTable(t, st, "一楼1", models.FloorGround, 4)
	svc := NewReservationService(st)

	overdue, err := svc.Create(table.ID, startTimeIn(-20*time.Minute), "王先生", "138", 2, "")
	assert.NoError(t, err)
	recent, err := svc.Create(table.ID, startTimeIn(-5*time.Minute), "李女士", "139", 2, "")
	assert.NoError(t, err)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)

	byID := map[string]models.Reservation{}
	for _, res := range tables[0].Reservations {
		byID[res.ID] = res
	}
	assert.Equal(t, models.ReservationArchived, byID[overdue.ID].Status)
	assert.NotNil(t, byID[overdue.ID].ArchivedAt)
	assert.Equal(t, models.ReservationActive, byID[recent.ID].Status)
	assert.Nil(t, byID[recent.ID].ArchivedAt)

	// The transition is persisted, not just reflected in the view.
	doc, err := st.Load()
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationArchived, doc.FindReservation(overdue.ID).Status)
}

func TestListingSweepSkipsTerminalStatuses(t *testing.T) {
	st := newEmptyStore(t)
	table := mustAddTable(t, st, "一楼1", models.FloorGround, 4)
	svc := NewReservationService(st)

	res, err := svc.Create(table.ID, startTimeIn(-30*time.Minute), "王先生", "138", 2, "")
	assert.NoError(t, err)
	assert.NoError(t, svc.Cancel(res.ID))

	_, err = NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)

	doc, err := st.Load()
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, doc.FindReservation(res.ID).Status)
}

func TestListingSweepSkipsUnparsableStartTime(t *testing.T) {
	st := store.Open(t.TempDir() + "/data.json")
	err := st.Save(&models.Document{
		Tables: []models.Table{{ID: "t1", Name: "一楼1", Floor: models.FloorGround, Seats: 4}},
		Reservations: []models.Reservation{{
			ID:        "r1",
			TableID:   "t1",
			StartTime: "soon",
			GuestName: "王先生",
			Phone:     "138",
			PartySize: 2,
			Status:    models.ReservationActive,
			CreatedAt: "2024-01-01T12:00:00",
		}},
	})
	assert.NoError(t, err)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationActive, tables[0].Reservations[0].Status)
}

func TestListingDropsReservationsOfDeletedTables(t *testing.T) {
	st := store.Open(t.TempDir() + "/data.json")
	err := st.Save(&models.Document{
		Tables: []models.Table{{ID: "t1", Name: "一楼1", Floor: models.FloorGround, Seats: 4}},
		Reservations: []models.Reservation{{
			ID:        "r1",
			TableID:   "tbl-vanished",
			StartTime: "2031-01-01T19:00",
			GuestName: "王先生",
			Phone:     "138",
			PartySize: 2,
			Status:    models.ReservationActive,
			CreatedAt: "2024-01-01T12:00:00",
		}},
	})
	assert.NoError(t, err)

	tables, err := NewListingService(st).TablesWithReservations()
	assert.NoError(t, err)
	assert.Len(t, tables, 1)
	assert.Empty(t, tables[0].Reservations)
}
