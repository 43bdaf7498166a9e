package models

// Document is the single persisted structure holding all tables and
// reservations.
type Document struct {
	Tables       []Table       `json:"tables"`
	Reservations []Reservation `json:"reservations"`
}

// FindTable returns a pointer into the document's table list, or nil when
// the id is unknown.
func (d *Document) FindTable(id string) *Table {
	for i := range d.Tables {
		if d.Tables[i].ID == id {
			return &d.Tables[i]
		}
	}
	return nil
}

// HasTable reports whether a table with the given id exists.
func (d *Document) HasTable(id string) bool {
	return d.FindTable(id) != nil
}

// FindReservation returns a pointer into the document's reservation list,
// or nil when the id is unknown.
func (d *Document) FindReservation(id string) *Reservation {
	for i := range d.Reservations {
		if d.Reservations[i].ID == id {
			return &d.Reservations[i]
		}
	}
	return nil
}
