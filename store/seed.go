package store

import (
	"fmt"

	"github.com/yeremiapane/reservation-app/models"
)

// defaultTables builds the initial inventory: 一楼0..一楼10 with 4 seats and
// 二楼1..二楼10 with 6 seats.
func defaultTables() []models.Table {
	tables := make([]models.Table, 0, 21)
	for i := 0; i <= 10; i++ {
		tables = append(tables, models.Table{
			ID:    models.NewTableID(),
			Name:  fmt.Sprintf("%s%d", models.FloorGround, i),
			Floor: models.FloorGround,
			Seats: 4,
		})
	}
	for j := 1; j <= 10; j++ {
		tables = append(tables, models.Table{
			ID:    models.NewTableID(),
			Name:  fmt.Sprintf("%s%d", models.FloorUpper, j),
			Floor: models.FloorUpper,
			Seats: 6,
		})
	}
	return tables
}
