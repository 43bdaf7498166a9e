package models

// Floor labels recognized by this deployment. There are exactly two; any
// other value fails validation.
const (
	FloorGround = "一楼"
	FloorUpper  = "二楼"
)

var floorOrder = map[string]int{
	FloorGround: 0,
	FloorUpper:  1,
}

// KnownFloor reports whether floor is one of the recognized labels.
func KnownFloor(floor string) bool {
	_, ok := floorOrder[floor]
	return ok
}

// FloorRank returns the listing priority of a floor label. Unrecognized
// floors sort after all recognized ones.
func FloorRank(floor string) int {
	if rank, ok := floorOrder[floor]; ok {
		return rank
	}
	return len(floorOrder)
}

type Table struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Floor string `json:"floor"`
	Seats int    `json:"seats"`
}
