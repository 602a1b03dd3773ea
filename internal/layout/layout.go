// Package layout holds the floor-plan geometry of the venue: the
// fixed coordinates of the numbered tables, the special areas drawn
// around them, and the circular placement of seats. Everything here
// is pure arithmetic over constants; no data is read or mutated.
package layout

import "math"

// Venue canvas dimensions in layout units.
const (
	VenueWidth  = 1800
	VenueHeight = 1200
)

// SeatRadius is the distance from a table's center to its seats.
const SeatRadius = 35

// Overflow row placement for tables beyond the known floor plan.
// They line up along the bottom and are flagged as extra capacity.
const (
	overflowStartX = 100
	overflowStepX  = 120
	overflowY      = 820
)

// Point is a position on the venue canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TableSlot is a table's place on the floor plan. VIP and Destacada
// carry the visual flags of the printed plan; Extra marks overflow
// tables that have no slot on it.
type TableSlot struct {
	Numero    uint32 `json:"numero"`
	Pos       Point  `json:"pos"`
	VIP       bool   `json:"vip,omitempty"`
	Destacada bool   `json:"destacada,omitempty"`
	Extra     bool   `json:"extra,omitempty"`
}

// Area is a non-seating zone of the venue (stage, dance floor, ...)
// drawn behind the tables.
type Area struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Tipo     string  `json:"tipo"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

// tableSlots fixes the positions of the 28 tables on the printed
// floor plan. Tables 1-4 form the VIP area, table 5 is highlighted.
var tableSlots = map[uint32]TableSlot{
	// top rows
	18: {Numero: 18, Pos: Point{600, 150}},
	19: {Numero: 19, Pos: Point{800, 150}},
	20: {Numero: 20, Pos: Point{1000, 150}},
	21: {Numero: 21, Pos: Point{600, 300}},
	22: {Numero: 22, Pos: Point{800, 300}},
	23: {Numero: 23, Pos: Point{1000, 300}},
	24: {Numero: 24, Pos: Point{600, 450}},
	25: {Numero: 25, Pos: Point{800, 450}},
	26: {Numero: 26, Pos: Point{1000, 450}},
	27: {Numero: 27, Pos: Point{1200, 300}},
	28: {Numero: 28, Pos: Point{1400, 300}},
	// VIP area
	1: {Numero: 1, Pos: Point{1200, 450}, VIP: true},
	2: {Numero: 2, Pos: Point{1400, 450}, VIP: true},
	3: {Numero: 3, Pos: Point{1600, 450}, VIP: true},
	4: {Numero: 4, Pos: Point{1600, 600}, VIP: true},
	// highlighted table
	5: {Numero: 5, Pos: Point{1200, 600}, Destacada: true},
	// right block
	6:  {Numero: 6, Pos: Point{1400, 600}},
	7:  {Numero: 7, Pos: Point{1200, 750}},
	8:  {Numero: 8, Pos: Point{1400, 750}},
	9:  {Numero: 9, Pos: Point{1600, 750}},
	10: {Numero: 10, Pos: Point{1600, 900}},
	11: {Numero: 11, Pos: Point{1400, 900}},
	12: {Numero: 12, Pos: Point{1200, 900}},
	// bottom row
	13: {Numero: 13, Pos: Point{450, 900}},
	14: {Numero: 14, Pos: Point{600, 900}},
	15: {Numero: 15, Pos: Point{750, 900}},
	16: {Numero: 16, Pos: Point{900, 900}},
	17: {Numero: 17, Pos: Point{1050, 900}},
}

// areas lists the special venue zones.
var areas = []Area{
	{ID: "dance_floor", Nombre: "PISTA DE BAILE", Tipo: "dance_floor", X: 650, Y: 550, Width: 400, Height: 200},
	{ID: "stage", Nombre: "ESCENARIO DE ORQUESTA", Tipo: "stage", X: 200, Y: 450, Width: 120, Height: 350},
	{ID: "bar", Nombre: "BARRA DE COCTELES", Tipo: "bar", X: 1150, Y: 80, Width: 250, Height: 100, Rotation: 15},
	{ID: "banos", Nombre: "BAÑOS", Tipo: "service", X: 80, Y: 250, Width: 100, Height: 150},
	{ID: "pantalla", Nombre: "PANTALLA", Tipo: "screen", X: 1650, Y: 500, Width: 60, Height: 250},
}

// Areas returns the special venue zones in drawing order.
func Areas() []Area {
	out := make([]Area, len(areas))
	copy(out, areas)
	return out
}

// SlotFor returns the floor-plan slot of a table. Tables numbered
// beyond the plan get a position in the overflow row instead;
// overflowIndex counts how many overflow tables precede this one.
func SlotFor(numero uint32, overflowIndex int) TableSlot {
	if slot, ok := tableSlots[numero]; ok {
		return slot
	}
	return TableSlot{
		Numero: numero,
		Pos:    Point{overflowStartX + float64(overflowIndex)*overflowStepX, overflowY},
		Extra:  true,
	}
}

// OnPlan reports whether a table number has a slot on the printed
// floor plan.
func OnPlan(numero uint32) bool {
	_, ok := tableSlots[numero]
	return ok
}

// SeatAngle returns the angular position of seat index i out of n,
// starting at the top of the circle and going clockwise.
func SeatAngle(i, n int) float64 {
	return float64(i)/float64(n)*2*math.Pi - math.Pi/2
}

// SeatPositions arranges n seats on a circle of the given radius
// around center. Returns nil when n <= 0.
func SeatPositions(n int, center Point, radius float64) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		angle := SeatAngle(i, n)
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}
