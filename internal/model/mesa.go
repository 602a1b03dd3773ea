package model

// Mesa represents a physical table in the venue. Tables are seeded
// at bootstrap and read-only from the application's perspective.
//
// Fields:
//  ID        – primary key identifier.
//  Numero    – table number as printed on the floor plan.
//  Nombre    – display name (e.g. "Mesa 3").
//  Capacidad – number of seats around the table.
type Mesa struct {
	ID        uint64 // mesa.id
	Numero    uint32 // mesa.numero
	Nombre    string // mesa.nombre
	Capacidad uint32 // mesa.capacidad
}
