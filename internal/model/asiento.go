package model

// Asiento represents an individually reservable seat belonging to
// exactly one mesa. Posicion orders the seats around the table for
// layout purposes. Ocupado is flipped from false to true exactly
// once when a reservation commits; the application never reverts it.
//
// Fields:
//  ID       – primary key identifier.
//  Numero   – seat number shown to attendees.
//  MesaID   – table the seat belongs to.
//  Posicion – 0-based index used for circular placement.
//  Ocupado  – whether the seat has been taken.
type Asiento struct {
	ID       uint64 // asiento.id
	Numero   uint32 // asiento.numero
	MesaID   uint64 // asiento.mesa_id
	Posicion uint32 // asiento.posicion
	Ocupado  bool   // asiento.ocupado
}
