package model

import "time"

// Reserva links one usuario to one asiento at one mesa. The schema
// carries no uniqueness constraint on usuario_id, so reads that need
// "the" reservation of a user order by created_at descending and take
// the first row.
//
// Fields:
//  ID        – primary key identifier.
//  UsuarioID – attendee who reserved.
//  MesaID    – table of the reserved seat.
//  AsientoID – reserved seat.
//  Estado    – reservation state; the normal flow only writes "confirmada".
//  CreatedAt – creation timestamp.
type Reserva struct {
	ID        uint64    // reserva.id
	UsuarioID uint64    // reserva.usuario_id
	MesaID    uint64    // reserva.mesa_id
	AsientoID uint64    // reserva.asiento_id
	Estado    string    // reserva.estado
	CreatedAt time.Time // reserva.created_at
}

// ReservaConUsuario is a reserva row expanded with the reserving
// attendee's name, as needed by the seat map to label occupied seats.
type ReservaConUsuario struct {
	Reserva
	Nombres   string
	Apellidos string
}

// ReservaDetalle is the joined projection backing the success and
// details screens: the most recent reserva of a user together with
// the linked usuario, mesa and asiento records.
type ReservaDetalle struct {
	ReservaID     uint64
	Estado        string
	CreatedAt     time.Time
	Nombres       string
	Apellidos     string
	DNI           string
	Telefono      string
	Correo        string
	Codigo        string
	MesaNombre    string
	MesaNumero    uint32
	AsientoNumero uint32
}
