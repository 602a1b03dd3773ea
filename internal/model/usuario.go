package model

import "time"

// Usuario represents a pre-registered attendee as stored in the
// `usuario` table. Attendees are created out of band by the event
// organizer; the application only fills in the personal fields and
// flips the reservado flag when a reservation is committed. Rows
// are never deleted by the application.
//
// Fields:
//  ID           – primary key identifier.
//  Codigo       – unique 6-digit access code, the only credential.
//  Nombres      – first name(s), empty until the form is submitted.
//  Apellidos    – last name(s), empty until the form is submitted.
//  DNI          – national ID, exactly 8 digits once set.
//  Telefono     – phone number, exactly 9 digits once set.
//  Correo       – e-mail address.
//  Reservado    – whether the attendee already holds a reservation.
//  FechaReserva – when the reservation was committed (nil before).
//  CreatedAt    – timestamp of creation.
type Usuario struct {
	ID           uint64     // usuario.id
	Codigo       string     // usuario.codigo
	Nombres      string     // usuario.nombres
	Apellidos    string     // usuario.apellidos
	DNI          string     // usuario.dni
	Telefono     string     // usuario.telefono
	Correo       string     // usuario.correo
	Reservado    bool       // usuario.reservado
	FechaReserva *time.Time // usuario.fecha_reserva (nullable)
	CreatedAt    time.Time  // usuario.created_at
}

// DatosAsistente carries the personal data collected by the
// reservation form. It is what the commit operation writes onto the
// usuario row; values are expected to be normalized and validated
// before reaching the repository layer.
type DatosAsistente struct {
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono"`
	Correo    string `json:"correo"`
}
