// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservaConfirmadaEvent is published after the reservation write
// chain succeeds. It carries enough for downstream consumers (the
// organizer notification log) without querying the database.
type ReservaConfirmadaEvent struct {
	ReservaID     uint64 `json:"reserva_id"`
	UsuarioID     uint64 `json:"usuario_id"`
	Nombres       string `json:"nombres"`
	Apellidos     string `json:"apellidos"`
	Correo        string `json:"correo"`
	MesaID        uint64 `json:"mesa_id"`
	MesaNombre    string `json:"mesa_nombre"`
	AsientoID     uint64 `json:"asiento_id"`
	AsientoNumero uint32 `json:"asiento_numero"`
	Estado        string `json:"estado"`
	ConfirmadaAt  string `json:"confirmada_at"`
}
