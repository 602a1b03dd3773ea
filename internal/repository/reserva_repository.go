package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// ReservaRepo provides access to the `reserva` table.
type ReservaRepo struct {
	db *sql.DB
}

// NewReservaRepo constructs a ReservaRepo with the given DB handle.
func NewReservaRepo(db *sql.DB) *ReservaRepo {
	return &ReservaRepo{db: db}
}

// Create inserts a reserva row. On success the reserva's ID is
// populated. Step (b) of the reservation commit chain; deliberately
// not wrapped in a transaction with the other steps so the observable
// partial-failure behavior of the product is preserved.
func (r *ReservaRepo) Create(ctx context.Context, rv *model.Reserva) error {
	const q = `INSERT INTO reserva (usuario_id, mesa_id, asiento_id, estado)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rv.UsuarioID, rv.MesaID, rv.AsientoID, rv.Estado)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// ExistsByUsuario reports whether the user holds at least one reserva
// row. The access gate uses this as a secondary signal in case the
// usuario.reservado flag is stale.
func (r *ReservaRepo) ExistsByUsuario(ctx context.Context, usuarioID uint64) (bool, error) {
	const q = `SELECT id FROM reserva WHERE usuario_id = ? LIMIT 1`
	var id uint64
	err := r.db.QueryRowContext(ctx, q, usuarioID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExistsByAsiento reports whether any reserva references the seat.
// Seat occupancy is driven by the seat's own flag OR such a row.
func (r *ReservaRepo) ExistsByAsiento(ctx context.Context, asientoID uint64) (bool, error) {
	const q = `SELECT id FROM reserva WHERE asiento_id = ? LIMIT 1`
	var id uint64
	err := r.db.QueryRowContext(ctx, q, asientoID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListConUsuario retrieves every reserva expanded with the reserving
// attendee's name, as the seat map needs to label occupied seats.
func (r *ReservaRepo) ListConUsuario(ctx context.Context) ([]model.ReservaConUsuario, error) {
	const q = `SELECT r.id, r.usuario_id, r.mesa_id, r.asiento_id, r.estado, r.created_at,
	                  u.nombres, u.apellidos
	           FROM reserva r
	           JOIN usuario u ON u.id = r.usuario_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ReservaConUsuario
	for rows.Next() {
		var rv model.ReservaConUsuario
		if err := rows.Scan(&rv.ID, &rv.UsuarioID, &rv.MesaID, &rv.AsientoID, &rv.Estado,
			&rv.CreatedAt, &rv.Nombres, &rv.Apellidos); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LatestDetalleByUsuario retrieves the user's most recent reserva
// joined with the linked usuario, mesa and asiento rows in a single
// query. Ordering by created_at tolerates a backend holding more than
// one row per user; this is a defensive read, not a guarantee.
func (r *ReservaRepo) LatestDetalleByUsuario(ctx context.Context, usuarioID uint64) (model.ReservaDetalle, error) {
	const q = `SELECT r.id, r.estado, r.created_at,
	                  u.nombres, u.apellidos, u.dni, u.telefono, u.correo, u.codigo,
	                  m.nombre, m.numero,
	                  a.numero
	           FROM reserva r
	           JOIN usuario u ON u.id = r.usuario_id
	           JOIN mesa m ON m.id = r.mesa_id
	           JOIN asiento a ON a.id = r.asiento_id
	           WHERE r.usuario_id = ?
	           ORDER BY r.created_at DESC
	           LIMIT 1`
	var d model.ReservaDetalle
	err := r.db.QueryRowContext(ctx, q, usuarioID).
		Scan(&d.ReservaID, &d.Estado, &d.CreatedAt,
			&d.Nombres, &d.Apellidos, &d.DNI, &d.Telefono, &d.Correo, &d.Codigo,
			&d.MesaNombre, &d.MesaNumero, &d.AsientoNumero)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservaDetalle{}, ErrReservaNotFound
		}
		return model.ReservaDetalle{}, err
	}
	return d, nil
}
