package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// UsuarioRepo provides access to the `usuario` table.
type UsuarioRepo struct {
	db *sql.DB
}

// NewUsuarioRepo constructs a UsuarioRepo with the given DB handle.
func NewUsuarioRepo(db *sql.DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioCols = `id, codigo, nombres, apellidos, dni, telefono, correo, reservado, fecha_reserva, created_at`

func scanUsuario(row *sql.Row) (model.Usuario, error) {
	var u model.Usuario
	err := row.Scan(&u.ID, &u.Codigo, &u.Nombres, &u.Apellidos, &u.DNI,
		&u.Telefono, &u.Correo, &u.Reservado, &u.FechaReserva, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Usuario{}, ErrUsuarioNotFound
	}
	return u, err
}

// GetByCodigo fetches a usuario by exact access-code match.
func (r *UsuarioRepo) GetByCodigo(ctx context.Context, codigo string) (model.Usuario, error) {
	const q = `SELECT ` + usuarioCols + ` FROM usuario WHERE codigo = ? LIMIT 1`
	return scanUsuario(r.db.QueryRowContext(ctx, q, codigo))
}

// GetByID fetches a usuario by id.
func (r *UsuarioRepo) GetByID(ctx context.Context, id uint64) (model.Usuario, error) {
	const q = `SELECT ` + usuarioCols + ` FROM usuario WHERE id = ? LIMIT 1`
	return scanUsuario(r.db.QueryRowContext(ctx, q, id))
}

// GuardarDatosReserva writes the attendee form onto the usuario row,
// marks it reserved and stamps fecha_reserva. This is step (a) of the
// reservation commit chain.
func (r *UsuarioRepo) GuardarDatosReserva(ctx context.Context, id uint64, d model.DatosAsistente, fecha time.Time) error {
	const q = `UPDATE usuario
	           SET nombres = ?, apellidos = ?, dni = ?, telefono = ?, correo = ?,
	               reservado = TRUE, fecha_reserva = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, d.Nombres, d.Apellidos, d.DNI, d.Telefono, d.Correo, fecha, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the row exists but nothing changed;
		// verify existence before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
