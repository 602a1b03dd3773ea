package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// ErrMesaNotFound is returned when a mesa lookup yields no rows.
var ErrMesaNotFound = errors.New("mesa not found")

// MesaRepo provides read access to the `mesa` table. Tables are
// seeded at bootstrap and never written by the application.
type MesaRepo struct {
	db *sql.DB
}

// NewMesaRepo constructs a MesaRepo with the given DB handle.
func NewMesaRepo(db *sql.DB) *MesaRepo {
	return &MesaRepo{db: db}
}

// ListAll retrieves every mesa ordered by numero, the order the seat
// map renders them in.
func (r *MesaRepo) ListAll(ctx context.Context) ([]model.Mesa, error) {
	const q = `SELECT id, numero, nombre, capacidad FROM mesa ORDER BY numero`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Mesa
	for rows.Next() {
		var m model.Mesa
		if err := rows.Scan(&m.ID, &m.Numero, &m.Nombre, &m.Capacidad); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single mesa by its id.
func (r *MesaRepo) GetByID(ctx context.Context, id uint64) (model.Mesa, error) {
	const q = `SELECT id, numero, nombre, capacidad FROM mesa WHERE id = ?`
	var m model.Mesa
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Numero, &m.Nombre, &m.Capacidad)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Mesa{}, ErrMesaNotFound
		}
		return model.Mesa{}, err
	}
	return m, nil
}
