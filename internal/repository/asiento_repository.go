package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// AsientoRepo provides access to the `asiento` table.
type AsientoRepo struct {
	db *sql.DB
}

// NewAsientoRepo constructs an AsientoRepo with the given DB handle.
func NewAsientoRepo(db *sql.DB) *AsientoRepo {
	return &AsientoRepo{db: db}
}

// ListAll retrieves every seat ordered by mesa then posicion, matching
// the order the layout walks them in.
func (r *AsientoRepo) ListAll(ctx context.Context) ([]model.Asiento, error) {
	const q = `SELECT id, numero, mesa_id, posicion, ocupado
	           FROM asiento
	           ORDER BY mesa_id, posicion`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Asiento
	for rows.Next() {
		var a model.Asiento
		if err := rows.Scan(&a.ID, &a.Numero, &a.MesaID, &a.Posicion, &a.Ocupado); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single seat by its id.
func (r *AsientoRepo) GetByID(ctx context.Context, id uint64) (model.Asiento, error) {
	const q = `SELECT id, numero, mesa_id, posicion, ocupado FROM asiento WHERE id = ?`
	var a model.Asiento
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Numero, &a.MesaID, &a.Posicion, &a.Ocupado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Asiento{}, ErrAsientoNotFound
		}
		return model.Asiento{}, err
	}
	return a, nil
}

// MarcarOcupado flips the seat's ocupado flag to true. Step (c) of the
// reservation commit chain; the application never flips it back.
func (r *AsientoRepo) MarcarOcupado(ctx context.Context, id uint64) error {
	const q = `UPDATE asiento SET ocupado = TRUE WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
