package handler

import (
	"context"
	"time"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// The handlers depend on narrow store interfaces rather than the
// concrete repositories so they can be exercised against in-memory
// fakes. The repository types satisfy them directly.

// UsuarioStore is the slice of usuario access the handlers need.
type UsuarioStore interface {
	GetByCodigo(ctx context.Context, codigo string) (model.Usuario, error)
	GuardarDatosReserva(ctx context.Context, id uint64, d model.DatosAsistente, fecha time.Time) error
}

// MesaStore exposes the read-only mesa table.
type MesaStore interface {
	ListAll(ctx context.Context) ([]model.Mesa, error)
	GetByID(ctx context.Context, id uint64) (model.Mesa, error)
}

// AsientoStore exposes seat reads and the single occupancy write.
type AsientoStore interface {
	ListAll(ctx context.Context) ([]model.Asiento, error)
	GetByID(ctx context.Context, id uint64) (model.Asiento, error)
	MarcarOcupado(ctx context.Context, id uint64) error
}

// ReservaStore exposes reservation reads and the insert.
type ReservaStore interface {
	Create(ctx context.Context, rv *model.Reserva) error
	ExistsByUsuario(ctx context.Context, usuarioID uint64) (bool, error)
	ExistsByAsiento(ctx context.Context, asientoID uint64) (bool, error)
	ListConUsuario(ctx context.Context) ([]model.ReservaConUsuario, error)
	LatestDetalleByUsuario(ctx context.Context, usuarioID uint64) (model.ReservaDetalle, error)
}
