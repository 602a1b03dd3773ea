package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/figmm/event-seat-reservation/internal/model"
	"github.com/figmm/event-seat-reservation/internal/queue"
	"github.com/figmm/event-seat-reservation/internal/repository"
	"github.com/figmm/event-seat-reservation/internal/utils"
)

// EstadoConfirmada is the only reservation state the normal flow writes.
const EstadoConfirmada = "confirmada"

// ReservaHandler commits reservations and serves the result
// projections for the success and details screens.
type ReservaHandler struct {
	Usuarios UsuarioStore
	Mesas    MesaStore
	Asientos AsientoStore
	Reservas ReservaStore

	// PublicarConfirmada is invoked best-effort after a successful
	// commit; a nil value disables publishing, a returned error is
	// logged and ignored.
	PublicarConfirmada func(ctx context.Context, ev queue.ReservaConfirmadaEvent) error
}

// NewReservaHandler constructs a ReservaHandler.
func NewReservaHandler(usuarios UsuarioStore, mesas MesaStore, asientos AsientoStore, reservas ReservaStore) *ReservaHandler {
	return &ReservaHandler{Usuarios: usuarios, Mesas: mesas, Asientos: asientos, Reservas: reservas}
}

// Crear handles POST /v1/reservas. The payload is the confirmed
// attendee form plus the selected seat. After normalization and
// validation it performs the three writes of the commit chain
// sequentially: usuario update, reserva insert, asiento occupancy.
// There is no transaction and no rollback; if a later step fails the
// earlier writes stay applied and the attendee sees one generic
// failure message, matching the product's observable behavior.
func (h *ReservaHandler) Crear(c echo.Context) error {
	var body struct {
		UsuarioID uint64 `json:"usuario_id"`
		AsientoID uint64 `json:"asiento_id"`
		model.DatosAsistente
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UsuarioID == 0 || body.AsientoID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "usuario_id and asiento_id are required"})
	}

	utils.NormalizarAsistente(&body.DatosAsistente)
	if errs := utils.ValidarAsistente(body.DatosAsistente); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "datos_invalidos",
			"campos": errs,
		})
	}

	ctx := c.Request().Context()
	asiento, err := h.Asientos.GetByID(ctx, body.AsientoID)
	if err != nil {
		if errors.Is(err, repository.ErrAsientoNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "asiento no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, commitError())
	}

	// Occupancy is the seat's own flag or any reserva referencing it.
	// This is a read-then-write check with no lock; the store's own
	// constraints are the only protection against a race.
	ocupado := asiento.Ocupado
	if !ocupado {
		existe, err := h.Reservas.ExistsByAsiento(ctx, asiento.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, commitError())
		}
		ocupado = existe
	}
	if ocupado {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":   "asiento_ocupado",
			"message": "El asiento seleccionado ya está ocupado",
		})
	}

	ahora := time.Now().UTC()
	if err := h.Usuarios.GuardarDatosReserva(ctx, body.UsuarioID, body.DatosAsistente, ahora); err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "usuario no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, commitError())
	}

	rv := model.Reserva{
		UsuarioID: body.UsuarioID,
		MesaID:    asiento.MesaID,
		AsientoID: asiento.ID,
		Estado:    EstadoConfirmada,
	}
	if err := h.Reservas.Create(ctx, &rv); err != nil {
		// The usuario update above stays applied.
		return c.JSON(http.StatusInternalServerError, commitError())
	}

	if err := h.Asientos.MarcarOcupado(ctx, asiento.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, commitError())
	}

	h.publicarConfirmada(ctx, rv, body.DatosAsistente, asiento, ahora)

	return c.JSON(http.StatusCreated, echo.Map{
		"reserva_id": rv.ID,
		"estado":     rv.Estado,
	})
}

// publicarConfirmada emits the confirmation event. Failures never
// affect the request outcome.
func (h *ReservaHandler) publicarConfirmada(ctx context.Context, rv model.Reserva, d model.DatosAsistente, asiento model.Asiento, ahora time.Time) {
	if h.PublicarConfirmada == nil {
		return
	}
	ev := queue.ReservaConfirmadaEvent{
		ReservaID:     rv.ID,
		UsuarioID:     rv.UsuarioID,
		Nombres:       d.Nombres,
		Apellidos:     d.Apellidos,
		Correo:        d.Correo,
		MesaID:        asiento.MesaID,
		AsientoID:     asiento.ID,
		AsientoNumero: asiento.Numero,
		Estado:        rv.Estado,
		ConfirmadaAt:  ahora.Format(time.RFC3339),
	}
	if mesa, err := h.Mesas.GetByID(ctx, asiento.MesaID); err == nil {
		ev.MesaNombre = mesa.Nombre
	}
	if err := h.PublicarConfirmada(ctx, ev); err != nil {
		log.Printf("reserva: publish confirmada failed: %v", err)
	}
}

// Latest handles GET /v1/reservas/latest?usuario_id=N. It returns the
// user's most recent reservation joined with usuario, mesa and
// asiento, plus the localized date and the shareable text summary.
// Pure read; calling it twice yields identical data.
func (h *ReservaHandler) Latest(c echo.Context) error {
	usuarioID, err := strconv.ParseUint(c.QueryParam("usuario_id"), 10, 64)
	if err != nil || usuarioID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "usuario_id is required"})
	}

	ctx := c.Request().Context()
	d, err := h.Reservas.LatestDetalleByUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, repository.ErrReservaNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":   "reserva_no_encontrada",
				"message": "No se encontró información de la reserva",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "error_interno",
			"message": "No se pudo cargar la información de la reserva",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"usuario": echo.Map{
			"nombres":   d.Nombres,
			"apellidos": d.Apellidos,
			"dni":       d.DNI,
			"telefono":  d.Telefono,
			"correo":    d.Correo,
			"codigo":    d.Codigo,
		},
		"mesa": echo.Map{
			"nombre": d.MesaNombre,
			"numero": d.MesaNumero,
		},
		"asiento": echo.Map{
			"numero": d.AsientoNumero,
		},
		"reserva": echo.Map{
			"id":               d.ReservaID,
			"estado":           d.Estado,
			"created_at":       d.CreatedAt,
			"fecha_formateada": utils.FormatearFechaLarga(d.CreatedAt),
		},
		"texto_compartir": utils.TextoCompartir(d),
	})
}

func commitError() echo.Map {
	return echo.Map{
		"error":   "error_interno",
		"message": "No se pudo completar la reserva. Inténtalo nuevamente.",
	}
}
