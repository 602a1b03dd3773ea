package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/figmm/event-seat-reservation/internal/repository"
	"github.com/figmm/event-seat-reservation/internal/utils"
)

// Route destinations returned by the access gate. The client carries
// the usuario id to the destination screen as transient navigation
// state only; no session or token is established.
const (
	DestinoSeleccion = "seleccion"
	DestinoDetalle   = "detalle"
)

// AccessHandler validates 6-digit access codes and decides whether
// the attendee goes to seat selection or to their existing
// reservation.
type AccessHandler struct {
	Usuarios UsuarioStore
	Reservas ReservaStore
}

// NewAccessHandler constructs an AccessHandler.
func NewAccessHandler(usuarios UsuarioStore, reservas ReservaStore) *AccessHandler {
	return &AccessHandler{Usuarios: usuarios, Reservas: reservas}
}

// ValidarCodigo handles POST /v1/acceso. Codes that are not exactly
// six digits are rejected locally without touching the store. A known
// code answers with the usuario id and the destination screen; an
// unknown one gets the same generic message regardless of why it
// failed to match.
func (h *AccessHandler) ValidarCodigo(c echo.Context) error {
	var body struct {
		Codigo string `json:"codigo"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !utils.CodigoValido(body.Codigo) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "codigo_invalido",
			"message": "Por favor ingresa un código de 6 dígitos",
		})
	}

	ctx := c.Request().Context()
	u, err := h.Usuarios.GetByCodigo(ctx, body.Codigo)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":   "codigo_no_valido",
				"message": "El código ingresado no existe o no es válido",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "error_interno",
			"message": "Ocurrió un error al validar el código",
		})
	}

	// The reservado flag can be stale, so the presence of a reserva
	// row counts as a secondary signal.
	tieneReserva := u.Reservado
	if !tieneReserva {
		existe, err := h.Reservas.ExistsByUsuario(ctx, u.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error":   "error_interno",
				"message": "Ocurrió un error al validar el código",
			})
		}
		tieneReserva = existe
	}

	destino := DestinoSeleccion
	if tieneReserva {
		destino = DestinoDetalle
	}
	return c.JSON(http.StatusOK, echo.Map{
		"usuario_id": u.ID,
		"destino":    destino,
	})
}
