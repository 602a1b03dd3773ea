package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/figmm/event-seat-reservation/internal/layout"
	"github.com/figmm/event-seat-reservation/internal/model"
	"github.com/figmm/event-seat-reservation/internal/utils"
)

// VenueHandler serves the read-only seat map: every table with its
// seats resolved to libre/ocupado, positioned on the floor plan. It
// performs no writes; seat selection is client state and never
// appears here.
type VenueHandler struct {
	Mesas    MesaStore
	Asientos AsientoStore
	Reservas ReservaStore
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(mesas MesaStore, asientos AsientoStore, reservas ReservaStore) *VenueHandler {
	return &VenueHandler{Mesas: mesas, Asientos: asientos, Reservas: reservas}
}

// venueAsiento is one seat in the venue payload. Etiqueta and
// NombreCompleto are only set for occupied seats with a known
// reserving attendee (seat label and hover tooltip respectively).
type venueAsiento struct {
	ID             uint64       `json:"id"`
	Numero         uint32       `json:"numero"`
	MesaID         uint64       `json:"mesa_id"`
	Posicion       uint32       `json:"posicion"`
	Estado         string       `json:"estado"`
	Pos            layout.Point `json:"pos"`
	Etiqueta       string       `json:"etiqueta,omitempty"`
	NombreCompleto string       `json:"nombre_completo,omitempty"`
}

// venueMesa is one table in the venue payload.
type venueMesa struct {
	ID          uint64           `json:"id"`
	Numero      uint32           `json:"numero"`
	Nombre      string           `json:"nombre"`
	Capacidad   uint32           `json:"capacidad"`
	Slot        layout.TableSlot `json:"slot"`
	Disponibles int              `json:"disponibles"`
	Total       int              `json:"total"`
	Asientos    []venueAsiento   `json:"asientos"`
}

// Seat states in the venue payload. "Selected" is local client state
// by design and never part of this response.
const (
	estadoLibre   = "libre"
	estadoOcupado = "ocupado"
)

// GetVenue handles GET /v1/venue. It loads all three tables, joins
// reservations to seats in memory, and returns the fully positioned
// floor plan. Responses are cacheable (the cache middleware fronts
// this route).
func (h *VenueHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()

	mesas, err := h.Mesas.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, venueLoadError())
	}
	asientos, err := h.Asientos.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, venueLoadError())
	}
	reservas, err := h.Reservas.ListConUsuario(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, venueLoadError())
	}

	reservaPorAsiento := make(map[uint64]model.ReservaConUsuario, len(reservas))
	for _, rv := range reservas {
		reservaPorAsiento[rv.AsientoID] = rv
	}
	asientosPorMesa := make(map[uint64][]model.Asiento, len(mesas))
	for _, a := range asientos {
		asientosPorMesa[a.MesaID] = append(asientosPorMesa[a.MesaID], a)
	}

	libres, ocupados := 0, 0
	overflow := 0
	out := make([]venueMesa, 0, len(mesas))
	for _, m := range mesas {
		slot := layout.SlotFor(m.Numero, overflow)
		if slot.Extra {
			overflow++
		}

		propios := asientosPorMesa[m.ID]
		posiciones := layout.SeatPositions(len(propios), slot.Pos, layout.SeatRadius)
		vm := venueMesa{
			ID:        m.ID,
			Numero:    m.Numero,
			Nombre:    m.Nombre,
			Capacidad: m.Capacidad,
			Slot:      slot,
			Total:     len(propios),
			Asientos:  make([]venueAsiento, 0, len(propios)),
		}
		for i, a := range propios {
			va := venueAsiento{
				ID:       a.ID,
				Numero:   a.Numero,
				MesaID:   a.MesaID,
				Posicion: a.Posicion,
				Estado:   estadoLibre,
				Pos:      posiciones[i],
			}
			rv, reservado := reservaPorAsiento[a.ID]
			if a.Ocupado || reservado {
				va.Estado = estadoOcupado
				ocupados++
				if reservado {
					va.Etiqueta = utils.PrimeraPalabra(rv.Nombres) + " " + utils.PrimeraPalabra(rv.Apellidos)
					va.NombreCompleto = rv.Nombres + " " + rv.Apellidos
				}
			} else {
				vm.Disponibles++
				libres++
			}
			vm.Asientos = append(vm.Asientos, va)
		}
		out = append(out, vm)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"dimensiones": echo.Map{"width": layout.VenueWidth, "height": layout.VenueHeight},
		"areas":       layout.Areas(),
		"mesas":       out,
		"libres":      libres,
		"ocupados":    ocupados,
	})
}

// GetViewport handles GET /v1/venue/viewport. Given the container's
// pixel dimensions it returns the auto-fit scale and centering
// offset; the client calls it on mount and on resize.
func (h *VenueHandler) GetViewport(c echo.Context) error {
	width, errW := strconv.ParseFloat(c.QueryParam("width"), 64)
	height, errH := strconv.ParseFloat(c.QueryParam("height"), 64)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "width and height are required"})
	}
	vp := layout.FitToContainer(width, height)
	return c.JSON(http.StatusOK, echo.Map{
		"viewport":  vp,
		"min_scale": layout.MinScale,
		"max_scale": layout.MaxScale,
	})
}

// GetInfo handles GET /v1/venue/info, backing the floor-plan
// reference dialog: event title plus the two floor images served from
// the static assets route.
func (h *VenueHandler) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"titulo": "Reencuentro de egresados FIGMM 2025",
		"logo":   "/assets/logo.jpeg",
		"pisos": []echo.Map{
			{
				"piso":        1,
				"imagen":      "/assets/venue.jpeg",
				"descripcion": "Distribución oficial del evento - Las mesas están numeradas del 1 al 28",
			},
			{
				"piso":        2,
				"imagen":      "/assets/venue2.jpeg",
				"descripcion": "Distribución oficial del evento - Las mesas están numeradas del 29 al 34",
			},
		},
	})
}

func venueLoadError() echo.Map {
	return echo.Map{
		"error":   "error_interno",
		"message": "No se pudo cargar la información del evento",
	}
}
