package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/figmm/event-seat-reservation/internal/model"
	"github.com/figmm/event-seat-reservation/internal/repository"
)

// In-memory store fakes. They record writes so tests can assert on
// what each handler touched.

type guardada struct {
	ID    uint64
	Datos model.DatosAsistente
	Fecha time.Time
}

type fakeUsuarios struct {
	porCodigo  map[string]model.Usuario
	getCalls   int
	guardadas  []guardada
	errGuardar error
}

func (f *fakeUsuarios) GetByCodigo(_ context.Context, codigo string) (model.Usuario, error) {
	f.getCalls++
	if u, ok := f.porCodigo[codigo]; ok {
		return u, nil
	}
	return model.Usuario{}, repository.ErrUsuarioNotFound
}

func (f *fakeUsuarios) GuardarDatosReserva(_ context.Context, id uint64, d model.DatosAsistente, fecha time.Time) error {
	if f.errGuardar != nil {
		return f.errGuardar
	}
	f.guardadas = append(f.guardadas, guardada{ID: id, Datos: d, Fecha: fecha})
	return nil
}

type fakeMesas struct {
	mesas []model.Mesa
}

func (f *fakeMesas) ListAll(context.Context) ([]model.Mesa, error) { return f.mesas, nil }

func (f *fakeMesas) GetByID(_ context.Context, id uint64) (model.Mesa, error) {
	for _, m := range f.mesas {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Mesa{}, repository.ErrMesaNotFound
}

type fakeAsientos struct {
	asientos  []model.Asiento
	marcados  []uint64
	errMarcar error
}

func (f *fakeAsientos) ListAll(context.Context) ([]model.Asiento, error) { return f.asientos, nil }

func (f *fakeAsientos) GetByID(_ context.Context, id uint64) (model.Asiento, error) {
	for _, a := range f.asientos {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Asiento{}, repository.ErrAsientoNotFound
}

func (f *fakeAsientos) MarcarOcupado(_ context.Context, id uint64) error {
	if f.errMarcar != nil {
		return f.errMarcar
	}
	f.marcados = append(f.marcados, id)
	return nil
}

type fakeReservas struct {
	porUsuario map[uint64]bool
	porAsiento map[uint64]bool
	listado    []model.ReservaConUsuario
	detalles   map[uint64]model.ReservaDetalle
	creadas    []model.Reserva
	nextID     uint64
	errCreate  error
}

func (f *fakeReservas) Create(_ context.Context, rv *model.Reserva) error {
	if f.errCreate != nil {
		return f.errCreate
	}
	f.nextID++
	rv.ID = f.nextID
	rv.CreatedAt = time.Now()
	f.creadas = append(f.creadas, *rv)
	return nil
}

func (f *fakeReservas) ExistsByUsuario(_ context.Context, usuarioID uint64) (bool, error) {
	return f.porUsuario[usuarioID], nil
}

func (f *fakeReservas) ExistsByAsiento(_ context.Context, asientoID uint64) (bool, error) {
	return f.porAsiento[asientoID], nil
}

func (f *fakeReservas) ListConUsuario(context.Context) ([]model.ReservaConUsuario, error) {
	return f.listado, nil
}

func (f *fakeReservas) LatestDetalleByUsuario(_ context.Context, usuarioID uint64) (model.ReservaDetalle, error) {
	if d, ok := f.detalles[usuarioID]; ok {
		return d, nil
	}
	return model.ReservaDetalle{}, repository.ErrReservaNotFound
}

// perform runs an echo handler against a synthetic request and returns
// the recorded response.
func perform(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}
