package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/figmm/event-seat-reservation/internal/model"
)

func TestFormatearFechaLarga(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, time.January, 2, 20, 30, 0, 0, time.UTC), "2 de enero de 2026, 20:30"},
		{time.Date(2025, time.December, 31, 9, 5, 0, 0, time.UTC), "31 de diciembre de 2025, 09:05"},
		{time.Date(2025, time.September, 14, 0, 0, 0, 0, time.UTC), "14 de septiembre de 2025, 00:00"},
	}
	for _, tc := range cases {
		if got := FormatearFechaLarga(tc.in); got != tc.want {
			t.Errorf("FormatearFechaLarga(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextoCompartir(t *testing.T) {
	got := TextoCompartir(model.ReservaDetalle{
		Nombres:       "Juan Carlos",
		Apellidos:     "Pérez García",
		MesaNombre:    "Mesa 5",
		MesaNumero:    5,
		AsientoNumero: 42,
		Estado:        "confirmada",
		CreatedAt:     time.Date(2025, time.November, 8, 19, 45, 0, 0, time.UTC),
	})

	if !strings.HasPrefix(got, "Mi Reserva - Reencuentro de egresados FIGMM 2025\n") {
		t.Errorf("missing header, got %q", got)
	}
	for _, line := range []string{
		"Nombre: Juan Carlos Pérez García",
		"Mesa: Mesa 5 (Mesa 5)",
		"Asiento: #42",
		"Fecha de reserva: 8 de noviembre de 2025, 19:45",
		"Estado: confirmada",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}
