package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/figmm/event-seat-reservation/internal/model"
)

var meses = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatearFechaLarga renders a timestamp in the long Spanish style
// the result screens use, e.g. "2 de enero de 2026, 20:30".
func FormatearFechaLarga(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), meses[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// TextoCompartir builds the plain-text reservation summary the
// details screen shares or copies to the clipboard.
func TextoCompartir(d model.ReservaDetalle) string {
	var b strings.Builder
	b.WriteString("Mi Reserva - Reencuentro de egresados FIGMM 2025\n")
	fmt.Fprintf(&b, "Nombre: %s %s\n", d.Nombres, d.Apellidos)
	fmt.Fprintf(&b, "Mesa: %s (Mesa %d)\n", d.MesaNombre, d.MesaNumero)
	fmt.Fprintf(&b, "Asiento: #%d\n", d.AsientoNumero)
	fmt.Fprintf(&b, "Fecha de reserva: %s\n", FormatearFechaLarga(d.CreatedAt))
	fmt.Fprintf(&b, "Estado: %s", d.Estado)
	return b.String()
}
