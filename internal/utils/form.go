// Package utils contains the form validation and text formatting
// helpers shared by the handlers.
package utils

import (
	"regexp"
	"strings"

	"github.com/figmm/event-seat-reservation/internal/model"
)

// Field length constraints of the attendee form.
const (
	CodigoLen   = 6
	DNILen      = 8
	TelefonoLen = 9
)

// correoRe accepts the basic local@domain.tld shape; anything with
// whitespace or a missing dot segment after the domain fails.
var correoRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SoloDigitos strips every non-digit rune from s and truncates the
// result to max digits, mirroring what the form inputs do as the
// attendee types.
func SoloDigitos(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// CodigoValido reports whether s is a well-formed 6-digit access
// code. Malformed codes are rejected locally, before any lookup.
func CodigoValido(s string) bool {
	if len(s) != CodigoLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizarAsistente applies the same input normalization the form
// performs: trimmed names and e-mail, digit-only DNI and phone capped
// at their maximum lengths.
func NormalizarAsistente(d *model.DatosAsistente) {
	d.Nombres = strings.TrimSpace(d.Nombres)
	d.Apellidos = strings.TrimSpace(d.Apellidos)
	d.DNI = SoloDigitos(d.DNI, DNILen)
	d.Telefono = SoloDigitos(d.Telefono, TelefonoLen)
	d.Correo = strings.TrimSpace(d.Correo)
}

// ValidarAsistente checks the normalized form data and returns a map
// of field name to user-facing message. An empty map means the form
// passes. Messages match the ones the reservation form shows inline.
func ValidarAsistente(d model.DatosAsistente) map[string]string {
	errs := map[string]string{}

	if d.Nombres == "" {
		errs["nombres"] = "Los nombres son obligatorios"
	}
	if d.Apellidos == "" {
		errs["apellidos"] = "Los apellidos son obligatorios"
	}
	if d.DNI == "" {
		errs["dni"] = "El DNI es obligatorio"
	} else if len(d.DNI) != DNILen {
		errs["dni"] = "El DNI debe tener 8 dígitos"
	}
	if d.Telefono == "" {
		errs["telefono"] = "El teléfono es obligatorio"
	} else if len(d.Telefono) != TelefonoLen {
		errs["telefono"] = "El teléfono debe tener 9 dígitos"
	}
	if d.Correo == "" {
		errs["correo"] = "El correo es obligatorio"
	} else if !correoRe.MatchString(d.Correo) {
		errs["correo"] = "Ingresa un correo válido"
	}
	return errs
}

// PrimeraPalabra returns the first space-separated word of s, used to
// fit a reserving attendee's name on an occupied seat.
func PrimeraPalabra(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
