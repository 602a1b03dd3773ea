package utils

import (
	"testing"

	"github.com/figmm/event-seat-reservation/internal/model"
)

func TestSoloDigitos(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"12a34", 8, "1234"},
		{"123456789012", 9, "123456789"},
		{"(01) 234-5678", 9, "012345678"},
		{"abc", 8, ""},
		{"", 8, ""},
	}
	for _, tc := range cases {
		if got := SoloDigitos(tc.in, tc.max); got != tc.want {
			t.Errorf("SoloDigitos(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestCodigoValido(t *testing.T) {
	valid := []string{"123456", "000000", "999999"}
	for _, s := range valid {
		if !CodigoValido(s) {
			t.Errorf("CodigoValido(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "12345", "1234567", "12345a", "12 456", "12345é"}
	for _, s := range invalid {
		if CodigoValido(s) {
			t.Errorf("CodigoValido(%q) = true, want false", s)
		}
	}
}

func TestNormalizarAsistente(t *testing.T) {
	d := model.DatosAsistente{
		Nombres:   "  Juan Carlos ",
		Apellidos: " Pérez ",
		DNI:       "12.345.678",
		Telefono:  "987 654 3210",
		Correo:    " juan@example.com ",
	}
	NormalizarAsistente(&d)

	if d.Nombres != "Juan Carlos" || d.Apellidos != "Pérez" {
		t.Errorf("names not trimmed: %q %q", d.Nombres, d.Apellidos)
	}
	if d.DNI != "12345678" {
		t.Errorf("DNI = %q, want 12345678", d.DNI)
	}
	if d.Telefono != "987654321" {
		t.Errorf("Telefono = %q, want 987654321 (digits capped at 9)", d.Telefono)
	}
	if d.Correo != "juan@example.com" {
		t.Errorf("Correo = %q, want juan@example.com", d.Correo)
	}
}

func TestValidarAsistenteValid(t *testing.T) {
	errs := ValidarAsistente(model.DatosAsistente{
		Nombres:   "Juan Carlos",
		Apellidos: "Pérez García",
		DNI:       "12345678",
		Telefono:  "987654321",
		Correo:    "juan@example.com",
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidarAsistenteRequired(t *testing.T) {
	errs := ValidarAsistente(model.DatosAsistente{})
	want := map[string]string{
		"nombres":   "Los nombres son obligatorios",
		"apellidos": "Los apellidos son obligatorios",
		"dni":       "El DNI es obligatorio",
		"telefono":  "El teléfono es obligatorio",
		"correo":    "El correo es obligatorio",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%q] = %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidarAsistenteLengths(t *testing.T) {
	errs := ValidarAsistente(model.DatosAsistente{
		Nombres:   "Juan",
		Apellidos: "Pérez",
		DNI:       "1234567",
		Telefono:  "98765432",
		Correo:    "juan@example.com",
	})
	if errs["dni"] != "El DNI debe tener 8 dígitos" {
		t.Errorf("dni error = %q", errs["dni"])
	}
	if errs["telefono"] != "El teléfono debe tener 9 dígitos" {
		t.Errorf("telefono error = %q", errs["telefono"])
	}
}

func TestValidarAsistenteCorreo(t *testing.T) {
	base := model.DatosAsistente{
		Nombres:   "Juan",
		Apellidos: "Pérez",
		DNI:       "12345678",
		Telefono:  "987654321",
	}

	invalid := []string{"a@b", "no-arroba.com", "a b@c.com", "a@b .com"}
	for _, correo := range invalid {
		d := base
		d.Correo = correo
		if errs := ValidarAsistente(d); errs["correo"] != "Ingresa un correo válido" {
			t.Errorf("correo %q: got %q, want validation error", correo, errs["correo"])
		}
	}

	d := base
	d.Correo = "a@b.com"
	if errs := ValidarAsistente(d); len(errs) != 0 {
		t.Errorf("correo a@b.com should pass, got %v", errs)
	}
}

func TestPrimeraPalabra(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Juan Carlos", "Juan"},
		{" María Elena ", "María"},
		{"Ana", "Ana"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PrimeraPalabra(tc.in); got != tc.want {
			t.Errorf("PrimeraPalabra(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
