package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalcularEdad(t *testing.T) {
	hoy := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		nombre     string
		nacimiento time.Time
		esperada   int
	}{
		{"cumpleaños ya pasó este año", time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC), 26},
		{"cumpleaños es hoy", time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC), 26},
		{"cumpleaños todavía no llega, mes posterior", time.Date(2000, time.December, 1, 0, 0, 0, 0, time.UTC), 25},
		{"mismo mes, día posterior", time.Date(2000, time.June, 16, 0, 0, 0, 0, time.UTC), 25},
		{"mismo mes, día anterior", time.Date(2000, time.June, 14, 0, 0, 0, 0, time.UTC), 26},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			assert.Equal(t, tt.esperada, CalcularEdad(tt.nacimiento, hoy))
		})
	}
}

func TestEsMayorDeEdad(t *testing.T) {
	hoy := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		nombre     string
		nacimiento time.Time
		esperado   bool
	}{
		{"17 años justos", hoy.AddDate(-18, 0, 1), false},
		{"18 años justos", hoy.AddDate(-18, 0, 0), true},
		{"120 años", hoy.AddDate(-120, 0, 0), true},
		{"121 años", hoy.AddDate(-121, 0, 0), false},
		{"10 años", hoy.AddDate(-10, 0, 0), false},
		{"20 años", hoy.AddDate(-20, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			assert.Equal(t, tt.esperado, EsMayorDeEdad(tt.nacimiento, hoy))
		})
	}
}
