package domain

import "time"

const (
	EdadMinima = 18
	EdadMaxima = 120
)

// CalcularEdad devuelve la edad en años cumplidos entre nacimiento y hoy.
// Si el cumpleaños de este año todavía no pasó, se resta uno a la
// diferencia de años.
func CalcularEdad(nacimiento, hoy time.Time) int {
	edad := hoy.Year() - nacimiento.Year()
	if hoy.Month() < nacimiento.Month() ||
		(hoy.Month() == nacimiento.Month() && hoy.Day() < nacimiento.Day()) {
		edad--
	}
	return edad
}

func EsMayorDeEdad(nacimiento, hoy time.Time) bool {
	edad := CalcularEdad(nacimiento, hoy)
	return edad >= EdadMinima && edad <= EdadMaxima
}
