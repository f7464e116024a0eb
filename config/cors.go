package config

import "os"

// GetAllowedOrigins devuelve la lista separada por comas de orígenes
// permitidos para CORS. Por defecto solo el cliente local de Vite.
func GetAllowedOrigins() string {
	v := os.Getenv("ALLOWED_ORIGINS")
	if v == "" {
		return "http://localhost:5173"
	}
	return v
}
