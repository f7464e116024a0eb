package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portafolio/domain"
)

func contactosDePrueba() []domain.Contacto {
	return []domain.Contacto{
		{ID: 5, Nombre: "Carla Gómez", Email: "carla@example.com"},
		{ID: 4, Nombre: "Bruno Díaz", Email: "bruno@test.com"},
		{ID: 3, Nombre: "Ana Pérez", Email: "ana@example.com"},
		{ID: 2, Nombre: "Diego Bruno", Email: "diego@example.com"},
		{ID: 1, Nombre: "Elena Ruiz", Email: "elena@test.com"},
	}
}

func TestFiltrarContactos(t *testing.T) {
	contactos := contactosDePrueba()

	t.Run("término vacío devuelve todo", func(t *testing.T) {
		assert.Len(t, FiltrarContactos(contactos, ""), 5)
	})

	t.Run("coincide por nombre sin distinguir mayúsculas", func(t *testing.T) {
		filtrados := FiltrarContactos(contactos, "BRUNO")
		assert.Len(t, filtrados, 2)
		assert.Equal(t, 4, filtrados[0].ID)
		assert.Equal(t, 2, filtrados[1].ID)
	})

	t.Run("coincide por email", func(t *testing.T) {
		filtrados := FiltrarContactos(contactos, "test.com")
		assert.Len(t, filtrados, 2)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		assert.Empty(t, FiltrarContactos(contactos, "zzz"))
	})
}

func TestTotalPaginas(t *testing.T) {
	assert.Equal(t, 0, TotalPaginas(0, 5))
	assert.Equal(t, 1, TotalPaginas(5, 5))
	assert.Equal(t, 2, TotalPaginas(6, 5))
	assert.Equal(t, 3, TotalPaginas(11, 5))
	assert.Equal(t, 0, TotalPaginas(10, 0))
}

func TestPagina(t *testing.T) {
	contactos := contactosDePrueba()

	t.Run("primera página completa", func(t *testing.T) {
		pagina := Pagina(contactos, 1, 2)
		assert.Len(t, pagina, 2)
		assert.Equal(t, 5, pagina[0].ID)
	})

	t.Run("última página parcial", func(t *testing.T) {
		pagina := Pagina(contactos, 3, 2)
		assert.Len(t, pagina, 1)
		assert.Equal(t, 1, pagina[0].ID)
	})

	t.Run("fuera de rango", func(t *testing.T) {
		assert.Empty(t, Pagina(contactos, 4, 2))
		assert.Empty(t, Pagina(contactos, 0, 2))
	})
}

func TestPaginasVisibles(t *testing.T) {
	tests := []struct {
		nombre   string
		actual   int
		total    int
		esperado []int
	}{
		{"sin páginas", 1, 0, []int{}},
		{"una sola página", 1, 1, []int{1}},
		{"dos páginas", 1, 2, []int{1, 2}},
		{"al principio", 1, 10, []int{1, 2, 3}},
		{"segunda página", 2, 10, []int{1, 2, 3}},
		{"en el medio", 5, 10, []int{4, 5, 6}},
		{"penúltima", 9, 10, []int{8, 9, 10}},
		{"al final se extiende a la izquierda", 10, 10, []int{8, 9, 10}},
		{"tres páginas desde la última", 3, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			assert.Equal(t, tt.esperado, PaginasVisibles(tt.actual, tt.total))
		})
	}
}
