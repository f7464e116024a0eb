package usecase

import (
	"strings"

	"portafolio/domain"
)

// Helpers puros de presentación para el panel de administración. El
// cliente que se despacha hoy pagina sobre la lista completa, pero el
// algoritmo vive acá para que sea comprobable del lado del servidor.

// FiltrarContactos filtra por subcadena (sin distinguir mayúsculas) sobre
// nombre o email. Término vacío devuelve todo.
func FiltrarContactos(contactos []domain.Contacto, termino string) []domain.Contacto {
	if termino == "" {
		return contactos
	}

	termino = strings.ToLower(termino)
	filtrados := []domain.Contacto{}
	for _, c := range contactos {
		if strings.Contains(strings.ToLower(c.Nombre), termino) ||
			strings.Contains(strings.ToLower(c.Email), termino) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

// TotalPaginas es la división redondeada hacia arriba.
func TotalPaginas(cantidad, porPagina int) int {
	if porPagina < 1 {
		return 0
	}
	return (cantidad + porPagina - 1) / porPagina
}

// Pagina devuelve la ventana 1-based de una página; fuera de rango da
// una página vacía.
func Pagina(contactos []domain.Contacto, pagina, porPagina int) []domain.Contacto {
	if pagina < 1 || porPagina < 1 {
		return []domain.Contacto{}
	}

	inicio := (pagina - 1) * porPagina
	if inicio >= len(contactos) {
		return []domain.Contacto{}
	}

	fin := inicio + porPagina
	if fin > len(contactos) {
		fin = len(contactos)
	}
	return contactos[inicio:fin]
}

// PaginasVisibles arma la ventana de 3 páginas del paginador, anclada a
// [1, total]: arranca una página antes de la actual y se extiende hacia
// la izquierda antes de truncarse a la derecha.
func PaginasVisibles(actual, total int) []int {
	if total < 1 {
		return []int{}
	}

	inicio := actual - 1
	if inicio < 1 {
		inicio = 1
	}

	fin := inicio + 2
	if fin > total {
		fin = total
	}

	if fin-inicio < 2 {
		inicio = fin - 2
		if inicio < 1 {
			inicio = 1
		}
	}

	paginas := make([]int, 0, 3)
	for p := inicio; p <= fin; p++ {
		paginas = append(paginas, p)
	}
	return paginas
}
