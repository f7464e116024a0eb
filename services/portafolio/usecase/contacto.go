package usecase

import (
	"context"
	"time"

	"portafolio/domain"
)

// FormatoFecha es el formato de fecha que envía el formulario.
const FormatoFecha = "2006-01-02"

type contactoUC struct {
	contactoRepo domain.ContactoRepo
	verifier     domain.CaptchaVerifier
	timeOut      time.Duration
}

func NewContactoUseCase(repo domain.ContactoRepo, verifier domain.CaptchaVerifier, timeOut time.Duration) domain.ContactoUseCase {
	return &contactoUC{
		contactoRepo: repo,
		verifier:     verifier,
		timeOut:      timeOut,
	}
}

// EnviarContactoUC corre las validaciones en orden y corta en la primera
// que falla: edad, teléfono, presencia del token, veredicto del captcha y
// recién entonces persiste. Nunca queda un registro a medias.
func (cUC *contactoUC) EnviarContactoUC(ctx context.Context, payload *domain.ContactoPayload) error {
	ctx, cancel := context.WithTimeout(ctx, cUC.timeOut)
	defer cancel()

	nacimiento, err := time.Parse(FormatoFecha, payload.FechaNacimiento)
	if err != nil {
		return domain.ErrFechaInvalida
	}

	if !domain.EsMayorDeEdad(nacimiento, time.Now()) {
		return domain.ErrEdadInvalida
	}

	// El cliente filtra los no-dígitos al teclear, pero acá no se confía
	// en eso.
	if !esTelefonoValido(payload.Telefono) {
		return domain.ErrTelefonoInvalido
	}

	if payload.CaptchaToken == "" {
		return domain.ErrCaptchaRequerido
	}

	valido, err := cUC.verifier.Verificar(ctx, payload.CaptchaToken)
	if err != nil {
		return err
	}
	if !valido {
		return domain.ErrCaptchaInvalido
	}

	contacto := &domain.Contacto{
		Nombre:          payload.Nombre,
		Email:           payload.Email,
		Telefono:        payload.Telefono,
		FechaNacimiento: nacimiento,
		Mensaje:         payload.Mensaje,
	}

	return cUC.contactoRepo.CrearContacto(ctx, contacto)
}

func (cUC *contactoUC) ObtenerContactosUC(ctx context.Context) ([]domain.Contacto, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.timeOut)
	defer cancel()

	return cUC.contactoRepo.ObtenerContactos(ctx)
}

// ActualizarContactoUC reemplaza la fila completa. El panel de
// administración es la única superficie que llama acá y ya filtra el
// teléfono del lado del cliente; el servidor no re-valida edad ni captcha
// en la actualización.
func (cUC *contactoUC) ActualizarContactoUC(ctx context.Context, id int, payload *domain.ContactoActualizacion) error {
	ctx, cancel := context.WithTimeout(ctx, cUC.timeOut)
	defer cancel()

	nacimiento, err := time.Parse(FormatoFecha, payload.FechaNacimiento)
	if err != nil {
		return domain.ErrFechaInvalida
	}

	contacto := &domain.Contacto{
		ID:              id,
		Nombre:          payload.Nombre,
		Email:           payload.Email,
		Telefono:        payload.Telefono,
		FechaNacimiento: nacimiento,
		Mensaje:         payload.Mensaje,
	}

	return cUC.contactoRepo.ActualizarContacto(ctx, contacto)
}

func (cUC *contactoUC) EliminarContactoUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, cUC.timeOut)
	defer cancel()

	return cUC.contactoRepo.EliminarContacto(ctx, id)
}

func esTelefonoValido(telefono string) bool {
	if len(telefono) != 10 {
		return false
	}
	for _, r := range telefono {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
