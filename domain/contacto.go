package domain

import (
	"context"
	"time"
)

type Contacto struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	Telefono        string    `json:"telefono"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Mensaje         string    `json:"mensaje"`
	FechaEnvio      time.Time `json:"fecha_envio"`
}

// ContactoPayload es el cuerpo del POST del formulario público. El token
// de captcha viaja junto a los campos pero nunca se persiste.
type ContactoPayload struct {
	Nombre          string `json:"nombre" valid:"required~El nombre es obligatorio"`
	Email           string `json:"email" valid:"required~El email es obligatorio,email~Email inválido"`
	Telefono        string `json:"telefono" valid:"required~El teléfono es obligatorio"`
	FechaNacimiento string `json:"fecha_nacimiento" valid:"required~La fecha de nacimiento es obligatoria"`
	Mensaje         string `json:"mensaje"`
	CaptchaToken    string `json:"captchaToken"`
}

// ContactoActualizacion reemplaza la fila completa; el panel de administración
// no reenvía captcha.
type ContactoActualizacion struct {
	Nombre          string `json:"nombre" valid:"required~El nombre es obligatorio"`
	Email           string `json:"email" valid:"required~El email es obligatorio,email~Email inválido"`
	Telefono        string `json:"telefono" valid:"required~El teléfono es obligatorio"`
	FechaNacimiento string `json:"fecha_nacimiento" valid:"required~La fecha de nacimiento es obligatoria"`
	Mensaje         string `json:"mensaje"`
}

type ContactoRepo interface {
	CrearContacto(ctx context.Context, contacto *Contacto) error
	ObtenerContactos(ctx context.Context) ([]Contacto, error)
	ActualizarContacto(ctx context.Context, contacto *Contacto) error
	EliminarContacto(ctx context.Context, id int) error
}

type ContactoUseCase interface {
	EnviarContactoUC(ctx context.Context, payload *ContactoPayload) error
	ObtenerContactosUC(ctx context.Context) ([]Contacto, error)
	ActualizarContactoUC(ctx context.Context, id int, payload *ContactoActualizacion) error
	EliminarContactoUC(ctx context.Context, id int) error
}
