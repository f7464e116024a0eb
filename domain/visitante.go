package domain

import (
	"context"
	"time"
)

type Visitante struct {
	ID          int       `json:"id"`
	Nombre      string    `json:"nombre"`
	FechaVisita time.Time `json:"fecha_visita"`
}

type VisitantePayload struct {
	Nombre string `json:"nombre" valid:"required~El nombre es obligatorio"`
}

type VisitanteRepo interface {
	CrearVisitante(ctx context.Context, nombre string) error
	ObtenerUltimosVisitantes(ctx context.Context, limite int) ([]Visitante, error)
}

type VisitanteUseCase interface {
	RegistrarVisitanteUC(ctx context.Context, nombre string) error
	ObtenerUltimosVisitantesUC(ctx context.Context) ([]Visitante, error)
}
