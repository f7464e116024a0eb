package usecase

import (
	"context"
	"time"

	"portafolio/domain"
)

// UltimosVisitantes es cuántos visitantes recientes muestra la Home.
const UltimosVisitantes = 10

type visitanteUC struct {
	visitanteRepo domain.VisitanteRepo
	timeOut       time.Duration
}

func NewVisitanteUseCase(repo domain.VisitanteRepo, timeOut time.Duration) domain.VisitanteUseCase {
	return &visitanteUC{
		visitanteRepo: repo,
		timeOut:       timeOut,
	}
}

func (vUC *visitanteUC) RegistrarVisitanteUC(ctx context.Context, nombre string) error {
	ctx, cancel := context.WithTimeout(ctx, vUC.timeOut)
	defer cancel()

	return vUC.visitanteRepo.CrearVisitante(ctx, nombre)
}

func (vUC *visitanteUC) ObtenerUltimosVisitantesUC(ctx context.Context) ([]domain.Visitante, error) {
	ctx, cancel := context.WithTimeout(ctx, vUC.timeOut)
	defer cancel()

	return vUC.visitanteRepo.ObtenerUltimosVisitantes(ctx, UltimosVisitantes)
}
