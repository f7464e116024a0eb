package usecase

import (
	"context"
	"time"

	"portafolio/domain"
)

type imagenUC struct {
	imagenRepo domain.ImagenRepo
	mediaRepo  domain.MediaRepo
	timeOut    time.Duration
}

func NewImagenUseCase(repo domain.ImagenRepo, media domain.MediaRepo, timeOut time.Duration) domain.ImagenUseCase {
	return &imagenUC{
		imagenRepo: repo,
		mediaRepo:  media,
		timeOut:    timeOut,
	}
}

func (iUC *imagenUC) VincularImagenUC(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, iUC.timeOut)
	defer cancel()

	return iUC.imagenRepo.VincularImagen(ctx, publicID)
}

func (iUC *imagenUC) ObtenerImagenesUC(ctx context.Context) ([]domain.Imagen, error) {
	ctx, cancel := context.WithTimeout(ctx, iUC.timeOut)
	defer cancel()

	return iUC.imagenRepo.ObtenerImagenes(ctx)
}

// EliminarImagenUC destruye primero el recurso en el proveedor y después
// borra la referencia local, en ese orden; si el proveedor falla la fila
// queda para reintentar el borrado.
func (iUC *imagenUC) EliminarImagenUC(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, iUC.timeOut)
	defer cancel()

	if err := iUC.mediaRepo.DestruirImagen(ctx, publicID); err != nil {
		return err
	}

	return iUC.imagenRepo.EliminarImagen(ctx, publicID)
}
