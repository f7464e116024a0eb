package domain

import "context"

// Imagen es solo la referencia al recurso en el proveedor de medios; el
// binario vive en Cloudinary y la galería únicamente guarda su public_id.
type Imagen struct {
	PublicID string `json:"public_id"`
}

type ImagenPayload struct {
	PublicID string `json:"public_id" valid:"required~El public_id es obligatorio"`
}

type ImagenRepo interface {
	VincularImagen(ctx context.Context, publicID string) error
	ObtenerImagenes(ctx context.Context) ([]Imagen, error)
	EliminarImagen(ctx context.Context, publicID string) error
}

// MediaRepo destruye el recurso en el proveedor de medios externo.
type MediaRepo interface {
	DestruirImagen(ctx context.Context, publicID string) error
}

type ImagenUseCase interface {
	VincularImagenUC(ctx context.Context, publicID string) error
	ObtenerImagenesUC(ctx context.Context) ([]Imagen, error)
	EliminarImagenUC(ctx context.Context, publicID string) error
}
