package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portafolio/domain"
)

type imagenRepository struct {
	db *sql.DB
}

func NewImagenRepository(database *sql.DB) domain.ImagenRepo {
	return &imagenRepository{
		db: database,
	}
}

func (ir *imagenRepository) VincularImagen(ctx context.Context, publicID string) error {
	query := `INSERT INTO imagenes_galeria (public_id) VALUES ($1);`

	if _, err := ir.db.ExecContext(ctx, query, publicID); err != nil {
		return fmt.Errorf("could not insert imagen: %w", err)
	}

	return nil
}

func (ir *imagenRepository) ObtenerImagenes(ctx context.Context) ([]domain.Imagen, error) {
	query := `
		SELECT public_id
		FROM imagenes_galeria
		ORDER BY fecha_subida DESC;
	`

	rows, err := ir.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get imagenes: %w", err)
	}
	defer rows.Close()

	imagenes := []domain.Imagen{}
	for rows.Next() {
		var imagen domain.Imagen
		if err := rows.Scan(&imagen.PublicID); err != nil {
			return nil, fmt.Errorf("could not scan imagen: %w", err)
		}
		imagenes = append(imagenes, imagen)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return imagenes, nil
}

func (ir *imagenRepository) EliminarImagen(ctx context.Context, publicID string) error {
	query := `DELETE FROM imagenes_galeria WHERE public_id = $1;`

	if _, err := ir.db.ExecContext(ctx, query, publicID); err != nil {
		return fmt.Errorf("could not delete imagen: %w", err)
	}

	return nil
}
