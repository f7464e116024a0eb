package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portafolio/domain"
)

type visitanteRepository struct {
	db *sql.DB
}

func NewVisitanteRepository(database *sql.DB) domain.VisitanteRepo {
	return &visitanteRepository{
		db: database,
	}
}

func (vr *visitanteRepository) CrearVisitante(ctx context.Context, nombre string) error {
	query := `INSERT INTO visitantes_home (nombre) VALUES ($1);`

	if _, err := vr.db.ExecContext(ctx, query, nombre); err != nil {
		return fmt.Errorf("could not insert visitante: %w", err)
	}

	return nil
}

func (vr *visitanteRepository) ObtenerUltimosVisitantes(ctx context.Context, limite int) ([]domain.Visitante, error) {
	query := `
		SELECT id, nombre, fecha_visita
		FROM visitantes_home
		ORDER BY fecha_visita DESC
		LIMIT $1;
	`

	rows, err := vr.db.QueryContext(ctx, query, limite)
	if err != nil {
		return nil, fmt.Errorf("could not get visitantes: %w", err)
	}
	defer rows.Close()

	visitantes := []domain.Visitante{}
	for rows.Next() {
		var visitante domain.Visitante
		if err := rows.Scan(&visitante.ID, &visitante.Nombre, &visitante.FechaVisita); err != nil {
			return nil, fmt.Errorf("could not scan visitante: %w", err)
		}
		visitantes = append(visitantes, visitante)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return visitantes, nil
}
