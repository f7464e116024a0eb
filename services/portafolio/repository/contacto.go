package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portafolio/domain"
)

type contactoRepository struct {
	db *sql.DB
}

func NewContactoRepository(database *sql.DB) domain.ContactoRepo {
	return &contactoRepository{
		db: database,
	}
}

func (cr *contactoRepository) CrearContacto(ctx context.Context, contacto *domain.Contacto) error {
	query := `
		INSERT INTO contactos (nombre, email, telefono, fecha_nacimiento, mensaje)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, fecha_envio;
	`

	err := cr.db.QueryRowContext(ctx, query,
		contacto.Nombre, contacto.Email, contacto.Telefono, contacto.FechaNacimiento, contacto.Mensaje,
	).Scan(&contacto.ID, &contacto.FechaEnvio)
	if err != nil {
		return fmt.Errorf("could not insert contacto: %w", err)
	}

	return nil
}

func (cr *contactoRepository) ObtenerContactos(ctx context.Context) ([]domain.Contacto, error) {
	query := `
		SELECT id, nombre, email, telefono, fecha_nacimiento, mensaje, fecha_envio
		FROM contactos
		ORDER BY id DESC;
	`

	rows, err := cr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not get contactos: %w", err)
	}
	defer rows.Close()

	contactos := []domain.Contacto{}
	for rows.Next() {
		var contacto domain.Contacto
		err := rows.Scan(&contacto.ID, &contacto.Nombre, &contacto.Email, &contacto.Telefono,
			&contacto.FechaNacimiento, &contacto.Mensaje, &contacto.FechaEnvio)
		if err != nil {
			return nil, fmt.Errorf("could not scan contacto: %w", err)
		}
		contactos = append(contactos, contacto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return contactos, nil
}

// ActualizarContacto reemplaza los cinco campos de contenido. Si el id no
// existe la sentencia no afecta filas y no es un error.
func (cr *contactoRepository) ActualizarContacto(ctx context.Context, contacto *domain.Contacto) error {
	query := `
		UPDATE contactos
		SET nombre = $1, email = $2, telefono = $3, fecha_nacimiento = $4, mensaje = $5
		WHERE id = $6;
	`

	_, err := cr.db.ExecContext(ctx, query,
		contacto.Nombre, contacto.Email, contacto.Telefono, contacto.FechaNacimiento, contacto.Mensaje, contacto.ID)
	if err != nil {
		return fmt.Errorf("could not update contacto: %w", err)
	}

	return nil
}

func (cr *contactoRepository) EliminarContacto(ctx context.Context, id int) error {
	query := `DELETE FROM contactos WHERE id = $1;`

	_, err := cr.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete contacto: %w", err)
	}

	return nil
}
