package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func GetDatabaseURL() string {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), sslmode)
	return dsn
}

func BootDB() (*sql.DB, error) {
	db, err := sql.Open("pgx", GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	return db, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS contactos (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		telefono VARCHAR(10) NOT NULL,
		fecha_nacimiento DATE NOT NULL,
		mensaje TEXT,
		fecha_envio TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS visitantes_home (
		id SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		fecha_visita TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS imagenes_galeria (
		public_id VARCHAR(255) PRIMARY KEY,
		fecha_subida TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
