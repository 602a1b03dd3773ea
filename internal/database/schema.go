package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Venue seeding constants: 34 tables, the first 28 on the printed
// floor plan and the rest overflow capacity, 10 seats each.
const (
	seedMesas           = 34
	seedAsientosPorMesa = 10
)

// schemaStatements creates the four event tables. reserva.usuario_id
// deliberately carries no uniqueness constraint: at-most-one
// reservation per user is a soft invariant and reads order by
// created_at to tolerate anomalies.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuario (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		codigo        CHAR(6) NOT NULL UNIQUE,
		nombres       VARCHAR(120) NOT NULL DEFAULT '',
		apellidos     VARCHAR(120) NOT NULL DEFAULT '',
		dni           VARCHAR(8) NOT NULL DEFAULT '',
		telefono      VARCHAR(9) NOT NULL DEFAULT '',
		correo        VARCHAR(255) NOT NULL DEFAULT '',
		reservado     BOOLEAN NOT NULL DEFAULT FALSE,
		fecha_reserva DATETIME NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS mesa (
		id        BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		numero    INT UNSIGNED NOT NULL UNIQUE,
		nombre    VARCHAR(60) NOT NULL,
		capacidad INT UNSIGNED NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS asiento (
		id       BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		numero   INT UNSIGNED NOT NULL,
		mesa_id  BIGINT UNSIGNED NOT NULL,
		posicion INT UNSIGNED NOT NULL,
		ocupado  BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT fk_asiento_mesa FOREIGN KEY (mesa_id) REFERENCES mesa(id)
	)`,
	`CREATE TABLE IF NOT EXISTS reserva (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		usuario_id BIGINT UNSIGNED NOT NULL,
		mesa_id    BIGINT UNSIGNED NOT NULL,
		asiento_id BIGINT UNSIGNED NOT NULL,
		estado     VARCHAR(20) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_reserva_usuario FOREIGN KEY (usuario_id) REFERENCES usuario(id),
		CONSTRAINT fk_reserva_mesa FOREIGN KEY (mesa_id) REFERENCES mesa(id),
		CONSTRAINT fk_reserva_asiento FOREIGN KEY (asiento_id) REFERENCES asiento(id)
	)`,
}

// EnsureSchema creates the tables when missing and seeds the venue
// (mesas and asientos) on an empty database. Usuario rows are created
// out of band by the organizer and are never seeded here.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return seedVenue(ctx, db)
}

func seedVenue(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mesa`).Scan(&count); err != nil {
		return fmt.Errorf("count mesas: %w", err)
	}
	if count > 0 {
		return nil
	}

	asientoNumero := 0
	for numero := 1; numero <= seedMesas; numero++ {
		res, err := db.ExecContext(ctx,
			`INSERT INTO mesa (numero, nombre, capacidad) VALUES (?, ?, ?)`,
			numero, fmt.Sprintf("Mesa %d", numero), seedAsientosPorMesa)
		if err != nil {
			return fmt.Errorf("seed mesa %d: %w", numero, err)
		}
		mesaID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for pos := 0; pos < seedAsientosPorMesa; pos++ {
			asientoNumero++
			if _, err := db.ExecContext(ctx,
				`INSERT INTO asiento (numero, mesa_id, posicion) VALUES (?, ?, ?)`,
				asientoNumero, mesaID, pos); err != nil {
				return fmt.Errorf("seed asiento %d: %w", asientoNumero, err)
			}
		}
	}
	return nil
}
