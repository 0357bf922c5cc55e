package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"lisvet-landing/internal/domain/appointments"
)

// CitasRepo es el backend opcional en Postgres (DB_DSN seteado). Tabla:
//
//	CREATE TABLE citas (
//	    id        BIGINT PRIMARY KEY,
//	    nombre    TEXT NOT NULL,
//	    email     TEXT NOT NULL,
//	    telefono  TEXT NOT NULL,
//	    mascota   TEXT NOT NULL,
//	    servicio  TEXT NOT NULL,
//	    mensaje   TEXT NOT NULL DEFAULT '',
//	    fecha     TEXT NOT NULL,
//	    posicion  BIGSERIAL
//	);
//
// posicion preserva el orden de inserción, que es el único orden que la
// página muestra.
type CitasRepo struct {
	db *sql.DB
}

func NewCitasRepo(db *sql.DB) *CitasRepo {
	return &CitasRepo{db: db}
}

func (r *CitasRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, email, telefono, mascota, servicio, mensaje, fecha
		FROM citas
		ORDER BY posicion ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		var servicio string
		if err := rows.Scan(
			&a.ID,
			&a.Nombre,
			&a.Email,
			&a.Telefono,
			&a.Mascota,
			&servicio,
			&a.Mensaje,
			&a.Fecha,
		); err != nil {
			return nil, err
		}
		a.Servicio = appointments.ServiceCode(servicio)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *CitasRepo) Add(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO citas (id, nombre, email, telefono, mascota, servicio, mensaje, fecha)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.Nombre,
		a.Email,
		a.Telefono,
		a.Mascota,
		string(a.Servicio),
		a.Mensaje,
		a.Fecha,
	)
	if err != nil && isUniqueViolation(err) {
		return appointments.ErrDuplicateID
	}
	return err
}

func (r *CitasRepo) Remove(ctx context.Context, id int64) error {
	// Borrar un id inexistente no es error (mismo contrato que el resto
	// de los backends).
	_, err := r.db.ExecContext(ctx, `DELETE FROM citas WHERE id = $1`, id)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
