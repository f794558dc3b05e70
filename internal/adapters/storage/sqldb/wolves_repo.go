package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"wolfpack/internal/domain/wolves"
)

type WolvesRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewWolvesRepo(db *sql.DB, d Dialect) *WolvesRepo {
	return &WolvesRepo{db: db, dialect: d}
}

var _ wolves.Store = (*WolvesRepo)(nil)

const wolfColumns = `id, name, gender, birthday, created_at, updated_at`

func (r *WolvesRepo) List(ctx context.Context) ([]wolves.Wolf, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+wolfColumns+`
		FROM wolves
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]wolves.Wolf, 0)
	for rows.Next() {
		w, err := scanWolf(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WolvesRepo) Get(ctx context.Context, id int) (wolves.Wolf, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT `+wolfColumns+`
		FROM wolves
		WHERE id = $1
	`), id)

	w, err := scanWolf(row)
	if errors.Is(err, sql.ErrNoRows) {
		return wolves.Wolf{}, wolves.ErrNotFound
	}
	return w, err
}

func (r *WolvesRepo) Insert(ctx context.Context, w wolves.Wolf) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		INSERT INTO wolves (name, gender, birthday, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`),
		w.Name,
		string(w.Gender),
		dateArg(w.Birthday),
		timeArg(w.CreatedAt),
		timeArg(w.UpdatedAt),
	).Scan(&id)
	return id, err
}

func (r *WolvesRepo) Update(ctx context.Context, w wolves.Wolf) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE wolves
		SET
			name = $2,
			gender = $3,
			birthday = $4,
			updated_at = $5
		WHERE id = $1
	`),
		w.ID,
		w.Name,
		string(w.Gender),
		dateArg(w.Birthday),
		timeArg(w.UpdatedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return wolves.ErrNotFound
	}
	return nil
}

// Delete borra el lobo y sus membresías en la misma transacción.
func (r *WolvesRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM pack_wolves WHERE wolf_id = $1`), id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM wolves WHERE id = $1`), id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return wolves.ErrNotFound
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWolf(s rowScanner) (wolves.Wolf, error) {
	var (
		w         wolves.Wolf
		gender    string
		bday      dbTime
		createdAt dbTime
		updatedAt dbTime
	)
	if err := s.Scan(&w.ID, &w.Name, &gender, &bday, &createdAt, &updatedAt); err != nil {
		return wolves.Wolf{}, err
	}
	w.Gender = wolves.Gender(gender)
	w.Birthday = birthday(bday)
	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time
	return w, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
