package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
)

type PacksRepo struct {
	db      *sql.DB
	dialect Dialect
}

func NewPacksRepo(db *sql.DB, d Dialect) *PacksRepo {
	return &PacksRepo{db: db, dialect: d}
}

var _ packs.Store = (*PacksRepo)(nil)

func (r *PacksRepo) List(ctx context.Context) ([]packs.Pack, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, lat, lng, created_at, updated_at
		FROM packs
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]packs.Pack, 0)
	for rows.Next() {
		p, err := scanPack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PacksRepo) Get(ctx context.Context, id int) (packs.Pack, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		SELECT id, name, lat, lng, created_at, updated_at
		FROM packs
		WHERE id = $1
	`), id)

	p, err := scanPack(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return packs.Pack{}, packs.ErrNotFound
		}
		return packs.Pack{}, err
	}

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(`
		SELECT w.id, w.name, w.gender, w.birthday, w.created_at, w.updated_at
		FROM pack_wolves pw
		JOIN wolves w ON w.id = pw.wolf_id
		WHERE pw.pack_id = $1
		ORDER BY pw.added_at ASC, w.id ASC
	`), id)
	if err != nil {
		return packs.Pack{}, err
	}
	defer rows.Close()

	p.Wolves = make([]wolves.Wolf, 0)
	for rows.Next() {
		w, err := scanWolf(rows)
		if err != nil {
			return packs.Pack{}, err
		}
		p.Wolves = append(p.Wolves, w)
	}
	p.WolvesLoaded = true
	return p, rows.Err()
}

func (r *PacksRepo) Insert(ctx context.Context, p packs.Pack) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(`
		INSERT INTO packs (name, lat, lng, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`),
		p.Name,
		p.Latitude,
		p.Longitude,
		timeArg(p.CreatedAt),
		timeArg(p.UpdatedAt),
	).Scan(&id)
	return id, err
}

func (r *PacksRepo) Update(ctx context.Context, p packs.Pack) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		UPDATE packs
		SET
			name = $2,
			lat = $3,
			lng = $4,
			updated_at = $5
		WHERE id = $1
	`),
		p.ID,
		p.Name,
		p.Latitude,
		p.Longitude,
		timeArg(p.UpdatedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return packs.ErrNotFound
	}
	return nil
}

func (r *PacksRepo) Delete(ctx context.Context, id int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM pack_wolves WHERE pack_id = $1`), id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM packs WHERE id = $1`), id)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return packs.ErrNotFound
		}
		return nil
	})
}

// AddMember usa ON CONFLICT DO NOTHING (postgres y sqlite) para detectar duplicados.
func (r *PacksRepo) AddMember(ctx context.Context, packID, wolfID int, at time.Time) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		INSERT INTO pack_wolves (pack_id, wolf_id, added_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (pack_id, wolf_id) DO NOTHING
	`), packID, wolfID, timeArg(at))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return packs.ErrAlreadyMember
	}
	return nil
}

func (r *PacksRepo) RemoveMember(ctx context.Context, packID, wolfID int) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
		DELETE FROM pack_wolves
		WHERE pack_id = $1 AND wolf_id = $2
	`), packID, wolfID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return packs.ErrNotMember
	}
	return nil
}

func scanPack(s rowScanner) (packs.Pack, error) {
	var (
		p         packs.Pack
		createdAt dbTime
		updatedAt dbTime
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Latitude, &p.Longitude, &createdAt, &updatedAt); err != nil {
		return packs.Pack{}, err
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}
