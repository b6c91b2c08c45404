package sqlite

import (
	"context"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
)

type charactersRepo struct {
	s *Store
}

const characterColumns = `id, name, last_name, created_by, created_at, updated_at`

func scanCharacter(row interface{ Scan(...any) error }) (domain.Character, error) {
	var (
		c                domain.Character
		created, updated int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.LastName, &c.CreatedBy, &created, &updated); err != nil {
		return domain.Character{}, mapNotFound(err)
	}
	c.CreatedAt = fromUnix(created)
	c.UpdatedAt = fromUnix(updated)
	return c, nil
}

func (r *charactersRepo) CreateCharacter(ctx context.Context, c domain.Character) (domain.Character, error) {
	now := unix(r.s.now())
	res, err := r.s.db.ExecContext(ctx,
		`INSERT INTO characters (name, last_name, created_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.LastName, c.CreatedBy, now, now,
	)
	if err != nil {
		return domain.Character{}, err
	}

	if c.ID, err = res.LastInsertId(); err != nil {
		return domain.Character{}, err
	}
	c.CreatedAt = fromUnix(now)
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

func (r *charactersRepo) GetCharacter(ctx context.Context, id int64) (domain.Character, error) {
	return scanCharacter(r.s.db.QueryRowContext(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = ?`, id))
}

func (r *charactersRepo) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *charactersRepo) UpdateCharacter(ctx context.Context, c domain.Character) (domain.Character, error) {
	err := affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, last_name = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.LastName, unix(r.s.now()), c.ID,
	))
	if err != nil {
		return domain.Character{}, err
	}
	return r.GetCharacter(ctx, c.ID)
}

func (r *charactersRepo) DeleteCharacter(ctx context.Context, id int64) error {
	return affectedOne(r.s.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id))
}
