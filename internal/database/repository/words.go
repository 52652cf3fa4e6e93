package repository

import "context"

// WordRepo handles word-search targets.
type WordRepo struct {
	db DBTX
}

func NewWordRepo(db DBTX) *WordRepo { return &WordRepo{db: db} }

func (r *WordRepo) Upsert(ctx context.Context, w Word) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO words(id, position, word) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET position=excluded.position, word=excluded.word;
	`, w.ID, w.Position, w.Word)
	return err
}

func (r *WordRepo) List(ctx context.Context) ([]Word, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, position, word FROM words ORDER BY position, word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.ID, &w.Position, &w.Word); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WordRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM words`)
	return err
}
