package repository

import "context"

// MemoryRepo handles timeline memories.
type MemoryRepo struct {
	db DBTX
}

func NewMemoryRepo(db DBTX) *MemoryRepo { return &MemoryRepo{db: db} }

func (r *MemoryRepo) Upsert(ctx context.Context, m Memory) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO memories(id, position, emoji, title, description, date)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 position=excluded.position,
	 emoji=excluded.emoji,
	 title=excluded.title,
	 description=excluded.description,
	 date=excluded.date;
	`, m.ID, m.Position, m.Emoji, m.Title, m.Description, m.Date)
	return err
}

// List returns memories in reference (chronological) order.
func (r *MemoryRepo) List(ctx context.Context) ([]Memory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, position, emoji, title, description, date FROM memories ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Memory
	for rows.Next() {
		var m Memory
		if err := rows.Scan(&m.ID, &m.Position, &m.Emoji, &m.Title, &m.Description, &m.Date); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MemoryRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM memories`)
	return err
}
