package repository

import (
	"context"
)

// QuestionRepo handles questions, hints and synonyms.
type QuestionRepo struct {
	db DBTX
}

func NewQuestionRepo(db DBTX) *QuestionRepo { return &QuestionRepo{db: db} }

func (r *QuestionRepo) Upsert(ctx context.Context, q Question) error {
	if _, err := r.db.ExecContext(ctx, `
	INSERT INTO questions(id, position, prompt, answer) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 position=excluded.position,
	 prompt=excluded.prompt,
	 answer=excluded.answer;
	`, q.ID, q.Position, q.Prompt, q.Answer); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM question_hints WHERE question_id = ?`, q.ID); err != nil {
		return err
	}
	for i, h := range q.Hints {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO question_hints(question_id, position, hint) VALUES (?, ?, ?)`, q.ID, i, h); err != nil {
			return err
		}
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM question_synonyms WHERE question_id = ?`, q.ID); err != nil {
		return err
	}
	for i, s := range q.Synonyms {
		if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO question_synonyms(question_id, position, synonym) VALUES (?, ?, ?)`, q.ID, i, s); err != nil {
			return err
		}
	}
	return nil
}

// List returns questions ordered by position with hints and synonyms attached.
func (r *QuestionRepo) List(ctx context.Context) ([]Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, position, prompt, answer FROM questions ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	var out []Question
	index := map[string]int{}
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Position, &q.Prompt, &q.Answer); err != nil {
			rows.Close()
			return nil, err
		}
		index[q.ID] = len(out)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	hints, err := r.db.QueryContext(ctx, `SELECT question_id, hint FROM question_hints ORDER BY question_id, position`)
	if err != nil {
		return nil, err
	}
	defer hints.Close()
	for hints.Next() {
		var id, h string
		if err := hints.Scan(&id, &h); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Hints = append(out[i].Hints, h)
		}
	}
	if err := hints.Err(); err != nil {
		return nil, err
	}

	syns, err := r.db.QueryContext(ctx, `SELECT question_id, synonym FROM question_synonyms ORDER BY question_id, position`)
	if err != nil {
		return nil, err
	}
	defer syns.Close()
	for syns.Next() {
		var id, s string
		if err := syns.Scan(&id, &s); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Synonyms = append(out[i].Synonyms, s)
		}
	}
	return out, syns.Err()
}

func (r *QuestionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM questions`)
	return err
}
