package content

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jask/candlecard/internal/database"
	"github.com/jask/candlecard/internal/database/repository"
)

const (
	settingRecipient    = "recipient"
	settingFinalMessage = "final_message"
)

// Store reads and writes the catalog in the content database.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{DB: db} }

// Seed writes the default catalog when the database holds no questions.
// It is idempotent and safe to run on every startup.
func (s *Store) Seed(ctx context.Context) error {
	existing, err := repository.NewQuestionRepo(s.DB).List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list questions: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	return s.Import(ctx, Default())
}

// Import replaces the stored catalog with c in one transaction.
func (s *Store) Import(ctx context.Context, c Catalog) error {
	c = c.Normalize()
	return database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		qs := repository.NewQuestionRepo(tx)
		ws := repository.NewWordRepo(tx)
		ms := repository.NewMemoryRepo(tx)
		settings := repository.NewSettingRepo(tx)

		if err := qs.DeleteAll(ctx); err != nil {
			return fmt.Errorf("import: clear questions: %w", err)
		}
		if err := ws.DeleteAll(ctx); err != nil {
			return fmt.Errorf("import: clear words: %w", err)
		}
		if err := ms.DeleteAll(ctx); err != nil {
			return fmt.Errorf("import: clear memories: %w", err)
		}
		for i, q := range c.Questions {
			row := repository.Question{
				ID:       rowID("question", strconv.Itoa(i)),
				Position: i,
				Prompt:   q.Prompt,
				Answer:   q.Answer,
				Hints:    q.Hints,
				Synonyms: q.Synonyms,
			}
			if err := qs.Upsert(ctx, row); err != nil {
				return fmt.Errorf("import: question %d: %w", i+1, err)
			}
		}
		for i, w := range c.Words {
			if err := ws.Upsert(ctx, repository.Word{ID: rowID("word", w), Position: i, Word: w}); err != nil {
				return fmt.Errorf("import: word %s: %w", w, err)
			}
		}
		for i, m := range c.Memories {
			row := repository.Memory{
				ID:          m.ID,
				Position:    i,
				Emoji:       m.Emoji,
				Title:       m.Title,
				Description: m.Description,
				Date:        m.Date,
			}
			if err := ms.Upsert(ctx, row); err != nil {
				return fmt.Errorf("import: memory %s: %w", m.ID, err)
			}
		}
		if err := settings.Set(ctx, settingRecipient, c.Recipient); err != nil {
			return fmt.Errorf("import: recipient: %w", err)
		}
		if err := settings.Set(ctx, settingFinalMessage, c.FinalMessage); err != nil {
			return fmt.Errorf("import: final message: %w", err)
		}
		return nil
	})
}

// Load reads the whole catalog, one table per goroutine.
func (s *Store) Load(ctx context.Context) (Catalog, error) {
	var (
		questions []repository.Question
		words     []repository.Word
		memories  []repository.Memory
		recipient string
		message   string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = repository.NewQuestionRepo(s.DB).List(gctx)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		words, err = repository.NewWordRepo(s.DB).List(gctx)
		if err != nil {
			return fmt.Errorf("load words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		memories, err = repository.NewMemoryRepo(s.DB).List(gctx)
		if err != nil {
			return fmt.Errorf("load memories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		settings := repository.NewSettingRepo(s.DB)
		var err error
		if recipient, _, err = settings.Get(gctx, settingRecipient); err != nil {
			return fmt.Errorf("load recipient: %w", err)
		}
		if message, _, err = settings.Get(gctx, settingFinalMessage); err != nil {
			return fmt.Errorf("load final message: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}

	c := Catalog{Recipient: recipient, FinalMessage: message}
	for _, q := range questions {
		c.Questions = append(c.Questions, Question{Prompt: q.Prompt, Answer: q.Answer, Hints: q.Hints, Synonyms: q.Synonyms})
	}
	for _, w := range words {
		c.Words = append(c.Words, w.Word)
	}
	for _, m := range memories {
		c.Memories = append(c.Memories, Memory{ID: m.ID, Emoji: m.Emoji, Title: m.Title, Description: m.Description, Date: m.Date})
	}
	return c, nil
}

// rowID derives a stable id from kind and key. Questions are keyed by position
// because prompts may repeat.
func rowID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+key)).String()
}
