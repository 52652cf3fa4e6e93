package content

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/candlecard/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "content.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestSeedThenLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s := newTestStore(t)

	require.NoError(t, s.Seed(ctx))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(Default().Normalize(), got.Normalize()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	custom := Default()
	custom.Words = []string{"CAKE"}
	require.NoError(t, s.Import(ctx, custom))
	require.NoError(t, s.Seed(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"CAKE"}, got.Words)
}

func TestImportReplacesCatalog(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Seed(ctx))

	next := Default()
	next.Recipient = "Amara"
	next.Questions[0].Prompt = "Where was our first trip?"
	next.Questions[0].Synonyms = nil
	next.Memories[0], next.Memories[2] = next.Memories[2], next.Memories[0]
	require.NoError(t, s.Import(ctx, next))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Amara", got.Recipient)
	require.Len(t, got.Questions, 3)
	require.Equal(t, "Where was our first trip?", got.Questions[0].Prompt)
	require.Empty(t, got.Questions[0].Synonyms)
	require.Equal(t, "love", got.Memories[0].ID)
	require.Equal(t, "text", got.Memories[2].ID)
}

func TestImportKeepsRepeatedPrompts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	pack := Default()
	pack.Questions[1].Prompt = "Guess?"
	pack.Questions[2].Prompt = "Guess?"
	require.NoError(t, pack.Validate(12))
	require.NoError(t, s.Import(ctx, pack))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Questions, QuestionCount)
	require.NoError(t, got.Validate(12))
	require.Equal(t, pack.Questions[1].Answer, got.Questions[1].Answer)
	require.Equal(t, pack.Questions[2].Answer, got.Questions[2].Answer)
}
