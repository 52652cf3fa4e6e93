package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/candlecard/internal/content"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CANDLECARD_CONFIG", "")
	t.Setenv("CANDLECARD_DATABASE_PATH", filepath.Join(home, "card.db"))
	t.Setenv("CANDLECARD_LOG_PATH", "")
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportSeedsDefaults(t *testing.T) {
	setupEnv(t)
	out, err := execute(t, "content", "export")
	require.NoError(t, err)

	c, err := content.ParsePack(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, content.Default().Words, c.Words)
	require.Len(t, c.Questions, content.QuestionCount)
}

func TestImportThenExport(t *testing.T) {
	home := setupEnv(t)
	pack := content.Default()
	pack.Recipient = "Amara"
	pack.Words = []string{"cake", "gift", "party"}

	path := filepath.Join(home, "pack.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, content.WritePack(f, pack))
	require.NoError(t, f.Close())

	out, err := execute(t, "content", "import", path)
	require.NoError(t, err)
	require.Contains(t, out, "imported 3 questions, 3 words, 3 memories")

	outFile := filepath.Join(home, "export.yaml")
	_, err = execute(t, "content", "export", "-o", outFile)
	require.NoError(t, err)
	got, err := content.ReadPackFile(outFile)
	require.NoError(t, err)
	require.Equal(t, "Amara", got.Recipient)
	require.Equal(t, []string{"CAKE", "GIFT", "PARTY"}, got.Words)
}

func TestImportRejectsInvalidPack(t *testing.T) {
	home := setupEnv(t)
	path := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions: []\nwords: [LOVE]\nmemories: []\n"), 0o600))

	_, err := execute(t, "content", "import", path)
	require.ErrorIs(t, err, content.ErrInvalidPack)
}

func TestGridIsSeeded(t *testing.T) {
	setupEnv(t)
	a, err := execute(t, "grid", "--seed", "9")
	require.NoError(t, err)
	b, err := execute(t, "grid", "--seed", "9")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Contains(t, a, "LOVE")
	require.Contains(t, a, "grid attempt")
}
