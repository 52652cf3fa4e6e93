package content

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePack(t *testing.T) {
	src := `
recipient: Amara
words: [sun, moon]
questions:
  - prompt: Where did we first meet?
    answer: Coffee Shop
    hints: [caffeine]
    synonyms: [Cafe]
  - prompt: Favourite colour?
    answer: blue
  - prompt: Our song?
    answer: perfect
memories:
  - {id: a, title: First}
  - {id: b, title: Second}
  - {id: c, title: Third}
`
	c, err := ParsePack(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, c.Validate(12))
	require.Equal(t, "Amara", c.Recipient)
	if diff := cmp.Diff([]string{"SUN", "MOON"}, c.Words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"cafe"}, c.Questions[0].Synonyms)
}

func TestParsePackRejectsUnknownKeys(t *testing.T) {
	_, err := ParsePack(strings.NewReader("wrds: [A]\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidPack))
}

func TestParsePackEmpty(t *testing.T) {
	_, err := ParsePack(strings.NewReader(""))
	require.True(t, errors.Is(err, ErrInvalidPack))
}

func TestWritePackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePack(&buf, Default()))

	got, err := ParsePack(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(Default().Normalize(), got); diff != "" {
		t.Fatalf("pack mismatch (-want +got):\n%s", diff)
	}
}
