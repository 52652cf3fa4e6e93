package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate(12))
	require.Len(t, c.Words, 8)
	require.Equal(t, []string{"text", "encounter", "love"}, []string{c.Memories[0].ID, c.Memories[1].ID, c.Memories[2].ID})
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Catalog){
		"two questions":  func(c *Catalog) { c.Questions = c.Questions[:2] },
		"blank answer":   func(c *Catalog) { c.Questions[1].Answer = "  " },
		"no words":       func(c *Catalog) { c.Words = nil },
		"long word":      func(c *Catalog) { c.Words = append(c.Words, "ABCDEFGHIJKLM") },
		"digit in word":  func(c *Catalog) { c.Words = append(c.Words, "HI5") },
		"duplicate word": func(c *Catalog) { c.Words = append(c.Words, "love") },
		"four memories":  func(c *Catalog) { c.Memories = append(c.Memories, Memory{ID: "x", Title: "x"}) },
		"duplicate id":   func(c *Catalog) { c.Memories[2].ID = "text" },
		"padded dup id":  func(c *Catalog) { c.Memories[2].ID = "text " },
		"untitled":       func(c *Catalog) { c.Memories[0].Title = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			err := c.Validate(12)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidPack))
		})
	}
}

func TestNormalize(t *testing.T) {
	c := Catalog{
		Questions: []Question{{Prompt: " Q ", Answer: " A ", Hints: []string{" h ", ""}, Synonyms: []string{" Cafe "}}},
		Words:     []string{" love "},
		Memories:  []Memory{{ID: " a ", Title: " T "}},
	}
	n := c.Normalize()
	require.Equal(t, "Q", n.Questions[0].Prompt)
	require.Equal(t, []string{"h"}, n.Questions[0].Hints)
	require.Equal(t, []string{"cafe"}, n.Questions[0].Synonyms)
	require.Equal(t, []string{"LOVE"}, n.Words)
	require.Equal(t, "a", n.Memories[0].ID)
	// the input is untouched
	require.Equal(t, " love ", c.Words[0])
}

func TestMessageSubstitutesRecipient(t *testing.T) {
	c := Default()
	require.True(t, strings.Contains(c.Message("Amara"), "Happy Birthday, Amara!"))

	c.Recipient = "Sam"
	require.True(t, strings.Contains(c.Message("Amara"), "Happy Birthday, Sam!"))

	c.FinalMessage = ""
	require.True(t, strings.Contains(c.Message(""), "Happy Birthday, Sam!"))
}
