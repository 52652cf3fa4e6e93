// Package content holds the personalised material the puzzles are built from
// and moves it between YAML packs and the sqlite content database.
package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPack is returned when a catalog cannot drive the three puzzles.
var ErrInvalidPack = errors.New("invalid content pack")

const (
	// QuestionCount is the number of trivia questions the quiz expects.
	QuestionCount = 3
	// MemoryCount is the number of timeline slots.
	MemoryCount = 3
)

// Question is one trivia prompt.
type Question struct {
	Prompt   string   `yaml:"prompt"`
	Answer   string   `yaml:"answer"`
	Hints    []string `yaml:"hints,omitempty"`
	Synonyms []string `yaml:"synonyms,omitempty"`
}

// Memory is one timeline item. Catalog order is the reference chronology.
type Memory struct {
	ID          string `yaml:"id"`
	Emoji       string `yaml:"emoji,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Date        string `yaml:"date,omitempty"`
}

// Catalog is everything a session needs.
type Catalog struct {
	Recipient    string     `yaml:"recipient,omitempty"`
	FinalMessage string     `yaml:"final_message,omitempty"`
	Questions    []Question `yaml:"questions"`
	Words        []string   `yaml:"words"`
	Memories     []Memory   `yaml:"memories"`
}

// Default returns the built-in card.
func Default() Catalog {
	return Catalog{
		FinalMessage: defaultFinalMessage,
		Questions: []Question{
			{
				Prompt:   "Where did we first meet?",
				Answer:   "coffee shop",
				Hints:    []string{"We had our first conversation here", "It's a place with caffeine"},
				Synonyms: []string{"cafe", "coffeehouse", "starbucks", "coffee store"},
			},
			{
				Prompt:   "What's your favorite color?",
				Answer:   "blue",
				Hints:    []string{"It's the color of the sky", "Think of the ocean"},
				Synonyms: []string{"navy", "sky blue", "light blue", "dark blue"},
			},
			{
				Prompt:   "What's our special song?",
				Answer:   "perfect",
				Hints:    []string{"Ed Sheeran sings it", "It starts with 'P'"},
				Synonyms: []string{"perfect by ed sheeran", "ed sheeran perfect"},
			},
		},
		Words: []string{"LOVE", "LAUGH", "FUN", "JOY", "HUG", "KISS", "DATE", "TIME"},
		Memories: []Memory{
			{ID: "text", Emoji: "💬", Title: "First conversation", Description: "Where it all began", Date: "21 February 2025"},
			{ID: "encounter", Emoji: "🤝", Title: "First link", Description: "When we first shared a breath", Date: "29 March 2025"},
			{ID: "love", Emoji: "💞", Title: "The word love", Description: "When you knew you were a gone girl", Date: "26 April 2025"},
		},
	}
}

const defaultFinalMessage = `# Happy Birthday, {{recipient}}! 🎂

You blew out the candles, remembered the little things,
found every word and put our story in order.

**Every puzzle was a memory. Every memory is yours.**

_Here's to the next chapter._ 🎁`

// Message returns the final message with the recipient substituted.
func (c Catalog) Message(fallbackRecipient string) string {
	who := strings.TrimSpace(c.Recipient)
	if who == "" {
		who = fallbackRecipient
	}
	if who == "" {
		who = "you"
	}
	msg := c.FinalMessage
	if strings.TrimSpace(msg) == "" {
		msg = defaultFinalMessage
	}
	return strings.ReplaceAll(msg, "{{recipient}}", who)
}

// Normalize upper-cases words and trims every text field.
func (c Catalog) Normalize() Catalog {
	out := c
	out.Recipient = strings.TrimSpace(c.Recipient)
	out.Questions = make([]Question, len(c.Questions))
	for i, q := range c.Questions {
		nq := Question{Prompt: strings.TrimSpace(q.Prompt), Answer: strings.TrimSpace(q.Answer)}
		for _, h := range q.Hints {
			if h = strings.TrimSpace(h); h != "" {
				nq.Hints = append(nq.Hints, h)
			}
		}
		for _, s := range q.Synonyms {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				nq.Synonyms = append(nq.Synonyms, s)
			}
		}
		out.Questions[i] = nq
	}
	out.Words = make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		out.Words = append(out.Words, strings.ToUpper(strings.TrimSpace(w)))
	}
	out.Memories = make([]Memory, len(c.Memories))
	for i, m := range c.Memories {
		out.Memories[i] = Memory{
			ID:          strings.TrimSpace(m.ID),
			Emoji:       strings.TrimSpace(m.Emoji),
			Title:       strings.TrimSpace(m.Title),
			Description: strings.TrimSpace(m.Description),
			Date:        strings.TrimSpace(m.Date),
		}
	}
	return out
}

// Validate checks the catalog against a grid of the given size.
func (c Catalog) Validate(gridSize int) error {
	if len(c.Questions) != QuestionCount {
		return fmt.Errorf("%w: want %d questions, got %d", ErrInvalidPack, QuestionCount, len(c.Questions))
	}
	for i, q := range c.Questions {
		if strings.TrimSpace(q.Prompt) == "" || strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("%w: question %d needs a prompt and an answer", ErrInvalidPack, i+1)
		}
	}
	if len(c.Words) == 0 {
		return fmt.Errorf("%w: no words", ErrInvalidPack)
	}
	seen := map[string]bool{}
	for _, w := range c.Words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) < 2 || len(w) > gridSize {
			return fmt.Errorf("%w: word %q must be 2..%d letters", ErrInvalidPack, w, gridSize)
		}
		for _, r := range w {
			if r > unicode.MaxASCII || !unicode.IsUpper(r) {
				return fmt.Errorf("%w: word %q must use letters A-Z", ErrInvalidPack, w)
			}
		}
		if seen[w] {
			return fmt.Errorf("%w: duplicate word %q", ErrInvalidPack, w)
		}
		seen[w] = true
	}
	if len(c.Memories) != MemoryCount {
		return fmt.Errorf("%w: want %d memories, got %d", ErrInvalidPack, MemoryCount, len(c.Memories))
	}
	ids := map[string]bool{}
	for i, m := range c.Memories {
		id := strings.TrimSpace(m.ID)
		if id == "" || strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("%w: memory %d needs an id and a title", ErrInvalidPack, i+1)
		}
		if ids[id] {
			return fmt.Errorf("%w: duplicate memory id %q", ErrInvalidPack, id)
		}
		ids[id] = true
	}
	return nil
}
