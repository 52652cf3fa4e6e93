// Package timeline implements the memory ordering puzzle: items start in a
// shuffled pool and are dropped into ordered slots.
package timeline

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

var (
	ErrUnknownItem = errors.New("timeline: unknown item")
	ErrBadSlot     = errors.New("timeline: slot out of range")
)

// Item is one memory card.
type Item struct {
	ID          string
	Emoji       string
	Title       string
	Description string
	Date        string
}

// Verdict is the result of checking the slots.
type Verdict struct {
	Filled  bool
	Correct bool
	// Slots marks each slot right or wrong; empty until all slots are filled.
	Slots   []bool
	Message string
}

// Board holds the pool and slots. The reference order is the order items were
// given to New.
type Board struct {
	items map[string]Item
	want  []string
	slots []string
	pool  []string
	rng   *rand.Rand
}

// New builds a board with one slot per item and a shuffled pool.
func New(items []Item, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Board{
		items: make(map[string]Item, len(items)),
		want:  make([]string, 0, len(items)),
		rng:   rng,
	}
	for _, it := range items {
		b.items[it.ID] = it
		b.want = append(b.want, it.ID)
	}
	b.Reset()
	return b
}

// Reset empties every slot and reshuffles the pool.
func (b *Board) Reset() {
	b.slots = make([]string, len(b.want))
	b.pool = slices.Clone(b.want)
	b.rng.Shuffle(len(b.pool), func(i, j int) { b.pool[i], b.pool[j] = b.pool[j], b.pool[i] })
}

func (b *Board) Len() int { return len(b.want) }

// Pool lists the unplaced items in display order.
func (b *Board) Pool() []Item {
	out := make([]Item, 0, len(b.pool))
	for _, id := range b.pool {
		out = append(out, b.items[id])
	}
	return out
}

// Slot returns the item in slot i.
func (b *Board) Slot(i int) (Item, bool) {
	if i < 0 || i >= len(b.slots) || b.slots[i] == "" {
		return Item{}, false
	}
	return b.items[b.slots[i]], true
}

// Order returns the placed ids by slot; empty slots are "".
func (b *Board) Order() []string { return slices.Clone(b.slots) }

// Filled reports whether every slot holds an item.
func (b *Board) Filled() bool {
	return !slices.Contains(b.slots, "")
}

// Place drops item id into slot. A previous occupant goes back to the pool;
// if id already sat in another slot that slot is vacated.
func (b *Board) Place(id string, slot int) error {
	if _, ok := b.items[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if slot < 0 || slot >= len(b.slots) {
		return fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	if b.slots[slot] == id {
		return nil
	}
	if prev := slices.Index(b.slots, id); prev >= 0 {
		b.slots[prev] = ""
	}
	b.pool = slices.DeleteFunc(b.pool, func(p string) bool { return p == id })
	if occupant := b.slots[slot]; occupant != "" {
		b.pool = append(b.pool, occupant)
	}
	b.slots[slot] = id
	return nil
}

// Unplace returns id to the pool.
func (b *Board) Unplace(id string) error {
	if _, ok := b.items[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	i := slices.Index(b.slots, id)
	if i < 0 {
		return nil
	}
	b.slots[i] = ""
	b.pool = append(b.pool, id)
	return nil
}

// Check compares the slots with the reference order.
func (b *Board) Check() Verdict {
	if !b.Filled() {
		return Verdict{Message: "Please place all memories in the timeline!"}
	}
	v := Verdict{Filled: true, Correct: true, Slots: make([]bool, len(b.slots))}
	for i, id := range b.slots {
		v.Slots[i] = id == b.want[i]
		v.Correct = v.Correct && v.Slots[i]
	}
	if v.Correct {
		v.Message = "🎉 Perfect! You got the timeline right!"
	} else {
		v.Message = "Not quite right. Try rearranging the memories!"
	}
	return v
}

// Finish checks the win condition before the puzzle is reported complete.
func (b *Board) Finish() (string, bool) {
	if !b.Filled() {
		return "Please place all memories in the timeline first!", false
	}
	if !b.Check().Correct {
		return "The order is not correct yet. Use \"Check Order\" first!", false
	}
	return "🌟 Timeline Complete! You perfectly arranged our memories!", true
}
