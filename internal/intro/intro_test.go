package intro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type frames struct {
	out [][]byte
	err error
}

func (f *frames) Sample() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.out) == 0 {
		return []byte{0}, nil
	}
	fr := f.out[0]
	f.out = f.out[1:]
	return fr, nil
}

func TestGateFiresOnce(t *testing.T) {
	g := Gate{Threshold: DefaultThreshold}
	require.False(t, g.Feed([]byte{40, 40, 40}), "threshold must be exceeded")
	require.True(t, g.Feed([]byte{41, 41, 41}))
	require.False(t, g.Feed([]byte{255, 255}))
	require.True(t, g.Fired())
	require.Zero(t, Average(nil))
}

func TestBreathCrossesThreshold(t *testing.T) {
	b := NewBreath()
	in := New(b, DefaultThreshold)

	b.Puff()
	fired, err := in.Poll()
	require.NoError(t, err)
	require.False(t, fired)
	b.Decay()

	b.Puff()
	b.Puff()
	fired, err = in.Poll()
	require.NoError(t, err)
	require.True(t, fired)
	require.Equal(t, Extinguished, in.Stage())

	for range 40 {
		b.Decay()
	}
	require.Zero(t, b.Level())
}

func TestStagesInOrder(t *testing.T) {
	in := New(&frames{out: [][]byte{{10}, {90}}}, DefaultThreshold)
	require.False(t, in.OpenCard())

	fired, _ := in.Poll()
	require.False(t, fired)
	fired, _ = in.Poll()
	require.True(t, fired)
	require.Equal(t, "🎉 The candles are out! Opening your card...", in.Instruction())

	require.False(t, in.Offer())
	require.True(t, in.OpenCard())
	require.True(t, in.Offer())
	require.Equal(t, Ready, in.Stage())
	require.Equal(t, "Continue to Puzzles 🎯", in.Instruction())
}

func TestDeniedSourceFallsBackToEnter(t *testing.T) {
	in := New(Denied{}, DefaultThreshold)
	fired, err := in.Poll()
	require.NoError(t, err)
	require.False(t, fired)
	require.True(t, in.Denied())
	require.Contains(t, in.Instruction(), "Please allow mic access")
	require.True(t, in.OpenCard())
	require.Equal(t, CardOpen, in.Stage())
}

func TestPollPassesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	in := New(&frames{err: boom}, DefaultThreshold)
	_, err := in.Poll()
	require.ErrorIs(t, err, boom)
	require.False(t, in.Denied())
}
