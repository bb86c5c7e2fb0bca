package block

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minutesPerDay = 24 * 60

// coverage marks every minute [From, To) covered by the set.
func coverage(s Set) [minutesPerDay]bool {
	var c [minutesPerDay]bool
	for _, b := range s.Blocks() {
		mark(&c, b, true)
	}
	return c
}

func mark(c *[minutesPerDay]bool, b Block, v bool) {
	from := b.From.Hour()*60 + b.From.Minute()
	to := b.To.Hour()*60 + b.To.Minute()
	for m := from; m < to; m++ {
		c[m] = v
	}
}

func randomBlock(rng *rand.Rand) Block {
	from := rng.Intn(minutesPerDay - 1)
	to := from + 1 + rng.Intn(240)
	if to > minutesPerDay-1 {
		to = minutesPerDay - 1
	}
	return Block{From: at(from/60, from%60), To: at(to/60, to%60)}
}

func requireNormalized(t *testing.T, s Set) {
	t.Helper()
	blocks := s.Blocks()
	for i, b := range blocks {
		require.True(t, b.From.Before(b.To), "block %s must not collapse to an instant", b)
		if i > 0 {
			require.True(t, blocks[i-1].To.Before(b.From),
				"blocks %s and %s overlap or touch", blocks[i-1], b)
		}
	}
}

func TestSetAlgebraProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20220212))

	for round := 0; round < 200; round++ {
		var s Set
		var want [minutesPerDay]bool

		for step := 0; step < 30; step++ {
			x := randomBlock(rng)
			if rng.Intn(3) == 0 {
				s.Remove(x)
				mark(&want, x, false)
			} else {
				s.Add(x)
				mark(&want, x, true)
			}

			requireNormalized(t, s)
			require.Equal(t, want, coverage(s), "round %d step %d after %s", round, step, x)
		}
	}
}

func TestAddIdempotenceProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		var s Set
		for i := 0; i < rng.Intn(8); i++ {
			s.Add(randomBlock(rng))
		}
		x := randomBlock(rng)

		s.Add(x)
		once := s.Blocks()
		s.Add(x)

		assert.Equal(t, once, s.Blocks())
	}
}

func TestDurationMatchesCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var s Set
	for i := 0; i < 50; i++ {
		s.Add(randomBlock(rng))
	}

	covered := 0
	for _, m := range coverage(s) {
		if m {
			covered++
		}
	}
	assert.Equal(t, time.Duration(covered)*time.Minute, s.Duration())
}
