package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"strconv"

	"github.com/ericogr/boss-cards/internal/game"
)

// Roller produces the rollNo-th roll of a seed, in [1, max]. The same
// inputs always give the same result.
type Roller interface {
	Roll(seed string, rollNo, max int) int
}

// SeededRoller derives each roll from sha256(seed ":" rollNo).
type SeededRoller struct{}

func (SeededRoller) Roll(seed string, rollNo, max int) int {
	return Roll(seed, rollNo, max)
}

// Roll is the default deterministic roll function.
func Roll(seed string, rollNo, max int) int {
	if max <= 0 {
		return 0
	}
	sum := sha256.Sum256([]byte(seed + ":" + strconv.Itoa(rollNo)))
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v%uint64(max)) + 1
}

// RollerFunc adapts a plain function to Roller.
type RollerFunc func(seed string, rollNo, max int) int

func (f RollerFunc) Roll(seed string, rollNo, max int) int { return f(seed, rollNo, max) }

// nextDie advances the game's roll counter exactly once and returns a d6.
func (e *Engine) nextDie(st *game.State) int {
	st.RNG.RollNo++
	return e.dice.Roll(st.RNG.Seed, st.RNG.RollNo, 6)
}

// shuffled returns a seeded permutation of cards. Deck order depends only on
// the seed and the side, and does not consume boss rolls.
func shuffled(seed string, side game.Side, cards []string) []string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed + ":deck:" + string(side)))
	r := rand.New(rand.NewSource(int64(h.Sum64())))
	out := append([]string(nil), cards...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
