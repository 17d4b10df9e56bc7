package engine

import (
	"encoding/json"
	"testing"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"

	"github.com/stretchr/testify/require"
)

const testDataset = `
adventurers:
  - name: Knight
    hp: 20
    atk: 5
    max_ap: 2
    actions:
      - { name: Slash, kind: attack, cost: 1 }
      - { name: Bash, kind: attack_boss_only, cost: 2, damage: 9 }
  - name: Cleric
    hp: 15
    atk: 2
    max_ap: 2
    actions:
      - { name: Smite, kind: attack, cost: 1 }
      - { name: Mend, kind: heal, cost: 1, heal: 5 }
      - { name: Prayer, kind: heal, cost: 1, heal: 3, target: ally_all }
  - name: Mage
    hp: 12
    atk: 3
    max_ap: 3
    actions:
      - { name: Bolt, kind: attack, cost: 1 }
      - { name: Blast, kind: aoe_attack, cost: 1, damage: 4 }
bosses:
  - name: BossX
    hp: 30
    dice:
      1: { kind: single_attack, value: 5 }
      2: { kind: aoe_attack, value: 3 }
      3: { kind: self_heal, value: 4 }
      4: { kind: single_attack, value: 50 }
      6: { kind: single_attack, value: 6 }
  - name: BossY
    hp: 30
    dice:
      1: { kind: single_attack, value: 5 }
      2: { kind: aoe_attack, value: 3 }
      3: { kind: self_heal, value: 4 }
      4: { kind: single_attack, value: 50 }
      6: { kind: single_attack, value: 6 }
supports:
  - name: Potion
    adventurer: { kind: heal, value: 6 }
    boss: { kind: dice_mod, value: 1 }
  - name: War Cry
    adventurer: { kind: buff, multiplier: 2 }
    boss: { kind: damage_up, value: 3 }
  - name: Second Wind
    adventurer: { kind: draw, per_defeated: 1, cap: 2 }
    boss: { kind: disrupt, value: 2 }
equipment:
  - { name: Iron Sword, atk: 2 }
events:
  - { name: Ambush }
fields:
  - { name: Lava Field }
  - { name: Fog }
`

func testCards(t *testing.T) *cards.Dataset {
	t.Helper()
	ds, err := cards.Parse([]byte(testDataset))
	require.NoError(t, err)
	return ds
}

// fixedDice replays faces in order, cycling when exhausted.
func fixedDice(faces ...int) Roller {
	return RollerFunc(func(_ string, rollNo, _ int) int {
		return faces[(rollNo-1)%len(faces)]
	})
}

func newTestGame(t *testing.T, opts ...Option) (*Engine, *game.State) {
	t.Helper()
	e := New(testCards(t), opts...)
	st, err := e.StartGame("seed1", "BossX", "BossY")
	require.NoError(t, err)
	return e, st
}

// setHand replaces a side's zones so tests control which cards are held.
func setHand(st *game.State, side game.Side, hand, deck []string) {
	p := st.Player(side)
	p.Hand = append([]string{}, hand...)
	p.Deck = append([]string{}, deck...)
	p.Discard = []string{}
}

func snapshot(t *testing.T, st *game.State) string {
	t.Helper()
	b, err := json.Marshal(st)
	require.NoError(t, err)
	return string(b)
}

func logKinds(st *game.State, kind game.LogKind) []game.LogEntry {
	var out []game.LogEntry
	for _, e := range st.Log {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
