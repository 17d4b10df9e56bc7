// Command simulate plays heuristic-versus-heuristic matches over a range of
// seeds and prints how each boss pairing fared.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/version"
)

type options struct {
	games    int
	prefix   string
	bossA    string
	bossB    string
	dataset  string
	priority string
	maxTurns int
}

// tally is the outcome count of one boss pairing.
type tally struct {
	bossA, bossB      string
	aWins, bWins      int
	draws, unfinished int
	rounds            int
}

func main() {
	var opt options
	flag.IntVar(&opt.games, "games", 100, "number of matches to play")
	flag.StringVar(&opt.prefix, "seed-prefix", "sim", "seed prefix; match n uses <prefix>-<n>")
	flag.StringVar(&opt.bossA, "boss-a", "", "boss for side A (default: rotate through the dataset)")
	flag.StringVar(&opt.bossB, "boss-b", "", "boss for side B (default: rotate through the dataset)")
	flag.StringVar(&opt.dataset, "dataset", "", "card dataset YAML (default: embedded)")
	flag.StringVar(&opt.priority, "priority", "", "comma separated support priority for both sides")
	flag.IntVar(&opt.maxTurns, "max-turns", 500, "turn limit before a match counts as unfinished")
	flag.Parse()

	ds := cards.Default()
	if opt.dataset != "" {
		var err error
		if ds, err = cards.Load(opt.dataset); err != nil {
			logging.Fatal("failed to load dataset", err, logging.Fields{"path": opt.dataset})
		}
	}
	results, err := simulate(engine.New(ds), opt)
	if err != nil {
		logging.Fatal("simulation failed", err, nil)
	}
	fmt.Fprintf(os.Stdout, "%s, %d matches\n\n", version.String(), opt.games)
	report(os.Stdout, results)
}

// simulate plays opt.games matches and returns one tally per pairing, in
// the order pairings were first seen.
func simulate(e *engine.Engine, opt options) ([]*tally, error) {
	var priority []string
	for _, p := range strings.Split(opt.priority, ",") {
		if p = strings.TrimSpace(p); p != "" {
			priority = append(priority, p)
		}
	}
	bot := engine.NewOpponent(e, priority)
	bosses := e.Cards().Bosses
	if len(bosses) == 0 {
		return nil, fmt.Errorf("dataset has no bosses")
	}

	byPair := map[string]*tally{}
	var order []*tally
	for n := 0; n < opt.games; n++ {
		a, b := opt.bossA, opt.bossB
		if a == "" {
			a = bosses[n%len(bosses)].Name
		}
		if b == "" {
			b = bosses[(n+1)%len(bosses)].Name
		}
		st, err := e.StartGame(fmt.Sprintf("%s-%d", opt.prefix, n), a, b)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", n, err)
		}
		if err := play(bot, st, opt.maxTurns); err != nil {
			return nil, fmt.Errorf("match %d: %w", n, err)
		}

		key := st.SideA.Boss.Name + "|" + st.SideB.Boss.Name
		t, ok := byPair[key]
		if !ok {
			t = &tally{bossA: st.SideA.Boss.Name, bossB: st.SideB.Boss.Name}
			byPair[key] = t
			order = append(order, t)
		}
		t.rounds += st.Round
		switch st.Status {
		case game.StatusSideAWin:
			t.aWins++
		case game.StatusSideBWin:
			t.bWins++
		case game.StatusDraw:
			t.draws++
		default:
			t.unfinished++
		}
	}
	return order, nil
}

// play lets the heuristic move both sides until the match ends or the turn
// limit is hit.
func play(bot *engine.Opponent, st *game.State, maxTurns int) error {
	for turn := 0; turn < maxTurns && !st.Status.Terminal(); turn++ {
		if err := bot.TakeTurn(st, st.Turn); err != nil && !st.Status.Terminal() {
			return err
		}
	}
	return nil
}

func report(w io.Writer, results []*tally) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].bossA != results[j].bossA {
			return results[i].bossA < results[j].bossA
		}
		return results[i].bossB < results[j].bossB
	})
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOSS A\tBOSS B\tA WINS\tB WINS\tDRAWS\tUNFINISHED\tAVG ROUNDS")
	for _, t := range results {
		played := t.aWins + t.bWins + t.draws + t.unfinished
		avg := 0.0
		if played > 0 {
			avg = float64(t.rounds) / float64(played)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%.1f\n", t.bossA, t.bossB, t.aWins, t.bWins, t.draws, t.unfinished, avg)
	}
	tw.Flush()
}
