// cmd/perft/main.go
// Counts move-tree leaves from a position and plays random games against the
// rules engine, for benchmarking and sanity checks.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"ataxx_go/internal/game"
)

func main() {
	depth := flag.Int("depth", 3, "perft depth (0 skips perft)")
	divide := flag.Bool("divide", false, "print per-move leaf counts at the root")
	blocks := flag.String("blocks", "", "comma separated block squares placed before play, e.g. b2,c3")
	moves := flag.String("moves", "", "comma separated moves played before counting, e.g. g1-g2,a1-a2")
	games := flag.Int("games", 0, "number of random self-play games")
	seed := flag.Uint64("seed", 1, "random seed for self-play")
	verbose := flag.Bool("v", false, "log every board change")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	b := game.NewBoard(game.WithLogger(log.Logger))
	for _, sq := range splitList(*blocks) {
		if err := b.SetBlockString(sq); err != nil {
			log.Fatal().Err(err).Str("block", sq).Msg("setup failed")
		}
	}
	for _, mv := range splitList(*moves) {
		if err := b.MakeMoveString(mv); err != nil {
			log.Fatal().Err(err).Str("move", mv).Msg("setup failed")
		}
	}
	fmt.Println(b.Format(true))

	if *depth > 0 {
		runPerft(b, *depth, *divide)
	}
	if *games > 0 {
		runSelfPlay(b, *games, *seed)
	}
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func runPerft(b *game.Board, depth int, divide bool) {
	quiet := b.Copy(game.WithLogger(zerolog.Nop()))
	if divide {
		div := game.PerftDivide(quiet, depth)
		keys := make([]game.Move, 0, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := game.Perft(quiet, depth)
	elapsed := time.Since(start)
	log.Info().
		Int("depth", depth).
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("nps", float64(nodes)/elapsed.Seconds()).
		Msg("perft done")
}

// runSelfPlay plays random games from b's position on independent copies.
func runSelfPlay(b *game.Board, games int, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	var redWins, blueWins, draws int
	start := time.Now()
	for g := 0; g < games; g++ {
		nb := b.Copy()
		for {
			if _, over := nb.Winner(); over {
				break
			}
			mv := game.Pass
			if legal := nb.PossibleMoves(nb.WhoseMove()); len(legal) > 0 {
				mv = legal[rng.Intn(len(legal))]
			}
			if err := nb.MakeMove(mv); err != nil {
				log.Fatal().Err(err).Int("game", g+1).Msg("engine rejected its own move")
			}
		}
		w, _ := nb.Winner()
		switch w {
		case game.Red:
			redWins++
		case game.Blue:
			blueWins++
		default:
			draws++
		}
		log.Debug().
			Int("game", g+1).
			Stringer("winner", w).
			Int("plies", nb.NumMoves()).
			Int("red", nb.RedPieces()).
			Int("blue", nb.BluePieces()).
			Msg("game finished")
	}
	log.Info().
		Int("games", games).
		Int("red", redWins).
		Int("blue", blueWins).
		Int("draws", draws).
		Dur("elapsed", time.Since(start)).
		Msg("self-play done")
}
