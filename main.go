package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"battleship/ai"
	"battleship/engine"
	"battleship/game"
	"battleship/player"
	"battleship/stats"
)

type config struct {
	games     int
	seed      uint64
	size      int
	adjacency bool
	extraTurn bool
	verbose   bool
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rules := game.DefaultConfig()
	rules.Size = cfg.size
	rules.AdjacencyExclusion = cfg.adjacency
	rules.ExtraTurnOnHit = cfg.extraTurn

	// Hunt/target vs the uniform-random baseline.
	tracker := stats.NewTracker()
	for i := 0; i < cfg.games; i++ {
		seed := cfg.seed + uint64(i)*4
		hunter := player.NewAIAgent(ai.NewHuntTarget(rules, seed), seed+1)
		random := player.NewAIAgent(ai.NewRandom(rules, seed+2), seed+3)

		e := engine.Local(rules, hunter, random, nil)
		winner, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game aborted")
		}
		tracker.Record(winner, e.Moves())
	}

	fmt.Printf("hunt/target as player 1 vs random: %s\n", tracker)
}

func parseFlags() config {
	cfg := config{}
	flag.IntVar(&cfg.games, "games", 10, "number of games to play")
	flag.Uint64Var(&cfg.seed, "seed", 1, "base RNG seed")
	flag.IntVar(&cfg.size, "size", 10, "board size")
	flag.BoolVar(&cfg.adjacency, "adjacency", false, "forbid touching ships")
	flag.BoolVar(&cfg.extraTurn, "extra-turn", false, "a hit keeps the turn")
	flag.BoolVar(&cfg.verbose, "v", false, "log every attack")
	flag.Parse()
	return cfg
}
