package main

import (
	"flag"
	"fmt"
	"os"
	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/searcher/agent"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML tournament config; defaults are used when empty")
	match := flag.String("match", "", "Play a single debug match between two strategies, e.g. \"Minimax2,Adaptive\"")
	opening := flag.String("opening", "No Opening", "Opening for the debug match")
	workers := flag.Int("workers", 0, "Goroutines running tournament matchups; overrides the config when positive")
	out := flag.String("out", "", "Directory receiving tournament results; overrides the config when set")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug || os.Getenv("QUORIDOR_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *workers > 0 {
		config.Workers = *workers
	}
	if *out != "" {
		config.OutDir = *out
	}

	if *match != "" {
		names := strings.Split(*match, ",")
		if len(names) != 2 {
			log.Fatal().Msgf("-match needs two comma separated strategies, got %q", *match)
		}
		runDebugMatch(config, strings.TrimSpace(names[0]), strings.TrimSpace(names[1]), *opening)
		return
	}

	tournament, err := experiments.NewTournament(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create tournament")
	}
	tournament.RunParallel(config.Workers)
	dir, err := tournament.Write()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store tournament")
	}
	log.Info().Msgf("tournament results saved to %s", dir)
}

func runDebugMatch(config experiments.Config, strategy1, strategy2, opening string) {
	log.Info().Msgf("debug match: %s vs %s with %s", strategy1, strategy2, opening)
	first := agent.New(strategy1, opening, game.Player1)
	second := agent.New(strategy2, opening, game.Player2)

	state := game.New(config.BoardSize, config.Walls)
	fmt.Println(engine.Render(state, true))
	e := engine.NewLocal(state, first, second,
		engine.WithMaxMoves(engine.DebugMaxMoves),
		engine.WithBoard(os.Stdout, true),
	)
	result, gameMetric, _ := e.Run()
	if result.Draw() {
		fmt.Printf("Game drawn after %d moves\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s wins by %s after %d moves in %s\n", result.Winner, result.Reason, gameMetric.TotalMoves, gameMetric.Duration)
}
