package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gambit/agent"
	"gambit/config"
	"gambit/engine"
	"gambit/experiments"
	"gambit/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML match config")
	sweep := flag.Bool("sweep", false, "Run the recorded heap-sweep experiment instead of a match")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	setupLogging(cfg.LogLevel)

	if *sweep {
		if err := experiments.RunHeapSweep("experiments", 3, 9, 3); err != nil {
			log.Fatal().Err(err).Msg("heap sweep failed")
		}
		return
	}

	state, err := buildState(cfg.Game)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the game")
	}
	agents, hasHuman := buildAgents(cfg.Players)

	if hasHuman {
		// Log lines would tear the interactive screen apart.
		log.Logger = zerolog.New(io.Discard)
		if err := runInteractive(state, agents); err != nil {
			fmt.Fprintf(os.Stderr, "match aborted: %v\n", err)
			os.Exit(1)
		}
		return
	}

	summary, err := engine.NewLocalEngine(state, agents).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	if summary.Winner == -1 {
		fmt.Println("Draw.")
	} else {
		fmt.Printf("Player %d wins after %d moves.\n", summary.Winner, summary.Moves)
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
}

func buildState(cfg config.GameConfig) (game.State, error) {
	switch cfg.Kind {
	case "grundy":
		return game.NewGrundyState(cfg.Heaps...), nil
	case "tictactoe":
		var options []game.BoardOption
		if cfg.Rows > 0 && cfg.Cols > 0 {
			options = append(options, game.WithDimensions(cfg.Rows, cfg.Cols))
		}
		return game.NewTicTacToeState(options...), nil
	default:
		return nil, fmt.Errorf("unknown game %q", cfg.Kind)
	}
}

// buildAgents leaves nil entries for human seats; the interactive driver
// fills those from the keyboard.
func buildAgents(players []config.PlayerConfig) ([]agent.Agent, bool) {
	agents := make([]agent.Agent, len(players))
	hasHuman := false
	for i, p := range players {
		switch p.Kind {
		case "human":
			hasHuman = true
		case "random":
			agents[i] = agent.NewRandomAgent(p.Seed)
		default:
			agents[i] = agent.NewMinimaxAgent()
		}
	}
	return agents, hasHuman
}
