package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gambit/agent"
	"gambit/engine"
	"gambit/game"
	"gambit/searcher"
)

// AgentConfig names an agent build for the match records.
type AgentConfig struct {
	Kind string // minimax or random
	Seed uint64
}

func buildAgent(cfg AgentConfig) agent.Agent {
	switch cfg.Kind {
	case "random":
		return agent.NewRandomAgent(cfg.Seed)
	case "minimax":
		return agent.NewMinimaxAgent(searcher.WithMetrics())
	default:
		panic(fmt.Sprintf("unknown agent kind %q", cfg.Kind))
	}
}

// recorder wraps an agent and appends a MoveRecord for every move it plays.
type recorder struct {
	inner agent.Agent
	match int
	step  *int
	out   *[]engine.MoveRecord
}

func (r recorder) ChooseMove(state game.State) (game.Move, error) {
	move, err := r.inner.ChooseMove(state)
	if err != nil {
		return nil, err
	}

	*r.step++
	var nodes int64
	if m, ok := r.inner.(*agent.MinimaxAgent); ok {
		nodes = m.LastMetrics().Nodes
	}
	*r.out = append(*r.out, engine.MoveRecord{
		Match:  r.match,
		Step:   *r.step,
		Player: state.Player(),
		Move:   move.String(),
		Nodes:  nodes,
	})
	return move, nil
}

// RunHeapSweep plays recorded Grundy matches over a range of opening heap
// sizes: minimax against itself, and minimax against a random mover. Match
// and move records land as CSV files in a timestamped folder under root.
func RunHeapSweep(root string, minHeap, maxHeap, matchesPer int) error {
	writer, err := engine.NewWriter(root)
	if err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("recording heap sweep")

	var matches []engine.MatchRecord
	var moves []engine.MoveRecord
	id := 0
	for heap := minHeap; heap <= maxHeap; heap++ {
		opponents := []AgentConfig{
			{Kind: "minimax"},
			{Kind: "random", Seed: uint64(heap)},
		}
		for _, opponent := range opponents {
			for i := 0; i < matchesPer; i++ {
				id++
				record, err := runMatch(id, heap, opponent, &moves)
				if err != nil {
					return err
				}
				matches = append(matches, record)
				log.Info().
					Int("match", id).
					Int("heap", heap).
					Str("opponent", opponent.Kind).
					Int("winner", record.Winner).
					Msg("match finished")
			}
		}
	}

	if err := writer.WriteMatches(matches); err != nil {
		return err
	}
	return writer.WriteMoves(moves)
}

func runMatch(id, heap int, opponent AgentConfig, moves *[]engine.MoveRecord) (engine.MatchRecord, error) {
	step := 0
	agents := []agent.Agent{
		recorder{inner: buildAgent(AgentConfig{Kind: "minimax"}), match: id, step: &step, out: moves},
		recorder{inner: buildAgent(opponent), match: id, step: &step, out: moves},
	}

	start := time.Now()
	summary, err := engine.NewLocalEngine(game.NewGrundyState(heap), agents).Run()
	if err != nil {
		return engine.MatchRecord{}, fmt.Errorf("match %d failed: %w", id, err)
	}

	return engine.MatchRecord{
		ID:       id,
		Game:     fmt.Sprintf("grundy-%d", heap),
		Agent0:   "minimax",
		Agent1:   opponent.Kind,
		Winner:   summary.Winner,
		Moves:    summary.Moves,
		Duration: time.Since(start),
	}, nil
}
