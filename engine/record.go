package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchRecord is one finished match in an experiment run.
type MatchRecord struct {
	ID       int
	Game     string
	Agent0   string
	Agent1   string
	Winner   int
	Moves    int
	Duration time.Duration
}

// MoveRecord is one move of a recorded match. Nodes is the searcher's
// expanded-node count; zero for agents that do not search.
type MoveRecord struct {
	Match  int
	Step   int
	Player int
	Move   string
	Nodes  int64
}

// Writer exports match records as CSV files under a per-run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatches(records []MatchRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Game,
			r.Agent0,
			r.Agent1,
			strconv.Itoa(r.Winner),
			strconv.Itoa(r.Moves),
			r.Duration.String(),
		})
	}
	header := []string{"id", "game", "agent0", "agent1", "winner", "moves", "duration"}
	return w.writeFile("matches.csv", header, rows)
}

func (w *Writer) WriteMoves(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Match),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Move,
			strconv.FormatInt(r.Nodes, 10),
		})
	}
	header := []string{"match", "step", "player", "move", "nodes"}
	return w.writeFile("moves.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return writer.Error()
}
