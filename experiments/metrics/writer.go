package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type AgentRecord struct {
	ID      int
	Depth   int
	Weights string
	Fitness int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentRecord.ID, moving first
	Agent2 int // AgentRecord.ID
	Score  int // For Agent1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named after the experiment and the
// current timestamp.
func NewWriter(root, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000")
	baseDir := filepath.Join(root, experiment, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	header := []string{"id", "depth", "weights", "fitness"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Depth),
			record.Weights,
			strconv.Itoa(record.Fitness),
		})
	}
	return errors.WithMessage(w.write("agent_records.csv", header, rows), "failed to write agent records")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "score", "starting_side", "winner", "start_time", "end_time", "duration", "total_moves", "dwarves", "trolls"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Score),
			record.StartingSide,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Dwarves),
			strconv.Itoa(record.Trolls),
		})
	}
	return errors.WithMessage(w.write("game_records.csv", header, rows), "failed to write game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "hash", "depth", "duration", "children", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side,
			strconv.FormatUint(record.Hash, 16),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Children),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
		})
	}
	return errors.WithMessage(w.write("move_records.csv", header, rows), "failed to write move records")
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return errors.WithStack(err)
	}

	var errs error
	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs == nil {
		if err := writer.WriteAll(rows); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := f.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
