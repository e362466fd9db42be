package game

import (
	"bufio"
	"embed"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownGlyph = errors.New("unknown piece glyph")
	ErrInvalidTurn  = errors.New("top-left square must be D or T")
)

//go:embed boards/*.thud
var boards embed.FS

// Read parses a board in the text format: one line per rank, one glyph per
// file, with the top-left character naming the side to move.
func Read(r io.Reader) (*Board, error) {
	var lines [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, []rune(strings.TrimSuffix(scanner.Text(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read board")
	}
	// Trailing blank lines are not ranks
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyBoard
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	height := len(lines)

	squares := make([][]Piece, width)
	for file := range squares {
		squares[file] = make([]Piece, height)
	}

	dwarvesTurn := true
	for rank, line := range lines {
		if len(line) < width {
			return nil, errors.Wrapf(ErrRaggedRow, "line %d has %d squares, want %d", rank+1, len(line), width)
		}
		for file, glyph := range line {
			if file == 0 && rank == 0 {
				switch glyph {
				case Dwarf.Glyph():
					dwarvesTurn = true
				case Troll.Glyph():
					dwarvesTurn = false
				default:
					return nil, errors.Wrapf(ErrInvalidTurn, "got %q", glyph)
				}
				squares[0][0] = Out
				continue
			}
			piece, ok := PieceFromGlyph(glyph)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownGlyph, "line %d column %d: %q", rank+1, file+1, glyph)
			}
			squares[file][rank] = piece
		}
	}

	return NewBoard(squares, dwarvesTurn, RegularVariant)
}

// Write stores the board in the text format read by Read. The top-left
// square is always written as the side to move.
func (b *Board) Write(w io.Writer) error {
	writer := bufio.NewWriter(w)
	for rank := 0; rank < b.Height(); rank++ {
		if rank != 0 {
			writer.WriteRune('\n')
		}
		for file := 0; file < b.Width(); file++ {
			if file == 0 && rank == 0 {
				writer.WriteRune(b.SideToMove().Piece().Glyph())
				continue
			}
			writer.WriteRune(b.squares[file][rank].Glyph())
		}
	}
	return errors.Wrap(writer.Flush(), "write board")
}

func (b *Board) String() string {
	var builder strings.Builder
	_ = b.Write(&builder)
	return builder.String()
}

func ReadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open board %s", path)
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load board %s", path)
	}
	return b, nil
}

func (b *Board) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create board %s", path)
	}
	if err := b.Write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "save board %s", path)
	}
	return errors.Wrapf(f.Close(), "close board %s", path)
}

// Standard returns the initial position of a regular game.
func Standard() *Board {
	return mustLoad("boards/standard.thud")
}

// Micro returns a small 7x7 position, useful for quick self-play.
func Micro() *Board {
	return mustLoad("boards/micro.thud")
}

func mustLoad(name string) *Board {
	f, err := boards.Open(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	b, err := Read(f)
	if err != nil {
		panic(err)
	}
	return b
}
