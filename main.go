package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"thud/game"
	"thud/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	boardPath := flag.String("board", "", "Board file to play one AI move on, saved back after the move (standard opening when empty)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, err := loadBoard(*boardPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load board")
	}

	if winner := board.Winner(); winner != game.NoSide {
		log.Info().Msgf("game is over: %s win", winner)
		printBoard(board)
		return
	}

	lastReported := -1
	player, err := searcher.NewNegamax(
		searcher.WithMetrics(),
		searcher.WithProgress(func(percent int) {
			if percent/10 != lastReported/10 {
				lastReported = percent
				log.Info().Msgf("thinking... %d%%", percent)
			}
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid player configuration")
	}

	side := board.SideToMove()
	result := player.Search(board)
	if result.Board == nil {
		log.Info().Msgf("%s cannot move", side)
		printBoard(board)
		return
	}
	board.Set(result.Board)
	log.Info().Msgf("%s moved: score %d, %d nodes in %v", side, result.Score, result.Metric.Nodes, result.Metric.Duration)
	printBoard(board)

	if *boardPath != "" {
		if err := board.WriteFile(*boardPath); err != nil {
			log.Fatal().Err(err).Msg("failed to save board")
		}
		log.Info().Msgf("saved board to %s", *boardPath)
	}
}

func loadBoard(path string) (*game.Board, error) {
	if path == "" {
		return game.Standard(), nil
	}
	return game.ReadFile(path)
}

func printBoard(board *game.Board) {
	output := termenv.NewOutput(os.Stdout)
	var builder strings.Builder
	for rank := 0; rank < board.Height(); rank++ {
		for file := 0; file < board.Width(); file++ {
			if file == 0 && rank == 0 {
				builder.WriteString(output.String(string(board.SideToMove().Piece().Glyph())).Underline().String())
				continue
			}
			piece := board.Piece(game.Coordinate{File: file, Rank: rank})
			style := output.String(string(piece.Glyph()))
			switch piece {
			case game.Dwarf:
				style = style.Foreground(output.Color("3")).Bold()
			case game.Troll:
				style = style.Foreground(output.Color("2")).Bold()
			case game.Rock, game.Out:
				style = style.Faint()
			}
			builder.WriteString(style.String())
		}
		builder.WriteByte('\n')
	}
	fmt.Fprint(os.Stdout, builder.String())
}
