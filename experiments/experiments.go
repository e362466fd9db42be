package experiments

import (
	"thud/engine"
	"thud/experiments/metrics"
	"thud/game"
	"thud/searcher"
	"thud/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// AgentConfig describes one negamax player taking part in an experiment.
type AgentConfig struct {
	ID      int
	Depth   int
	Weights searcher.Weights
}

// RandomConfigs draws count configurations with randomized weights, IDs
// starting at firstID.
func RandomConfigs(count, firstID, depth int, seed uint64) ([]AgentConfig, error) {
	rng := rand.New(rand.NewSource(seed))
	configs := make([]AgentConfig, 0, count)
	for i := 0; i < count; i++ {
		player, err := searcher.NewNegamax(searcher.WithDepth(depth))
		if err != nil {
			return nil, err
		}
		player.Randomize(rng)
		configs = append(configs, AgentConfig{ID: firstID + i, Depth: depth, Weights: player.Weights()})
	}
	return configs, nil
}

// RunMatchups plays numGames games for each pair of configurations from
// start. Players swap who moves first every game. Fitness is accumulated per
// configuration and every record is written through writer.
func RunMatchups(writer *metrics.Writer, configs []AgentConfig, matchUps [][2]AgentConfig, start *game.Board, numGames int) (map[int]*searcher.Negamax, error) {
	players := make(map[int]*searcher.Negamax, len(configs))
	for _, config := range configs {
		player, err := searcher.NewNegamax(
			searcher.WithDepth(config.Depth),
			searcher.WithWeights(config.Weights),
			searcher.WithMetrics(),
		)
		if err != nil {
			return nil, errors.WithMessagef(err, "agent %d", config.ID)
		}
		players[config.ID] = player
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting matchups...")

	for _, matchUp := range matchUps {
		log.Info().Msgf("starting matchup between agent1=%+v and agent2=%+v...", matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			p1, ok1 := players[first.ID]
			p2, ok2 := players[second.ID]
			if !ok1 || !ok2 {
				return nil, errors.Errorf("matchup references unknown agents %d and %d", first.ID, second.ID)
			}

			score, gameMetric, moveMetrics := runGame(p1, p2, start)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				Score:      score,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d of %d: score %d for agent %d", i+1, numGames, score, first.ID)
		}
		log.Info().Msg("completed matchup")
	}

	agentRecords := make([]metrics.AgentRecord, 0, len(configs))
	for _, config := range configs {
		agentRecords = append(agentRecords, metrics.AgentRecord{
			ID:      config.ID,
			Depth:   config.Depth,
			Weights: config.Weights.String(),
			Fitness: players[config.ID].Fitness(),
		})
	}

	// Store experiment results
	if err := writer.WriteAgentRecords(agentRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored agent records")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored move records")

	return players, nil
}

// runGame plays first against second from start and settles their fitness.
func runGame(first, second *searcher.Negamax, start *game.Board) (int, metrics.GameMetric, []metrics.MoveMetric) {
	startSide := start.SideToMove()
	agents := map[game.Side]agent.Agent{
		startSide:            agent.NewEvaluationAgent(first),
		startSide.Opponent(): agent.NewEvaluationAgent(second),
	}
	e := engine.NewLocalEngine(start, agents[game.Dwarves], agents[game.Trolls])

	_, gameMetric, moveMetrics := e.Run()
	score := searcher.Settle(first, second, e.Board(), startSide)
	return score, gameMetric, moveMetrics
}
