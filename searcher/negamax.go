package searcher

import (
	"math"
	"sync"
	"thud/experiments/metrics"
	"thud/game"
	"thud/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Infinity bounds every score. It stays far enough from math.MaxInt for
// negation to be safe.
const Infinity = math.MaxInt - 5

var (
	ErrInvalidDepth      = errors.New("search depth out of range")
	ErrInvalidGoroutines = errors.New("goroutines must be positive")
)

type Option func(n *Negamax)

// Negamax is an alpha-beta negamax player.
type Negamax struct {
	depth      int
	goroutines int
	weights    Weights
	evaluate   game.Evaluate // Overrides weights when set
	progress   func(percent int)
	metrics    metrics.Collector
	fitness    int
}

// Result is the outcome of a search.
type Result struct {
	Board  *game.Board // Chosen successor, nil when there is no move to play
	Score  int         // For the side to move in the searched position
	Metric metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		n.depth = depth
	}
}

// WithGoroutines searches the root moves on several goroutines. Each root
// move gets a full window, so the result matches the sequential search.
func WithGoroutines(goroutines int) Option {
	return func(n *Negamax) {
		n.goroutines = goroutines
	}
}

func WithWeights(weights Weights) Option {
	return func(n *Negamax) {
		n.weights = weights
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

// WithProgress registers a callback receiving the percentage of root moves
// searched so far.
func WithProgress(progress func(percent int)) Option {
	return func(n *Negamax) {
		n.progress = progress
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

func NewNegamax(options ...Option) (*Negamax, error) {
	n := &Negamax{ // Default values
		depth:      meta.DEPTH,
		goroutines: meta.GO_ROUTINES,
		weights:    DefaultWeights(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	if err := n.validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Negamax) validate() error {
	var errs error
	if n.depth < 1 || n.depth > meta.MAX_DEPTH {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidDepth, "got %d, want 1 to %d", n.depth, meta.MAX_DEPTH))
	}
	if n.goroutines < 1 {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidGoroutines, "got %d", n.goroutines))
	}
	return errs
}

func (n *Negamax) Depth() int {
	return n.depth
}

func (n *Negamax) Weights() Weights {
	return n.weights
}

// SetProgressCallback replaces the progress callback; nil disables it.
func (n *Negamax) SetProgressCallback(progress func(percent int)) {
	n.progress = progress
}

// Evaluate scores b for the side to move.
func (n *Negamax) Evaluate(b *game.Board) int {
	if n.evaluate != nil {
		return n.evaluate(b)
	}
	return n.weights.Evaluate(b)
}

// ChooseMove returns the best successor of b. It reports false when the game
// is over or the side to move is stuck. b is not modified.
func (n *Negamax) ChooseMove(b *game.Board) (*game.Board, bool) {
	result := n.Search(b)
	return result.Board, result.Board != nil
}

// MakeBestMove plays the best move on b in place.
func (n *Negamax) MakeBestMove(b *game.Board) bool {
	next, ok := n.ChooseMove(b)
	if ok {
		b.Set(next)
	}
	return ok
}

// Search explores b to the configured depth. Among equally scored moves the
// first one generated is kept.
func (n *Negamax) Search(b *game.Board) Result {
	if isOver(b) {
		n.metrics.Start(n.depth, n.goroutines, 0)
		n.metrics.AddNode()
		n.metrics.AddLeaf()
		return Result{Score: n.Evaluate(b), Metric: n.metrics.Complete()}
	}

	children := b.ExpandSuccessors()
	n.metrics.Start(n.depth, n.goroutines, len(children))
	n.metrics.AddNode()
	if len(children) == 0 {
		return Result{Score: -Infinity, Metric: n.metrics.Complete()}
	}

	var best int
	var chosen *game.Board
	if n.goroutines > 1 && len(children) > 1 {
		best, chosen = n.searchParallel(children)
	} else {
		best, chosen = n.searchSequential(children)
	}

	metric := n.metrics.Complete()
	log.Debug().Msgf("%s searched %d moves at depth %d: score %d in %v",
		b.SideToMove(), len(children), n.depth, best, metric.Duration)
	return Result{Board: chosen, Score: best, Metric: metric}
}

func (n *Negamax) searchSequential(children []*game.Board) (int, *game.Board) {
	alpha, beta := -Infinity, Infinity
	best := -Infinity
	var chosen *game.Board
	for i, child := range children {
		score := -n.negamax(child, -beta, -alpha, 1)
		if chosen == nil || score > best {
			best, chosen = score, child
		}
		n.report(i+1, len(children))

		alpha = max(alpha, score)
		if alpha >= beta {
			n.metrics.AddCutoff()
			break
		}
	}
	return best, chosen
}

type rootScore struct {
	index int
	score int
}

func (n *Negamax) searchParallel(children []*game.Board) (int, *game.Board) {
	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	results := make(chan rootScore, len(children))
	var wg sync.WaitGroup
	for i := 0; i < min(n.goroutines, len(children)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range task {
				score := -n.negamax(children[index], -Infinity, Infinity, 1)
				results <- rootScore{index: index, score: score}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	scores := make([]int, len(children))
	done := 0
	for r := range results {
		scores[r.index] = r.score
		done++
		n.report(done, len(children))
	}

	best := scores[0]
	chosen := children[0]
	for i, score := range scores[1:] {
		if score > best {
			best, chosen = score, children[i+1]
		}
	}
	return best, chosen
}

func (n *Negamax) negamax(b *game.Board, alpha, beta, depth int) int {
	n.metrics.AddNode()
	if depth == n.depth || isOver(b) {
		n.metrics.AddLeaf()
		return n.Evaluate(b)
	}

	best := -Infinity
	for _, child := range b.ExpandSuccessors() {
		score := -n.negamax(child, -beta, -alpha, depth+1)
		best = max(best, score)

		// Alpha-beta pruning
		alpha = max(alpha, score)
		if alpha >= beta {
			n.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (n *Negamax) report(done, total int) {
	if n.progress != nil {
		n.progress(100 * done / total)
	}
}

// isOver reports whether one side has no piece left.
func isOver(b *game.Board) bool {
	return b.CountPieces(game.Dwarf) == 0 || b.CountPieces(game.Troll) == 0
}
