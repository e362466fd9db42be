// meta/meta.go
package meta

// DEPTH defines the default negamax search depth in plies.
const DEPTH = 3

// MAX_DEPTH defines the deepest search a player may be configured with.
const MAX_DEPTH = 6

// GO_ROUTINES defines the default number of goroutines searching root moves.
const GO_ROUTINES = 1

// MAX_TURNS defines the number of moves after which an engine game is stopped.
const MAX_TURNS = 300

// FIGHT_TURNS defines the number of moves after which a calibration fight is stopped.
const FIGHT_TURNS = 1000
