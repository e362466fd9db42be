// Package game implements the Thud board, its movement rules and the board
// file format.
package game

// Evaluate scores a board from the point of view of the side to move:
// positive values favour the mover.
type Evaluate func(*Board) int
