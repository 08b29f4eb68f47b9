// Package tetris implements the falling-block game engine: the piece
// catalog, the arena, the shuffled bag, collision and placement, rotation
// with a sideways kick search, row sweeping with scoring, and the Game
// controller that drives them from discrete commands and elapsed time.
//
// Rendering, input devices and frame scheduling live outside this package;
// they read Game state through its accessors and Snapshot, and feed it
// through Apply and Tick.
package tetris
