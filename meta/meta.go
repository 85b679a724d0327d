// meta/meta.go
package meta

import "runtime"

// DEPTH defines the baseline search depth in plies.
const DEPTH = 3

// ALPHA_BETA enables alpha-beta pruning in the baseline searcher.
const ALPHA_BETA = true

// MAX_TURNS caps the number of moves in a game.
const MAX_TURNS = 300

// GO_ROUTINES defines the number of goroutines evaluating root branches.
var GO_ROUTINES = runtime.NumCPU()
