// meta/meta.go
package meta

// BOARD_SIZE is the number of cells along each side of the board.
const BOARD_SIZE = 9

// WALLS is each player's starting wall stock.
const WALLS = 10

// GAMES_PER_MATCH is the number of games played for each pairing of strategies.
const GAMES_PER_MATCH = 30

// MAX_MOVES draws a tournament game once exceeded.
const MAX_MOVES = 150

// DEBUG_MAX_MOVES draws a debug match once exceeded.
const DEBUG_MAX_MOVES = 50

// WORKERS is the default number of goroutines running tournament matchups.
const WORKERS = 8
