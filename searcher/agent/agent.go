package agent

import (
	"quoridor/experiments/metrics"
	"quoridor/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Agent interface {
	Name() string
	// FindMove returns the active player's next move, or false when it has none
	FindMove(state *game.State) (string, bool)
}

// Reporter is implemented by agents that run a search and can describe it.
type Reporter interface {
	Metric() metrics.SearchMetric
}

type Option func(b *base)

// WithOpening gives the agent a scripted sequence of moves to try first.
func WithOpening(name string, moves []string) Option {
	return func(b *base) {
		b.openingName = name
		b.opening = moves
	}
}

func WithSeed(seed uint64) Option {
	return func(b *base) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(b *base) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// base carries what every strategy shares: its name, its opening book and its randomness.
type base struct {
	strategy    string
	openingName string
	opening     []string
	played      int // Opening moves consumed so far
	rng         *rand.Rand
}

func newBase(strategy string, options []Option) base {
	b := base{strategy: strategy}
	for _, option := range options {
		option(&b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return b
}

func (b *base) Name() string {
	if len(b.opening) > 0 {
		return b.strategy + "-" + b.openingName
	}
	return b.strategy
}

// openingMove consumes the next scripted move and returns it if it is legal right now.
func (b *base) openingMove(state *game.State) (string, bool) {
	if b.played >= len(b.opening) {
		return "", false
	}
	move := b.opening[b.played]
	b.played++
	if legal(state, move) {
		return move, true
	}
	log.Debug().Msgf("%s skips opening move %s: not legal in %q", b.Name(), move, state.String())
	return "", false
}

func legal(state *game.State, move string) bool {
	if game.IsWallNotation(move) {
		return state.WallCheck(state.Active(), move)
	}
	return slices.Contains(state.LegalPawnMoveNotations(state.Active()), move)
}

// pick returns a uniformly random element of moves.
func (b *base) pick(moves []string) (string, bool) {
	if len(moves) == 0 {
		return "", false
	}
	return moves[b.rng.Intn(len(moves))], true
}
