package experiments

import (
	"fmt"
	"io"
	"os"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher/agent"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// MatchUp pairs two strategies under one opening.
type MatchUp struct {
	Opening   string
	Strategy1 string
	Strategy2 string
}

type MatchResult struct {
	MatchUp
	Wins1 int
	Wins2 int
	Draws int
	index int // Position in the round robin
}

type Tournament struct {
	RunID    string
	config   Config
	progress io.Writer

	mu          sync.Mutex
	results     []MatchResult
	gameRecords []metrics.GameRecord
	moveRecords []metrics.MoveRecord
	startTime   time.Time
	endTime     time.Time
}

func NewTournament(config Config) (*Tournament, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament config: %w", err)
	}
	return &Tournament{
		RunID:    uuid.New().String(),
		config:   config,
		progress: os.Stderr,
	}, nil
}

// SetProgress redirects the progress bar.
func (t *Tournament) SetProgress(w io.Writer) {
	t.progress = w
}

// MatchUps lists every opening against every unordered pair of distinct strategies.
func (t *Tournament) MatchUps() []MatchUp {
	var matchUps []MatchUp
	for _, opening := range t.config.Openings {
		for i := range t.config.Strategies {
			for j := i + 1; j < len(t.config.Strategies); j++ {
				matchUps = append(matchUps, MatchUp{
					Opening:   opening,
					Strategy1: t.config.Strategies[i],
					Strategy2: t.config.Strategies[j],
				})
			}
		}
	}
	return matchUps
}

// Run plays every matchup on the calling goroutine.
func (t *Tournament) Run() []MatchResult {
	return t.RunParallel(1)
}

// RunParallel splits the matchups into contiguous shards, one goroutine per shard, and
// merges the shards once they are all done.
func (t *Tournament) RunParallel(workers int) []MatchResult {
	matchUps := t.MatchUps()
	if workers < 1 {
		workers = 1
	}
	if workers > len(matchUps) {
		workers = max(len(matchUps), 1)
	}
	chunk := (len(matchUps) + workers - 1) / workers

	t.reset()
	log.Info().Msgf("starting tournament %s: %d matchups on %d workers", t.RunID, len(matchUps), workers)
	bar := newBar(len(matchUps), "matchups", t.progress)

	var wg sync.WaitGroup
	for start := 0; start < len(matchUps); start += chunk {
		end := min(start+chunk, len(matchUps))
		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			var results []MatchResult
			var games []metrics.GameRecord
			var moves []metrics.MoveRecord
			for i := start; i < end; i++ {
				result, g, m := t.runMatch(i, matchUps[i])
				results = append(results, result)
				games = append(games, g...)
				moves = append(moves, m...)
				bar.Add(1)
			}
			log.Debug().Msgf("worker %d completed matchups %d to %d", worker, start+1, end)

			t.mu.Lock()
			defer t.mu.Unlock()
			t.results = append(t.results, results...)
			t.gameRecords = append(t.gameRecords, games...)
			t.moveRecords = append(t.moveRecords, moves...)
		}(start/chunk, start, end)
	}
	wg.Wait()
	bar.Finish()

	slices.SortFunc(t.results, func(a, b MatchResult) int { return a.index - b.index })
	slices.SortStableFunc(t.gameRecords, func(a, b metrics.GameRecord) int { return a.ID - b.ID })
	slices.SortStableFunc(t.moveRecords, func(a, b metrics.MoveRecord) int { return a.Game - b.Game })
	t.endTime = time.Now()
	log.Info().Msgf("completed tournament %s in %s", t.RunID, t.endTime.Sub(t.startTime))
	return t.Results()
}

func (t *Tournament) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = nil
	t.gameRecords = nil
	t.moveRecords = nil
	t.startTime = time.Now()
}

func (t *Tournament) Results() []MatchResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.results)
}

// runMatch plays GamesPerMatch games, alternating which strategy moves first.
func (t *Tournament) runMatch(index int, m MatchUp) (MatchResult, []metrics.GameRecord, []metrics.MoveRecord) {
	result := MatchResult{MatchUp: m, index: index}
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Msgf("%s: %s vs %s", m.Opening, m.Strategy1, m.Strategy2)
	for i := 0; i < t.config.GamesPerMatch; i++ {
		id := index*t.config.GamesPerMatch + i + 1

		first, second, seat1 := m.Strategy1, m.Strategy2, game.Player1
		if i%2 == 1 {
			first, second, seat1 = m.Strategy2, m.Strategy1, game.Player2
		}
		a1 := agent.New(first, m.Opening, game.Player1, t.seed(id, game.Player1)...)
		a2 := agent.New(second, m.Opening, game.Player2, t.seed(id, game.Player2)...)

		state := game.New(t.config.BoardSize, t.config.Walls)
		e := engine.NewLocal(state, a1, a2, engine.WithMaxMoves(t.config.MaxMoves))
		outcome, gameMetric, moveMetrics := e.Run()

		switch outcome.Winner {
		case 0:
			result.Draws++
		case seat1:
			result.Wins1++
		default:
			result.Wins2++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Opening:    m.Opening,
			Player1:    first,
			Player2:    second,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}
	log.Info().Msgf("%s: %s %d - %d %s (%d drawn)", m.Opening, m.Strategy1, result.Wins1, result.Wins2, m.Strategy2, result.Draws)
	return result, gameRecords, moveRecords
}

func (t *Tournament) seed(id int, p game.Player) []agent.Option {
	if t.config.Seed == 0 {
		return nil
	}
	return []agent.Option{agent.WithSeed(t.config.Seed + uint64(2*id) + uint64(p))}
}

// Rows returns two result rows per matchup, one from each strategy's side.
func (t *Tournament) Rows() []metrics.ResultRow {
	var rows []metrics.ResultRow
	for _, r := range t.Results() {
		rows = append(rows,
			metrics.ResultRow{Opening: r.Opening, Strategy: r.Strategy1, Opponent: r.Strategy2, Wins: r.Wins1, Games: t.config.GamesPerMatch},
			metrics.ResultRow{Opening: r.Opening, Strategy: r.Strategy2, Opponent: r.Strategy1, Wins: r.Wins2, Games: t.config.GamesPerMatch},
		)
	}
	return rows
}

// Write stores the results, the game and move records, and the setup in a new run
// directory under the configured output directory, which it returns.
func (t *Tournament) Write() (string, error) {
	writer, err := metrics.NewWriter(t.config.OutDir, t.RunID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	t.mu.Lock()
	setup := metrics.Setup{
		RunID:     t.RunID,
		Config:    t.config,
		StartTime: t.startTime,
		EndTime:   t.endTime,
		Duration:  t.endTime.Sub(t.startTime),
	}
	gameRecords, moveRecords := t.gameRecords, t.moveRecords
	t.mu.Unlock()

	if err := writer.WriteSetup(setup); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteResults(t.Rows()); err != nil {
		return "", fmt.Errorf("failed to write results: %w", err)
	}
	log.Info().Msg("stored results")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
