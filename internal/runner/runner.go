package runner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"signalbench/internal/models"
)

// Result carries the outcome shape of one task execution. The metrics mirror
// what the reporting path persists; how they are produced is the execution
// engine's business.
type Result struct {
	Succeeded       bool
	AverageDiff     float64
	Output          string
	PercentCorrect  int
	PredictionSize  int
	ProfitLossFloat float64
	ProfitLossInt   int64
	RunTime         float64
	Score           int
}

// Runner executes one task. The real training/evaluation engine lives
// outside this system; only the result shape is modeled here.
type Runner interface {
	Run(ctx context.Context, task *models.Task) (*Result, error)
}

// Mock produces plausible result metrics without touching any trading data.
// The seed makes runs reproducible in tests.
type Mock struct {
	rng *rand.Rand
}

func NewMock(seed int64) *Mock {
	return &Mock{rng: rand.New(rand.NewSource(seed))}
}

func (m *Mock) Run(ctx context.Context, task *models.Task) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	started := time.Now()
	percentCorrect := 40 + m.rng.Intn(60)
	predictionSize := 50 + m.rng.Intn(450)
	profit := (m.rng.Float64() - 0.4) * 1000

	return &Result{
		Succeeded:       true,
		AverageDiff:     m.rng.Float64() * 0.1,
		Output:          fmt.Sprintf("mock run for task %d: %d predictions", task.ID, predictionSize),
		PercentCorrect:  percentCorrect,
		PredictionSize:  predictionSize,
		ProfitLossFloat: profit,
		ProfitLossInt:   int64(profit),
		RunTime:         time.Since(started).Seconds(),
		Score:           percentCorrect + predictionSize/10,
	}, nil
}
