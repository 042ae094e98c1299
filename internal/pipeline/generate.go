// Package pipeline runs itinerary interpretation and derives summary
// statistics from the resulting booklet.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/tripbook/internal/logging"
	"github.com/theirongolddev/tripbook/internal/model"
)

// DefaultTimeout bounds a single generation when none is configured.
const DefaultTimeout = 120 * time.Second

var (
	// ErrEmptyInput is returned when there is no sheet text to interpret.
	ErrEmptyInput = errors.New("pipeline: no itinerary text to interpret")
	// ErrTimeout is returned when interpretation exceeds its deadline.
	ErrTimeout = errors.New("pipeline: interpretation timed out")
)

// Interpreter turns normalized sheet text into a validated booklet.
type Interpreter interface {
	Interpret(ctx context.Context, text string) (*model.BookletData, error)
}

// InterpreterFunc adapts a function to Interpreter.
type InterpreterFunc func(ctx context.Context, text string) (*model.BookletData, error)

// Interpret calls f.
func (f InterpreterFunc) Interpret(ctx context.Context, text string) (*model.BookletData, error) {
	return f(ctx, text)
}

// Generate interprets text under a deadline. A non-positive timeout uses
// DefaultTimeout. Either a complete booklet or an error is returned, never both.
func Generate(ctx context.Context, interp Interpreter, text string, timeout time.Duration) (*model.BookletData, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if interp == nil {
		return nil, errors.New("pipeline: no interpreter configured")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log := logging.For(logging.ComponentPipeline)
	start := time.Now()
	log.Info("generation started", "chars", len(text), "timeout", timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := interp.Interpret(ctx, text)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err == nil && data == nil {
		err = errors.New("pipeline: interpreter returned no data")
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		log.Warn("generation failed", "elapsed", elapsed, "kind", Classify(err).String(), "error", err)
		return nil, err
	}

	log.Info("generation finished",
		"elapsed", elapsed,
		"destination", data.Destination,
		"days", len(data.Days),
	)
	return data, nil
}
