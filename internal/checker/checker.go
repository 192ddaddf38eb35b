package checker

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/proofline/internal/issue"
)

// Backend supplies issues for a text buffer.
// Implementations must be safe for concurrent calls.
type Backend interface {
	// Name identifies the backend for configuration and display.
	Name() string

	// Check returns the issues the backend flags in text.
	Check(ctx context.Context, text string) ([]issue.Issue, error)
}

// Pair runs a primary and a secondary backend over the same text.
// The primary backend is authoritative; its failure fails the call. A
// secondary failure degrades to an empty secondary list so one flaky backend
// cannot take down the whole correction surface.
type Pair struct {
	Primary   Backend
	Secondary Backend
}

// Check runs both backends concurrently and returns their result lists.
// Either backend may be nil, which yields an empty list for its side.
func (p Pair) Check(ctx context.Context, text string) (primary, secondary []issue.Issue, err error) {
	var wg sync.WaitGroup
	var priErr, secErr error

	if p.Primary != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			primary, priErr = p.Primary.Check(ctx, text)
		}()
	}
	if p.Secondary != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			secondary, secErr = p.Secondary.Check(ctx, text)
		}()
	}
	wg.Wait()

	if priErr != nil {
		return nil, nil, fmt.Errorf("primary %s: %w", p.Primary.Name(), priErr)
	}
	if secErr != nil {
		secondary = nil
	}
	return primary, secondary, nil
}

// Func adapts a plain function into a Backend.
type Func struct {
	BackendName string
	CheckFunc   func(ctx context.Context, text string) ([]issue.Issue, error)
}

// Name implements Backend.
func (f Func) Name() string { return f.BackendName }

// Check implements Backend.
func (f Func) Check(ctx context.Context, text string) ([]issue.Issue, error) {
	return f.CheckFunc(ctx, text)
}
