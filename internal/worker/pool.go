// Package worker runs independent position searches on a pool of goroutines.
// Every work item carries its own position copy, so workers share no state.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/errors"
	"github.com/donessie94/terminalChessAI/internal/search"
)

// WorkItem is a position to search.
type WorkItem struct {
	Position chess.Position
	Depth    int
	Name     string // label for reports
	Index    int    // position in the caller's list
}

// ProcessResult is the outcome of searching one work item.
type ProcessResult struct {
	Index  int
	Name   string
	Result search.Result
	// Reference is the exhaustive minimax result when verification is on.
	Reference *search.Result
	// Mismatch is set when the search and its reference disagree.
	Mismatch bool
	// Error wraps ErrSearchCancelled for items the pool never searched.
	Error error
}

// Cancelled reports whether the item was skipped because the pool stopped.
func (r ProcessResult) Cancelled() bool {
	return errors.Is(r.Error, errors.ErrSearchCancelled)
}

// ProcessFunc searches one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	workers int
	buffer  int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	ctx     context.Context
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result queues.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// WithContext stops the pool once ctx is done.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		p.ctx = ctx
	}
}

// NewPool creates a pool around process. Without options it has one worker
// and queues of ten.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, process: process, ctx: context.Background()}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.items {
		if p.Stopped() {
			p.results <- cancelled(item)
			continue
		}
		p.results <- p.process(item)
	}
}

func cancelled(item WorkItem) ProcessResult {
	return ProcessResult{
		Index: item.Index,
		Name:  item.Name,
		Error: errors.Wrapf(errors.ErrSearchCancelled, "position %q", item.Name),
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Stop makes the workers report every item they have not yet started as
// cancelled. Searches already running are not interrupted.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called or the pool's context is done.
func (p *Pool) Stopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close stops accepting items, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// RunAll searches every item on a new pool and returns one result per item,
// ordered by Index. Once ctx is done the pool is stopped; searches in flight
// finish and the remaining items come back cancelled.
func RunAll(ctx context.Context, items []WorkItem, process ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(process, append(opts, WithContext(ctx))...)
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
