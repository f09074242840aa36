// Package ingest validates incoming titles and fans them out to a bounded
// set of generation workers.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"yuragi/internal/model"
)

// ErrEmptyTitle is returned for a title that is blank after trimming.
var ErrEmptyTitle = errors.New("empty title")

const (
	DefaultWorkers = 4
	DefaultBuffer  = 100
)

// Title is an ingested title and its metadata.
type Title struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTitle trims text and assigns it an ID.
func NewTitle(text string) (Title, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ReadTitles reads one title per line. Blank lines and lines starting
// with # are skipped.
func ReadTitles(r io.Reader) ([]Title, error) {
	var titles []Title
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := NewTitle(line)
		if err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read titles: %w", err)
	}
	return titles, nil
}

// Generator is the part of the engine the pipeline needs.
type Generator interface {
	Generate(ctx context.Context, title string) (model.CandidateSet, error)
}

// Result pairs a title with its candidates.
type Result struct {
	Title      Title
	Candidates model.CandidateSet
}

// Pipeline runs generation over many titles concurrently.
type Pipeline struct {
	gen     Generator
	workers int
	buffer  int
}

// NewPipeline returns a pipeline; non-positive sizes fall back to the
// defaults.
func NewPipeline(gen Generator, workers, buffer int) *Pipeline {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Pipeline{gen: gen, workers: workers, buffer: buffer}
}

// Run generates candidates for every title and hands each result to sink.
// sink is called from a single goroutine, in completion order. The first
// error cancels the remaining work.
func (p *Pipeline) Run(ctx context.Context, titles []Title, sink func(Result) error) error {
	g, ctx := errgroup.WithContext(ctx)
	in := make(chan Title, p.buffer)
	out := make(chan Result, p.buffer)

	g.Go(func() error {
		defer close(in)
		for _, t := range titles {
			select {
			case in <- t:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		workers.Go(func() error {
			for t := range in {
				if err := wctx.Err(); err != nil {
					return err
				}
				set, err := p.gen.Generate(wctx, t.Text)
				if err != nil {
					return fmt.Errorf("title %s: %w", t.ID, err)
				}
				select {
				case out <- Result{Title: t, Candidates: set}:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(out)
		return workers.Wait()
	})

	g.Go(func() error {
		for r := range out {
			if err := sink(r); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
