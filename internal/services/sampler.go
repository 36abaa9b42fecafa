package services

import (
	"context"
	"errors"
	"log"
	"time"

	"outlands-pricer/internal/pricing"
	"outlands-pricer/internal/services/outlands"
)

// Searcher issues one vendor search per term.
type Searcher interface {
	Search(ctx context.Context, term string) (*outlands.SearchResponse, error)
}

// Recorder persists a retained result. It is optional.
type Recorder interface {
	Record(ctx context.Context, term string, result pricing.Result) error
}

// Sampler walks the search terms one at a time and averages the first page of each.
type Sampler struct {
	searcher Searcher
	pacer    Limiter
	recorder Recorder
}

// SamplerStats summarizes one run.
type SamplerStats struct {
	TotalProcessed  int
	SuccessRequests int
	FailedRequests  int
	EmptyResults    int
	TotalDuration   time.Duration
	AvgResponseTime float64 // milliseconds per request
}

func NewSampler(searcher Searcher, pacer Limiter, recorder Recorder) *Sampler {
	return &Sampler{
		searcher: searcher,
		pacer:    pacer,
		recorder: recorder,
	}
}

// Run returns the valid results in term order. Per-term failures are logged
// and skipped; cancellation returns whatever was gathered so far.
func (s *Sampler) Run(ctx context.Context, terms []string) ([]pricing.Result, SamplerStats) {
	var (
		results     []pricing.Result
		stats       SamplerStats
		requestTime time.Duration
	)
	startTime := time.Now()

	log.Printf("[sampler] starting run (%d terms)\n", len(terms))

	for i, term := range terms {
		if s.pacer != nil {
			if err := s.pacer.Wait(ctx); err != nil {
				log.Printf("[sampler] stopped before %q: %v\n", term, err)
				break
			}
		}
		stats.TotalProcessed++

		reqStart := time.Now()
		resp, err := s.searcher.Search(ctx, term)
		elapsed := time.Since(reqStart)
		requestTime += elapsed

		if err != nil {
			stats.FailedRequests++
			logFailure(i+1, len(terms), term, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		result := pricing.Aggregate(resp.Items)
		if !result.Valid() {
			stats.EmptyResults++
			log.Printf("[sampler] [%d/%d] - %s | no listings (%.2fs)\n", i+1, len(terms), term, elapsed.Seconds())
			continue
		}

		log.Printf("[sampler] [%d/%d] ✓ %s | avg %.2f from %d listings (%.2fs)\n",
			i+1, len(terms), term, result.AveragePrice, result.Count, elapsed.Seconds())

		if s.recorder != nil {
			if err := s.recorder.Record(ctx, term, result); err != nil {
				log.Printf("[sampler] [%d/%d] failed to record %s: %v\n", i+1, len(terms), term, err)
			}
		}

		stats.SuccessRequests++
		results = append(results, result)
	}

	stats.TotalDuration = time.Since(startTime)
	if stats.TotalProcessed > 0 {
		stats.AvgResponseTime = float64(requestTime.Milliseconds()) / float64(stats.TotalProcessed)
	}

	log.Printf("[sampler] run finished (ok:%d, empty:%d, failed:%d, took:%v)\n",
		stats.SuccessRequests, stats.EmptyResults, stats.FailedRequests, stats.TotalDuration)

	return results, stats
}

func logFailure(n, total int, term string, err error) {
	var statusErr *outlands.StatusError
	if errors.As(err, &statusErr) {
		log.Printf("[sampler] [%d/%d] ✗ %s - status %d, body: %s\n", n, total, term, statusErr.StatusCode, statusErr.Body)
		return
	}
	log.Printf("[sampler] [%d/%d] ✗ %s - %v\n", n, total, term, err)
}
