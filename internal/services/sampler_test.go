package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"outlands-pricer/internal/pricing"
	"outlands-pricer/internal/services/outlands"

	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	responses map[string]*outlands.SearchResponse
	errs      map[string]error
	calls     []string
	onSearch  func(term string)
}

func (f *fakeSearcher) Search(ctx context.Context, term string) (*outlands.SearchResponse, error) {
	f.calls = append(f.calls, term)
	if f.onSearch != nil {
		f.onSearch(term)
	}
	if err, ok := f.errs[term]; ok {
		return nil, err
	}
	if resp, ok := f.responses[term]; ok {
		return resp, nil
	}
	return &outlands.SearchResponse{}, nil
}

type countingLimiter struct{ waits int }

func (c *countingLimiter) Wait(ctx context.Context) error {
	c.waits++
	return ctx.Err()
}

type memRecorder struct {
	terms []string
	err   error
}

func (m *memRecorder) Record(ctx context.Context, term string, result pricing.Result) error {
	m.terms = append(m.terms, term)
	return m.err
}

func listings(name string, prices ...float64) *outlands.SearchResponse {
	resp := &outlands.SearchResponse{}
	for _, p := range prices {
		resp.Items = append(resp.Items, outlands.Listing{Name: name, Price: p})
	}
	return resp
}

func TestSamplerRunKeepsOrderAndSkipsFailures(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[string]*outlands.SearchResponse{
			"a": listings("Air aspect core", 10, 20),
			"c": listings("Chromatic core", 5),
			"e": listings("Earth aspect core", 1, 2, 3),
		},
		errs: map[string]error{
			"b": errors.New("connection reset"),
			"d": &outlands.StatusError{StatusCode: 500, Body: "boom"},
		},
	}
	limiter := &countingLimiter{}
	recorder := &memRecorder{}

	results, stats := NewSampler(searcher, limiter, recorder).
		Run(context.Background(), []string{"a", "b", "c", "d", "e", "f"})

	require.Equal(t, []pricing.Result{
		{Name: "Air aspect core", AveragePrice: 15, Count: 2},
		{Name: "Chromatic core", AveragePrice: 5, Count: 1},
		{Name: "Earth aspect core", AveragePrice: 2, Count: 3},
	}, results)

	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, searcher.calls)
	require.Equal(t, 6, limiter.waits)
	require.Equal(t, []string{"a", "c", "e"}, recorder.terms)

	require.Equal(t, 6, stats.TotalProcessed)
	require.Equal(t, 3, stats.SuccessRequests)
	require.Equal(t, 2, stats.FailedRequests)
	require.Equal(t, 1, stats.EmptyResults)
}

func TestSamplerRecorderErrorKeepsRow(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[string]*outlands.SearchResponse{"a": listings("Fire aspect core", 100, 200)},
	}
	recorder := &memRecorder{err: errors.New("db down")}

	results, _ := NewSampler(searcher, &countingLimiter{}, recorder).Run(context.Background(), []string{"a"})
	require.Equal(t, []pricing.Result{{Name: "Fire aspect core", AveragePrice: 150, Count: 2}}, results)
}

func TestSamplerZeroPriceIsExcluded(t *testing.T) {
	searcher := &fakeSearcher{
		responses: map[string]*outlands.SearchResponse{"free": listings("Gift", 0, 0)},
	}

	results, stats := NewSampler(searcher, &countingLimiter{}, nil).Run(context.Background(), []string{"free"})
	require.Empty(t, results)
	require.Equal(t, 1, stats.EmptyResults)
}

func TestSamplerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	searcher := &fakeSearcher{
		responses: map[string]*outlands.SearchResponse{
			"a": listings("A", 1),
			"b": listings("B", 2),
		},
		onSearch: func(term string) {
			if term == "a" {
				cancel()
			}
		},
	}

	results, stats := NewSampler(searcher, &countingLimiter{}, nil).Run(ctx, []string{"a", "b", "c"})
	require.Equal(t, []pricing.Result{{Name: "A", AveragePrice: 1, Count: 1}}, results)
	require.Equal(t, []string{"a"}, searcher.calls)
	require.Equal(t, 1, stats.TotalProcessed)
}

func TestNewPacerWaitsBeforeFirstRequest(t *testing.T) {
	pacer := NewPacer(1, 50*time.Millisecond)

	start := time.Now()
	require.NoError(t, pacer.Wait(context.Background()))
	require.NoError(t, pacer.Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestNewPacerZeroIntervalDoesNotBlock(t *testing.T) {
	pacer := NewPacer(0, 0)

	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}
	require.Less(t, time.Since(start), 50*time.Millisecond)
}
