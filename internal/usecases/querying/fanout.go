package querying

import (
	"context"
	"runtime"
	"sync"

	"github.com/vfg2006/sales-range-proxy/internal/domain"
	"github.com/vfg2006/sales-range-proxy/pkg/log"
	"github.com/vfg2006/sales-range-proxy/pkg/metrics"
)

// FanOut dispara uma busca por bucket e devolve os resultados na ordem dos buckets
type FanOut struct {
	maxConcurrency int // 0 = sem limite
	metrics        *metrics.Collector
}

func NewFanOut(maxConcurrency int, collector *metrics.Collector) *FanOut {
	if maxConcurrency < 0 {
		maxConcurrency = 0
	}

	return &FanOut{
		maxConcurrency: maxConcurrency,
		metrics:        collector,
	}
}

// Run espera todos os buckets terminarem. A falha de um bucket não cancela os demais.
func (f *FanOut) Run(ctx context.Context, buckets []domain.DayBucket, fetch FetchFunc) []BucketResult {
	results := make([]BucketResult, len(buckets))

	var semaphore chan struct{}
	if f.maxConcurrency > 0 {
		semaphore = make(chan struct{}, f.maxConcurrency)
	}

	var wg sync.WaitGroup

	for i, bucket := range buckets {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if semaphore != nil {
				semaphore <- struct{}{}
				defer func() { <-semaphore }()
			}

			// Cada goroutine escreve apenas na sua posição
			results[i] = safeFetch(ctx, bucket, fetch)
		}()
	}

	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	f.metrics.ObserveFanOut(len(buckets), failed)

	return results
}

func safeFetch(ctx context.Context, bucket domain.DayBucket, fetch FetchFunc) (result BucketResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]

			log.ForContext(ctx).WithFields(log.Fields{
				"error":       recovered,
				"day":         dayOf(bucket),
				"stack_trace": string(stack),
			}).Error("sales: panic ao buscar bucket")

			result = BucketResult{Bucket: bucket, Err: newPanicError(bucket, recovered)}
		}
	}()

	return fetch(ctx, bucket)
}
