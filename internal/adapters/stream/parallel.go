package stream

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// batchJob is one chunk of pairs handed to a worker.
type batchJob struct {
	id    int
	pairs []domain.Pair
	bytes int64
}

// batchResult is the outcome of one processed chunk. kept preserves the
// input order of the surviving pairs inside the chunk.
type batchResult struct {
	id    int
	kept  []domain.Pair
	stats domain.Stats
}

// cleanParallel shards the pair stream over a fixed worker pool. Workers
// share the (immutable) pipeline; the collector reassembles chunks by id so
// output order matches input order exactly.
func (pr *Processor) cleanParallel(ctx context.Context, src pairSource, emit pairSink) (domain.Stats, error) {
	start := time.Now()

	jobs := make(chan batchJob, pr.config.Workers)
	results := make(chan batchResult, pr.config.Workers)

	var wg sync.WaitGroup
	for i := 0; i < pr.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- pr.processBatch(job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reassemble chunks in id order and write survivors.
	type collected struct {
		stats domain.Stats
		err   error
	}
	done := make(chan collected, 1)
	go func() {
		stats := domain.NewStats()
		pending := make(map[int]batchResult)
		nextID := 0
		var werr error
		for r := range results {
			pending[r.id] = r
			for {
				rr, ok := pending[nextID]
				if !ok {
					break
				}
				delete(pending, nextID)
				nextID++
				stats.Merge(rr.stats)
				if werr != nil {
					continue
				}
				for _, p := range rr.kept {
					if err := emit(p); err != nil {
						werr = err
						break
					}
				}
			}
		}
		done <- collected{stats: stats, err: werr}
	}()

	// Producer: read pairs into batches on the current goroutine.
	prod := domain.NewStats()
	var (
		batch   []domain.Pair
		batchN  int64
		chunkID int
		readErr error
	)
	sendBatch := func() bool {
		if len(batch) == 0 {
			return true
		}
		job := batchJob{id: chunkID, pairs: batch, bytes: batchN}
		select {
		case jobs <- job:
			chunkID++
			batch = nil
			batchN = 0
			return true
		case <-ctx.Done():
			readErr = ctx.Err()
			return false
		}
	}

producing:
	for {
		select {
		case <-ctx.Done():
			readErr = ctx.Err()
			break producing
		default:
		}

		p, n, err := src.Next()
		if err == io.EOF {
			sendBatch()
			break
		}
		if err == errMalformed {
			prod.Read++
			prod.Malformed++
			prod.BytesProcessed += n
			pr.logger.Warn("Dropping malformed pair line", "line", p.Source)
			continue
		}
		if err != nil {
			readErr = err
			break
		}

		batch = append(batch, p)
		batchN += n
		if len(batch) >= pr.config.BatchSize {
			if !sendBatch() {
				break
			}
		}
	}

	close(jobs)
	c := <-done

	stats := c.stats
	stats.Merge(prod)
	stats.ProcessingTime = time.Since(start)

	if readErr != nil {
		return stats, readErr
	}
	return stats, c.err
}

// processBatch runs the pipeline over one chunk of pairs.
func (pr *Processor) processBatch(job batchJob) batchResult {
	stats := domain.NewStats()
	stats.Read = len(job.pairs)
	stats.BytesProcessed = job.bytes

	kept := make([]domain.Pair, 0, len(job.pairs))
	for _, p := range job.pairs {
		out, rejectedBy, ok := pr.pipeline.Apply(p)
		if !ok {
			stats.Dropped++
			stats.RejectedBy[rejectedBy]++
			continue
		}
		kept = append(kept, out)
		stats.Kept++
	}

	return batchResult{id: job.id, kept: kept, stats: stats}
}
