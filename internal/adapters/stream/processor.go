// Package stream implements the line-oriented corpus pipeline driver. It
// reads aligned (or tab-joined) sentence streams, runs every pair through a
// normalizer+filter pipeline, and writes the survivors, keeping per-filter
// rejection stats. The driver owns all I/O; the pipeline itself never blocks.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/normalize"
	"github.com/baditaflorin/go_corpus_cleaner/internal/pool"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
)

// Pipeline applies the configured normalizer and filter chain to one pair.
// rejectedBy names the filter that discarded the pair when ok=false.
type Pipeline interface {
	Apply(p domain.Pair) (out domain.Pair, rejectedBy string, ok bool)
}

const (
	// DefaultBatchSize is the number of pairs handed to a worker at once in
	// parallel mode.
	DefaultBatchSize = 256

	// maxLineSize bounds a single corpus line. Longer lines fail the scan.
	maxLineSize = 1 << 20
)

// ErrLengthMismatch is returned when two aligned streams do not hold the
// same number of lines.
var ErrLengthMismatch = errors.New("aligned streams have different line counts")

// errMalformed marks a tab-joined line without exactly two fields.
var errMalformed = errors.New("malformed pair line")

// Config holds configuration for the corpus processor.
type Config struct {
	// Workers sets the number of pipeline goroutines. 1 processes pairs
	// sequentially; higher values shard the stream into batches while
	// preserving output order.
	Workers int
	// BatchSize is the number of pairs per worker batch in parallel mode.
	BatchSize int
}

// DefaultProcessorConfig returns a default configuration.
func DefaultProcessorConfig() Config {
	return Config{Workers: 1, BatchSize: DefaultBatchSize}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.BatchSize < 1 {
		return errors.New("batch size must be at least 1")
	}
	return nil
}

var _ ports.PairProcessor = (*Processor)(nil)

// Processor streams corpus pairs through a pipeline. Safe for concurrent use
// on independent streams.
type Processor struct {
	pipeline Pipeline
	logger   ports.Logger
	config   Config
	buffers  *pool.BufferPool
}

// NewProcessor creates a corpus processor, failing fast on invalid config.
func NewProcessor(pipeline Pipeline, logger ports.Logger, config Config) (*Processor, error) {
	if pipeline == nil {
		return nil, errors.New("processor needs a pipeline")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Processor{
		pipeline: pipeline,
		logger:   logger,
		config:   config,
		buffers:  pool.NewBufferPool(4096),
	}, nil
}

// pairSource yields successive pairs from a corpus stream. Next returns
// io.EOF at end of stream and errMalformed for undecodable lines (the raw
// line is carried in Source for diagnostics).
type pairSource interface {
	Next() (p domain.Pair, bytes int64, err error)
}

// pairSink consumes surviving pairs.
type pairSink func(p domain.Pair) error

type alignedSource struct {
	src, tgt *bufio.Scanner
}

func newAlignedSource(src, tgt io.Reader) *alignedSource {
	return &alignedSource{src: newScanner(src), tgt: newScanner(tgt)}
}

func (s *alignedSource) Next() (domain.Pair, int64, error) {
	srcOK := s.src.Scan()
	tgtOK := s.tgt.Scan()
	if !srcOK && !tgtOK {
		if err := firstErr(s.src.Err(), s.tgt.Err()); err != nil {
			return domain.Pair{}, 0, err
		}
		return domain.Pair{}, 0, io.EOF
	}
	if srcOK != tgtOK {
		if err := firstErr(s.src.Err(), s.tgt.Err()); err != nil {
			return domain.Pair{}, 0, err
		}
		return domain.Pair{}, 0, ErrLengthMismatch
	}
	srcLine, tgtLine := s.src.Text(), s.tgt.Text()
	return domain.Pair{Source: srcLine, Target: tgtLine}, int64(len(srcLine) + len(tgtLine)), nil
}

type tsvSource struct {
	sc *bufio.Scanner
}

func newTSVSource(r io.Reader) *tsvSource {
	return &tsvSource{sc: newScanner(r)}
}

func (s *tsvSource) Next() (domain.Pair, int64, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return domain.Pair{}, 0, err
		}
		return domain.Pair{}, 0, io.EOF
	}
	line := s.sc.Text()
	p, ok := normalize.SplitPair(line)
	if !ok {
		return domain.Pair{Source: line}, int64(len(line)), errMalformed
	}
	return p, int64(len(line)), nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// CleanAligned reads two aligned line streams and writes surviving pairs to
// the corresponding writers.
func (pr *Processor) CleanAligned(ctx context.Context, src, tgt io.Reader, srcOut, tgtOut io.Writer) (domain.Stats, error) {
	srcW := bufio.NewWriter(srcOut)
	tgtW := bufio.NewWriter(tgtOut)

	sink := func(p domain.Pair) error {
		if _, err := srcW.WriteString(p.Source); err != nil {
			return err
		}
		if err := srcW.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := tgtW.WriteString(p.Target); err != nil {
			return err
		}
		return tgtW.WriteByte('\n')
	}

	stats, err := pr.clean(ctx, newAlignedSource(src, tgt), sink)
	if err != nil {
		return stats, err
	}
	if err := firstErr(srcW.Flush(), tgtW.Flush()); err != nil {
		return stats, err
	}
	return stats, nil
}

// CleanTSV reads one tab-joined "src\ttgt" stream and writes surviving pairs
// in the same shape. Lines without exactly one tab are counted as malformed,
// logged, and dropped.
func (pr *Processor) CleanTSV(ctx context.Context, in io.Reader, out io.Writer) (domain.Stats, error) {
	w := bufio.NewWriter(out)

	sink := func(p domain.Pair) error {
		buf := pr.buffers.Get()
		*buf = append(*buf, p.Source...)
		*buf = append(*buf, '\t')
		*buf = append(*buf, p.Target...)
		*buf = append(*buf, '\n')
		_, err := w.Write(*buf)
		pr.buffers.Put(buf)
		return err
	}

	stats, err := pr.clean(ctx, newTSVSource(in), sink)
	if err != nil {
		return stats, err
	}
	if err := w.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

// clean drives the pipeline over a pair stream. Dispatches to the parallel
// path when more than one worker is configured.
func (pr *Processor) clean(ctx context.Context, src pairSource, emit pairSink) (domain.Stats, error) {
	if pr.config.Workers > 1 {
		return pr.cleanParallel(ctx, src, emit)
	}

	start := time.Now()
	stats := domain.NewStats()

	for {
		select {
		case <-ctx.Done():
			stats.ProcessingTime = time.Since(start)
			return stats, ctx.Err()
		default:
		}

		p, n, err := src.Next()
		if err == io.EOF {
			break
		}
		if err == errMalformed {
			stats.Read++
			stats.Malformed++
			stats.BytesProcessed += n
			pr.logger.Warn("Dropping malformed pair line", "line", p.Source)
			continue
		}
		if err != nil {
			stats.ProcessingTime = time.Since(start)
			return stats, err
		}

		stats.Read++
		stats.BytesProcessed += n

		out, rejectedBy, ok := pr.pipeline.Apply(p)
		if !ok {
			stats.Dropped++
			stats.RejectedBy[rejectedBy]++
			continue
		}
		if err := emit(out); err != nil {
			stats.ProcessingTime = time.Since(start)
			return stats, err
		}
		stats.Kept++
	}

	stats.ProcessingTime = time.Since(start)
	return stats, nil
}
