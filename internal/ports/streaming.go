package ports

import (
	"context"
	"io"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// PairProcessor defines the interface for streaming corpus cleaning.
type PairProcessor interface {
	// CleanAligned reads two aligned line streams, runs each pair through the
	// pipeline, and writes surviving pairs to the corresponding writers.
	CleanAligned(ctx context.Context, src, tgt io.Reader, srcOut, tgtOut io.Writer) (domain.Stats, error)

	// CleanTSV reads one tab-joined "src\ttgt" stream and writes surviving
	// pairs in the same shape. Lines without exactly one tab are counted as
	// malformed and dropped.
	CleanTSV(ctx context.Context, in io.Reader, out io.Writer) (domain.Stats, error)
}
