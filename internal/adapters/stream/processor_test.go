package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

// dropEmpty rejects pairs with an empty side, mirroring the smallest useful
// filter chain.
type dropEmpty struct{}

func (dropEmpty) Apply(p domain.Pair) (domain.Pair, string, bool) {
	if strings.TrimSpace(p.Source) == "" || strings.TrimSpace(p.Target) == "" {
		return domain.Pair{}, "empty", false
	}
	return p, "", true
}

func newTestProcessor(t *testing.T, config Config) *Processor {
	t.Helper()
	pr, err := NewProcessor(dropEmpty{}, logger.NewNop(), config)
	if err != nil {
		t.Fatal(err)
	}
	return pr
}

func TestCleanTSV(t *testing.T) {
	pr := newTestProcessor(t, DefaultProcessorConfig())

	in := "a\tb\nmalformed line\nc\t\nd\te\n"
	var out bytes.Buffer
	stats, err := pr.CleanTSV(context.Background(), strings.NewReader(in), &out)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), "a\tb\nd\te\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if stats.Read != 4 || stats.Kept != 2 || stats.Dropped != 1 || stats.Malformed != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.RejectedBy["empty"] != 1 {
		t.Errorf("RejectedBy = %v", stats.RejectedBy)
	}
}

func TestCleanAligned(t *testing.T) {
	pr := newTestProcessor(t, DefaultProcessorConfig())

	src := "hello\n\nworld\n"
	tgt := "你好\nx\n世界\n"
	var srcOut, tgtOut bytes.Buffer
	stats, err := pr.CleanAligned(context.Background(),
		strings.NewReader(src), strings.NewReader(tgt), &srcOut, &tgtOut)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := srcOut.String(), "hello\nworld\n"; got != want {
		t.Errorf("source output = %q, want %q", got, want)
	}
	if got, want := tgtOut.String(), "你好\n世界\n"; got != want {
		t.Errorf("target output = %q, want %q", got, want)
	}
	if stats.Read != 3 || stats.Kept != 2 || stats.Dropped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestCleanAlignedLengthMismatch(t *testing.T) {
	pr := newTestProcessor(t, DefaultProcessorConfig())

	var srcOut, tgtOut bytes.Buffer
	_, err := pr.CleanAligned(context.Background(),
		strings.NewReader("a\nb\nc\n"), strings.NewReader("x\ny\n"), &srcOut, &tgtOut)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestCleanTSVParallelMatchesSequential(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 1000; i++ {
		switch i % 5 {
		case 0:
			in.WriteString("\tmissing source\n")
		case 1:
			in.WriteString("malformed\n")
		default:
			fmt.Fprintf(&in, "source %d\ttarget %d\n", i, i)
		}
	}

	seq := newTestProcessor(t, Config{Workers: 1, BatchSize: DefaultBatchSize})
	par := newTestProcessor(t, Config{Workers: 4, BatchSize: 32})

	var seqOut, parOut bytes.Buffer
	seqStats, err := seq.CleanTSV(context.Background(), strings.NewReader(in.String()), &seqOut)
	if err != nil {
		t.Fatal(err)
	}
	parStats, err := par.CleanTSV(context.Background(), strings.NewReader(in.String()), &parOut)
	if err != nil {
		t.Fatal(err)
	}

	if seqOut.String() != parOut.String() {
		t.Error("parallel output differs from sequential output")
	}
	if diff := cmp.Diff(seqStats, parStats, cmpopts.IgnoreFields(domain.Stats{}, "ProcessingTime")); diff != "" {
		t.Errorf("stats differ (-sequential +parallel):\n%s", diff)
	}
}

func TestCleanTSVCancelled(t *testing.T) {
	pr := newTestProcessor(t, DefaultProcessorConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := pr.CleanTSV(ctx, strings.NewReader("a\tb\n"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestProcessorConfigErrors(t *testing.T) {
	if _, err := NewProcessor(dropEmpty{}, logger.NewNop(), Config{Workers: 0, BatchSize: 1}); err == nil {
		t.Error("accepted zero workers")
	}
	if _, err := NewProcessor(dropEmpty{}, logger.NewNop(), Config{Workers: 1, BatchSize: 0}); err == nil {
		t.Error("accepted zero batch size")
	}
	if _, err := NewProcessor(nil, logger.NewNop(), DefaultProcessorConfig()); err == nil {
		t.Error("accepted nil pipeline")
	}
}

func BenchmarkCleanTSV(b *testing.B) {
	pr, err := NewProcessor(dropEmpty{}, logger.NewNop(), DefaultProcessorConfig())
	if err != nil {
		b.Fatal(err)
	}

	var in strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&in, "source sentence %d\ttarget sentence %d\n", i, i)
	}
	data := in.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out bytes.Buffer
		if _, err := pr.CleanTSV(context.Background(), strings.NewReader(data), &out); err != nil {
			b.Fatal(err)
		}
	}
}
