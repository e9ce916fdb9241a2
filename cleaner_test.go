// cleaner_test.go
package corpuscleaner

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_cleaner/internal/adapters/stream"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/filter"
	"github.com/baditaflorin/go_corpus_cleaner/internal/core/normalize"
)

func quiet() Option {
	return func(cfg *pipelineConfig) {
		cfg.logger = logger.NewNop()
	}
}

func TestPipelineChain(t *testing.T) {
	lenFilter, err := filter.NewLengthFilter(filter.LengthConfig{SourceMin: 1, SourceMax: 10})
	if err != nil {
		t.Fatal(err)
	}

	p, err := New(
		quiet(),
		WithFilter(filter.NewEmptyFilter()),
		WithFilter(lenFilter),
		WithFilter(filter.NewSameFilter(true)),
	)
	if err != nil {
		t.Fatal(err)
	}

	pairs := []domain.Pair{
		{Source: "a", Target: "a"},
		{Source: "hello", Target: "world"},
		{Source: "", Target: "x"},
	}

	var kept []domain.Pair
	for _, in := range pairs {
		if out, ok := p.Run(in); ok {
			kept = append(kept, out)
		}
	}

	want := []domain.Pair{{Source: "hello", Target: "world"}}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("survivors (-want +got):\n%s", diff)
	}
}

func TestPipelineRejectionAttribution(t *testing.T) {
	p, err := New(
		quiet(),
		WithFilter(filter.NewEmptyFilter()),
		WithFilter(filter.NewSameFilter(true)),
	)
	if err != nil {
		t.Fatal(err)
	}

	_, rejectedBy, ok := p.Apply(domain.Pair{Source: "dup", Target: "dup"})
	if ok {
		t.Fatal("kept a duplicate pair")
	}
	if rejectedBy != "same" {
		t.Errorf("rejectedBy = %q, want %q", rejectedBy, "same")
	}
}

func TestPipelineNormalizesBeforeFiltering(t *testing.T) {
	// After whitespace normalization both sides collapse to the same string,
	// so SameFilter must see the normalized form.
	p, err := New(
		quiet(),
		WithTextNormalizer(normalize.NewSpaceNormalizer()),
		WithFilter(filter.NewSameFilter(false)),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := p.Run(domain.Pair{Source: "a   b", Target: "a b"}); ok {
		t.Error("kept a pair identical after normalization")
	}
}

func TestNewDefaultRecipe(t *testing.T) {
	p, err := NewDefault(DefaultRecipeConfig("en", "zh"), quiet())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		p    domain.Pair
		keep bool
	}{
		{"good pair", domain.Pair{Source: "the quick brown fox", Target: "敏捷的棕色狐狸"}, true},
		{"empty source", domain.Pair{Source: "", Target: "好"}, false},
		{"all ascii", domain.Pair{Source: "hello", Target: "world"}, false},
		{"identical", domain.Pair{Source: "你好", Target: "你好"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := p.Apply(tc.p); ok != tc.keep {
				t.Errorf("keep = %v, want %v", ok, tc.keep)
			}
		})
	}
}

func TestNewDefaultRequiresLangs(t *testing.T) {
	if _, err := NewDefault(RecipeConfig{SourceLang: "en"}, quiet()); err == nil {
		t.Error("accepted a recipe without a target language")
	}
}

func TestPipelineStreaming(t *testing.T) {
	p, err := NewDefault(DefaultRecipeConfig("en", "zh"), quiet())
	if err != nil {
		t.Fatal(err)
	}
	processor, err := p.NewProcessor(stream.DefaultProcessorConfig())
	if err != nil {
		t.Fatal(err)
	}

	in := strings.Join([]string{
		"the quick brown fox\t敏捷的棕色狐狸",
		"hello\tworld",
		"\t你好",
	}, "\n") + "\n"

	var out strings.Builder
	stats, err := processor.CleanTSV(context.Background(), strings.NewReader(in), &out)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), "the quick brown fox\t敏捷的棕色狐狸\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if stats.Read != 3 || stats.Kept != 1 || stats.Dropped != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestWarmupOption(t *testing.T) {
	// Warmup must leave the pipeline fully usable.
	p, err := NewDefault(DefaultRecipeConfig("en", "zh"), quiet(), WithWarmup())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Run(domain.Pair{Source: "fast red car", Target: "红色快车"}); !ok {
		t.Error("pipeline dropped a good pair after warmup")
	}
}
