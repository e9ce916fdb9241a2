package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_corpus_cleaner/internal/ports"
)

// Config defines configuration for warming up the filter and normalizer
// chains before a corpus run, so regex engines, script tables and buffer
// pools are hot when the first real line arrives.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles warmup for registered pipeline units.
type Manager struct {
	logger      ports.Logger
	filters     []ports.Filter
	normalizers []ports.PairNormalizer
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{logger: logger, config: config}
}

// RegisterFilter adds a filter to be warmed up.
func (m *Manager) RegisterFilter(f ports.Filter) {
	m.filters = append(m.filters, f)
}

// RegisterNormalizer adds a pair normalizer to be warmed up.
func (m *Manager) RegisterNormalizer(n ports.PairNormalizer) {
	m.normalizers = append(m.normalizers, n)
}

// WarmUp runs the warmup process for all registered units.
func (m *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	m.logger.Info("Starting pipeline warmup",
		"filters", len(m.filters),
		"normalizers", len(m.normalizers),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
	)

	warmupCtx := ctx
	if m.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, m.config.Duration)
		defer cancel()
	}

	samples := samplePairs()

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < m.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				p := samples[j%len(samples)]
				for _, n := range m.normalizers {
					p = n.NormalizePair(p)
				}
				for _, f := range m.filters {
					if _, ok := f.Filter(p); !ok {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		m.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	m.logger.Info("Pipeline warmup completed",
		"duration", time.Since(startTime),
	)
}

// samplePairs builds a small mixed-script corpus covering the paths the
// filters branch on: plain English, Chinese, mixed scripts, stray
// punctuation and long repeated tokens.
func samplePairs() []domain.Pair {
	return []domain.Pair{
		{Source: "the quick brown fox jumps over the lazy dog", Target: "敏捷的棕色狐狸跳过懒狗"},
		{Source: "hello world", Target: "你好世界"},
		{Source: "model v2 release notes", Target: "model v2 发布说明"},
		{Source: "“quoted text", Target: "（未配对"},
		{Source: strings.Repeat("a", 50), Target: strings.Repeat("b", 50)},
		{Source: "", Target: "non empty"},
	}
}
