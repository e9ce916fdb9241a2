package domain

import "time"

// Pair is one (source, target) sentence pair from an aligned bilingual corpus.
type Pair struct {
	Source string
	Target string
}

// Stats holds the outcome of a streaming cleaning run.
type Stats struct {
	Read      int
	Kept      int
	Dropped   int
	Malformed int
	// RejectedBy counts dropped pairs per filter name.
	RejectedBy     map[string]int
	BytesProcessed int64
	ProcessingTime time.Duration
}

// NewStats returns a Stats value with the rejection map initialized.
func NewStats() Stats {
	return Stats{RejectedBy: make(map[string]int)}
}

// Merge folds other into s. Used when combining per-worker stats.
func (s *Stats) Merge(other Stats) {
	s.Read += other.Read
	s.Kept += other.Kept
	s.Dropped += other.Dropped
	s.Malformed += other.Malformed
	s.BytesProcessed += other.BytesProcessed
	for name, n := range other.RejectedBy {
		s.RejectedBy[name] += n
	}
}
