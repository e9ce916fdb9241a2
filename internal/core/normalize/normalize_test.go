package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/baditaflorin/go_corpus_cleaner/internal/core/domain"
)

func TestSpaceNormalizer(t *testing.T) {
	n := NewSpaceNormalizer()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse runs", "hello   world", "hello world"},
		{"trim", "  hello world  ", "hello world"},
		{"fullwidth space", "hello　world", "hello world"},
		{"non-breaking space", "hello world", "hello world"},
		{"space between CJK removed", "你好 世界", "你好世界"},
		{"space next to CJK removed", "你好 hello", "你好hello"},
		{"ascii space kept", "hello world", "hello world"},
		{"mixed", "  你好 　 世界  hello   world ", "你好世界hello world"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNoPrintNormalizer(t *testing.T) {
	n := NewNoPrintNormalizer()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"control chars stripped", "a\x00b\x1fc", "abc"},
		{"del stripped", "a\x7fb", "ab"},
		{"tab preserved", "a\tb", "a\tb"},
		{"newline stripped", "a\nb", "ab"},
		{"printable untouched", "hello 世界!", "hello 世界!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"hello   world",
		"  你好 世界 ",
		"a\x00b\x1fc\td",
		"ｈｅｌｌｏ",
		"plain",
		"",
	}
	normalizers := map[string]interface {
		Normalize(string) string
	}{
		"space":   NewSpaceNormalizer(),
		"noprint": NewNoPrintNormalizer(),
		"nfkc":    NewNFKCNormalizer(),
	}
	for name, n := range normalizers {
		for _, in := range inputs {
			once := n.Normalize(in)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("%s not idempotent on %q: %q != %q", name, in, once, twice)
			}
		}
	}
}

func TestNFKCNormalizer(t *testing.T) {
	n := NewNFKCNormalizer()
	if got := n.Normalize("ｈｅｌｌｏ"); got != "hello" {
		t.Errorf("fullwidth fold = %q, want %q", got, "hello")
	}
}

func TestHant2HansNormalizer(t *testing.T) {
	p := domain.Pair{Source: "traditional 漢語", Target: "漢語考試"}

	both := NewHant2HansNormalizer(true, true)
	got := both.NormalizePair(p)
	want := domain.Pair{Source: "traditional 汉语", Target: "汉语考试"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("both sides (-want +got):\n%s", diff)
	}

	targetOnly := NewHant2HansNormalizer(false, true)
	got = targetOnly.NormalizePair(p)
	want = domain.Pair{Source: "traditional 漢語", Target: "汉语考试"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("target only (-want +got):\n%s", diff)
	}
}

func TestForPair(t *testing.T) {
	n := ForPair(NewSpaceNormalizer(), true, false)
	got := n.NormalizePair(domain.Pair{Source: "a   b", Target: "c   d"})
	want := domain.Pair{Source: "a b", Target: "c   d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTabJoined(t *testing.T) {
	n := TabJoined(NewPairPunctNormalizer(), nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"balances both sides", "“hello\tworld", "hello\tworld"},
		{"well-formed untouched", "hello\tworld", "hello\tworld"},
		{"no tab returned unchanged", "no tab here", "no tab here"},
		{"extra tabs returned unchanged", "a\tb\tc", "a\tb\tc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitJoinPair(t *testing.T) {
	p, ok := SplitPair("src\ttgt")
	if !ok {
		t.Fatal("SplitPair failed on a well-formed line")
	}
	if p.Source != "src" || p.Target != "tgt" {
		t.Errorf("SplitPair = %+v", p)
	}
	if _, ok := SplitPair("no tab"); ok {
		t.Error("SplitPair accepted a line without a tab")
	}
	if got := JoinPair(p); got != "src\ttgt" {
		t.Errorf("JoinPair = %q", got)
	}
}
