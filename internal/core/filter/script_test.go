package filter

import "testing"

func TestCharacterRatioFilter(t *testing.T) {
	f, err := NewCharacterRatioFilter([]string{"zh", "en"}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		src, tgt string
		keep     bool
	}{
		{"both pure scripts", "你好世界", "hello world", true},
		{"source mixes scripts", "你好world", "hello", false},
		{"target mixes scripts", "你好", "привет hello", false},
		{"punctuation ignored", "你好，世界！", "hello, world!", true},
		{"all-punctuation source scores zero", "！！！", "hello", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := f.Filter(pair(tc.src, tc.tgt)); ok != tc.keep {
				t.Errorf("keep = %v, want %v", ok, tc.keep)
			}
		})
	}
}

func TestCharacterRatioFilterLooseThreshold(t *testing.T) {
	f, err := NewCharacterRatioFilter([]string{"zh", "en"}, []float64{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	// 4 Han vs 2 Latin letters: 4/6 >= 0.5 on the source.
	if _, ok := f.Filter(pair("你好世界ab", "hello")); !ok {
		t.Error("dropped a pair above the loosened threshold")
	}
}

func TestCharacterRatioFilterScriptName(t *testing.T) {
	// Script names work directly, without a LangScripts entry.
	f, err := NewCharacterRatioFilter([]string{"Cyrillic", "en"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.Filter(pair("привет", "hello")); !ok {
		t.Error("dropped a pure Cyrillic/Latin pair")
	}
}

func TestCharacterRatioFilterConfigErrors(t *testing.T) {
	if _, err := NewCharacterRatioFilter([]string{"zh"}, nil); err == nil {
		t.Error("accepted a single language")
	}
	if _, err := NewCharacterRatioFilter([]string{"zh", "en"}, []float64{1}); err == nil {
		t.Error("accepted mismatched thresholds length")
	}
	if _, err := NewCharacterRatioFilter([]string{"zh", "nosuchscript"}, nil); err == nil {
		t.Error("accepted an unknown script")
	}
	if _, err := NewCharacterRatioFilter([]string{"zh", "en"}, []float64{1, 2}); err == nil {
		t.Error("accepted a threshold above 1")
	}
}
