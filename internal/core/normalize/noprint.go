package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// noPrint covers the C0 control characters except tab, plus DEL.
var noPrint = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0000, Hi: 0x0008, Stride: 1},
		{Lo: 0x000a, Hi: 0x001f, Stride: 1},
		{Lo: 0x007f, Hi: 0x007f, Stride: 1},
	},
	LatinOffset: 3,
}

// NoPrintNormalizer strips non-printable control characters while keeping
// tab and all printable ranges. Idempotent.
type NoPrintNormalizer struct {
	set runes.Set
}

func NewNoPrintNormalizer() *NoPrintNormalizer {
	return &NoPrintNormalizer{set: runes.In(noPrint)}
}

func (n *NoPrintNormalizer) Normalize(s string) string {
	// runes.Remove carries no state across calls, so building the
	// transformer here keeps the normalizer safe for concurrent use.
	out, _, err := transform.String(runes.Remove(n.set), s)
	if err != nil {
		return s
	}
	return out
}
