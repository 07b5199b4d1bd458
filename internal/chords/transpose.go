package chords

import (
	"fmt"
	"strings"
)

// WarnFunc receives chord spans that could not be transposed. Those spans
// are rendered as written.
type WarnFunc func(token string, err error)

// TransposeChart returns a copy of c with every chord span shifted by
// halfSteps. Lyric lines, non-chord spans and all whitespace are kept. The
// input chart is not modified, so callers can keep the original and
// transpose it by a running offset.
func TransposeChart(c Chart, halfSteps int, warn WarnFunc) Chart {
	steps := NormalizeSteps(halfSteps)
	if steps == 0 || len(c) == 0 {
		return c
	}

	out := make(Chart, len(c))
	for i, l := range c {
		if l.Kind != LineChords {
			out[i] = l
			continue
		}
		spans := make([]Span, len(l.Spans))
		for j, s := range l.Spans {
			if s.Kind == SpanChord {
				s.Value = transposeSpan(s.Value, steps, warn)
			}
			spans[j] = s
		}
		out[i] = Line{Kind: l.Kind, Spans: spans}
	}
	return out
}

// TransposeText parses raw and transposes it in one step.
func TransposeText(raw string, halfSteps int, warn WarnFunc) string {
	return TransposeChart(ParseChart(raw), halfSteps, warn).String()
}

func transposeSpan(value string, steps int, warn WarnFunc) string {
	tok := strings.TrimSpace(value)
	start := strings.Index(value, tok)
	lead, trail := value[:start], value[start+len(tok):]

	ch, ok := ParseChord(tok)
	if !ok {
		if warn != nil {
			warn(tok, fmt.Errorf("transpose %q: not a chord", tok))
		}
		return value
	}
	next, err := ch.Transpose(steps)
	if err != nil {
		if warn != nil {
			warn(tok, err)
		}
		return value
	}
	return lead + next.String() + trail
}
