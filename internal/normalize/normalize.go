// Package normalize strips title decorations that never take part in a
// nickname: subtitles and series markers.
package normalize

import (
	"strings"
)

// DefaultSubtitleDelimiter brackets a subtitle, as in 「タイトル〜副題〜」.
const DefaultSubtitleDelimiter = "〜"

// DefaultSeriesMarkers flag a whitespace-separated word as a series number.
var DefaultSeriesMarkers = []string{"シリーズ", "series", "シーズン", "season"}

// Normalizer runs the cleaning transforms in a fixed order.
type Normalizer struct {
	delimiters []string
	markers    []string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSubtitleDelimiters replaces the subtitle delimiters. Each delimiter
// is applied in turn.
func WithSubtitleDelimiters(delims ...string) Option {
	return func(n *Normalizer) {
		n.delimiters = nonEmpty(delims)
	}
}

// WithSeriesMarkers replaces the series markers.
func WithSeriesMarkers(markers ...string) Option {
	return func(n *Normalizer) {
		lowered := make([]string, 0, len(markers))
		for _, m := range nonEmpty(markers) {
			lowered = append(lowered, strings.ToLower(m))
		}
		n.markers = lowered
	}
}

// New returns a Normalizer with the default delimiter and markers.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		delimiters: []string{DefaultSubtitleDelimiter},
		markers:    append([]string(nil), DefaultSeriesMarkers...),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Clean removes the subtitle, then the series markers, then runs the
// placeholder transforms.
func (n *Normalizer) Clean(text string) string {
	for _, d := range n.delimiters {
		text = RemoveSubtitleWith(text, d)
	}
	text = RemoveSeriesWith(text, n.markers)
	text = RemovePersonName(text)
	text = RemoveVersionNumber(text)
	text = RemoveCatchcopy(text)
	return RemoveNoiseWords(text)
}

// RemoveSubtitle removes everything from the first to the last 〜.
func RemoveSubtitle(text string) string {
	return RemoveSubtitleWith(text, DefaultSubtitleDelimiter)
}

// RemoveSubtitleWith removes the span from the first to the last
// occurrence of delim, both included. The text is returned unchanged when
// delim occurs fewer than two times or nothing lies between the two.
func RemoveSubtitleWith(text, delim string) string {
	if delim == "" {
		return text
	}
	first := strings.Index(text, delim)
	last := strings.LastIndex(text, delim)
	if first < 0 || last <= first+len(delim) {
		return text
	}
	return text[:first] + text[last+len(delim):]
}

// RemoveSeries drops series-marker words using the default markers.
func RemoveSeries(text string) string {
	return RemoveSeriesWith(text, DefaultSeriesMarkers)
}

// RemoveSeriesWith splits text on half-width and ideographic spaces, drops
// every word containing one of markers (case-insensitively) and joins the
// rest without a separator.
func RemoveSeriesWith(text string, markers []string) string {
	words := strings.FieldsFunc(text, isSpace)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !containsAny(strings.ToLower(w), markers) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, "")
}

// RemovePersonName is a placeholder; person names are kept.
func RemovePersonName(text string) string { return text }

// RemoveVersionNumber is a placeholder; version numbers are kept.
func RemoveVersionNumber(text string) string { return text }

// RemoveCatchcopy is a placeholder; catch copies are kept.
func RemoveCatchcopy(text string) string { return text }

// RemoveNoiseWords is a placeholder at the text level. Token-level noise
// is handled by generator.FilterNoise.
func RemoveNoiseWords(text string) string { return text }

func isSpace(r rune) bool {
	return r == ' ' || r == '　'
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
