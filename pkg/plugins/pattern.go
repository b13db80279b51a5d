package plugins

import (
	"iter"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// matcherCache holds compiled matchers keyed by pattern text. Wildcard
// queries tend to repeat the same handful of group and name patterns.
var matcherCache, _ = lru.New[string, *Matcher](256)

// Matcher matches registered keys against one compiled dotted pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// CompilePattern compiles a dotted pattern into a Matcher. Literal segments
// match literally (dots included), and each "*" token matches one or more
// characters of any kind, so a single wildcard can absorb several dotted
// segments. Matching is anchored at the start only: a pattern matches every
// key it is a prefix of, which lets a short group pattern cover deeper
// nested group names.
func CompilePattern(pattern string) *Matcher {
	if m, ok := matcherCache.Get(pattern); ok {
		return m
	}

	chunks := strings.Split(pattern, "*")
	for i, chunk := range chunks {
		chunks[i] = regexp.QuoteMeta(chunk)
	}

	m := &Matcher{
		pattern: pattern,
		re:      regexp.MustCompile("^" + strings.Join(chunks, ".+")),
	}
	matcherCache.Add(pattern, m)
	return m
}

// Pattern returns the pattern text the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Match reports whether key matches the pattern. Case-sensitive.
func (m *Matcher) Match(key string) bool {
	return m.re.MatchString(key)
}

// FilterSeq lazily yields the candidate keys that match, preserving the
// candidate sequence's order.
func (m *Matcher) FilterSeq(keys iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range keys {
			if !m.Match(key) {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}
