package router

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/itzpremsingh/star/core/converter"
)

// matchMode records how a pattern participates in dynamic matching.
// The two placeholder styles are mutually exclusive: one typed
// placeholder makes the whole pattern typed, and any bare <name> tokens
// left in it match as literal text, angle brackets included.
type matchMode int

const (
	modeLiteral matchMode = iota
	modeTyped
	modeUntyped
)

var (
	typedToken   = regexp.MustCompile(`<(\w+):(\w+)>`)
	untypedToken = regexp.MustCompile(`<(\w+)>`)
)

// matcher is the compiled form of a route pattern: a full-string
// regexp plus the converters and parameter names in capture order.
// Literal mode carries no regexp; such patterns match by equality only.
type matcher struct {
	mode  matchMode
	re    *regexp.Regexp
	convs []converter.Converter
	names []string
}

// match runs the compiled regexp against the whole path and returns the
// captured substrings in placeholder order.
func (m *matcher) match(path string) ([]string, bool) {
	sub := m.re.FindStringSubmatch(path)
	if sub == nil {
		return nil, false
	}
	return sub[1:], true
}

// compile builds a matcher from a normalized pattern. It is a pure
// function of the pattern text and the converter registry: typed
// placeholders <kind:name> take precedence; without any, <name>
// placeholders compile with the string converter's fragment; a pattern
// with neither is literal. Unknown converter kinds fail compilation.
func compile(pattern string) (*matcher, error) {
	if locs := typedToken.FindAllStringSubmatchIndex(pattern, -1); len(locs) > 0 {
		return compileTokens(pattern, locs, modeTyped)
	}
	if locs := untypedToken.FindAllStringSubmatchIndex(pattern, -1); len(locs) > 0 {
		return compileTokens(pattern, locs, modeUntyped)
	}
	return &matcher{mode: modeLiteral}, nil
}

func compileTokens(pattern string, locs [][]int, mode matchMode) (*matcher, error) {
	m := &matcher{mode: mode}

	var sb strings.Builder
	sb.WriteByte('^')
	last := 0
	for _, loc := range locs {
		var kind, name string
		if mode == modeTyped {
			kind = pattern[loc[2]:loc[3]]
			name = pattern[loc[4]:loc[5]]
		} else {
			kind = "string"
			name = pattern[loc[2]:loc[3]]
		}

		conv, err := converter.Lookup(kind)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		sb.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		sb.WriteString("(?P<")
		sb.WriteString(name)
		sb.WriteString(">")
		sb.WriteString(conv.Pattern)
		sb.WriteString(")")

		m.convs = append(m.convs, conv)
		m.names = append(m.names, name)
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))
	sb.WriteByte('$')

	re, err := regexp.Compile(sb.String())
	if err != nil {
		// Duplicate parameter names land here via the regexp engine.
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	m.re = re
	return m, nil
}

// patternCache memoizes compile results per raw pattern string. Since
// compilation is pure, caching never changes matching behavior; it only
// avoids recompiling the same pattern on every dispatch.
type patternCache struct {
	mu sync.RWMutex
	m  map[string]*cacheEntry
}

type cacheEntry struct {
	matcher *matcher
	err     error
}

func newPatternCache() *patternCache {
	return &patternCache{m: make(map[string]*cacheEntry)}
}

func (c *patternCache) get(pattern string) (*matcher, error) {
	c.mu.RLock()
	e, ok := c.m[pattern]
	c.mu.RUnlock()
	if ok {
		return e.matcher, e.err
	}

	m, err := compile(pattern)
	c.mu.Lock()
	c.m[pattern] = &cacheEntry{matcher: m, err: err}
	c.mu.Unlock()
	return m, err
}
