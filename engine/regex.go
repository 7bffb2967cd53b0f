package engine

import (
	"regexp"
	"sync"
)

// RegexCache maps pattern text to its compiled form so the content filter
// does not recompile an identical regex on every keystroke. Keys are the
// exact source text; a compile failure caches nothing.
type RegexCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

// NewRegexCache creates an empty regex cache.
func NewRegexCache() *RegexCache {
	return &RegexCache{
		patterns: make(map[string]*regexp.Regexp),
	}
}

// Compile returns the cached matcher for patternText, compiling and storing
// it on first use. The fallback policy for a malformed pattern belongs to the
// caller; this cache only reports the error.
func (rc *RegexCache) Compile(patternText string) (*regexp.Regexp, error) {
	rc.mu.RLock()
	re, ok := rc.patterns[patternText]
	rc.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(patternText)
	if err != nil {
		return nil, err
	}

	rc.mu.Lock()
	rc.patterns[patternText] = re
	rc.mu.Unlock()
	return re, nil
}

// Len returns the number of cached patterns.
func (rc *RegexCache) Len() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.patterns)
}
