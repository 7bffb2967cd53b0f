package engine

import (
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// globClauses is the parsed form of a glob query: comma-separated clauses,
// a leading ! marking an exclusion. Malformed clauses are skipped rather
// than failing the whole query.
type globClauses struct {
	includes []string
	excludes []string
}

func parseGlobClauses(globQuery string) globClauses {
	var clauses globClauses
	for _, clause := range strings.Split(globQuery, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if stripped, ok := strings.CutPrefix(clause, "!"); ok {
			if doublestar.ValidatePattern(stripped) {
				clauses.excludes = append(clauses.excludes, stripped)
			}
			continue
		}
		if doublestar.ValidatePattern(clause) {
			clauses.includes = append(clauses.includes, clause)
		}
	}
	return clauses
}

// matchClause matches a glob clause against the relative slash path, falling
// back to the basename so that "*.rs" style clauses behave the way users
// expect on nested paths.
func matchClause(pattern, relPath string) bool {
	if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
		return true
	}
	ok, err := doublestar.Match(pattern, path.Base(relPath))
	return err == nil && ok
}

// Filter returns the ordered list of files matching the current query.
//
// Both queries blank is the fast path: the full index snapshot, untouched.
// Otherwise the single-slot memo is consulted for an exact query match, and
// on a miss every file in the index is evaluated independently with bounded
// parallelism, preserving index order. A malformed content regex matches
// nothing; files that cannot be read are non-matching, not errors.
func (e *Engine) Filter() []string {
	globQuery, contentQuery := e.Query()
	paths := e.files.Paths()

	if strings.TrimSpace(globQuery) == "" && strings.TrimSpace(contentQuery) == "" {
		return paths
	}

	if cached, ok := e.memo.Lookup(globQuery, contentQuery); ok {
		return cached
	}

	clauses := parseGlobClauses(globQuery)

	var contentRe *regexp.Regexp
	contentMatchable := true
	if contentQuery != "" {
		re, err := e.regexes.Compile(contentQuery)
		if err != nil {
			contentMatchable = false
		} else {
			contentRe = re
		}
	}

	matched := make([]bool, len(paths))
	if contentMatchable {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for i, relPath := range paths {
			g.Go(func() error {
				matched[i] = e.fileMatches(relPath, clauses, contentRe)
				return nil
			})
		}
		g.Wait()
	}

	result := make([]string, 0, len(paths))
	for i, relPath := range paths {
		if matched[i] {
			result = append(result, relPath)
		}
	}

	e.memo.Store(globQuery, contentQuery, result)
	return result
}

// fileMatches evaluates the include/exclude/content test for one file.
// With no include clauses every file passes the include test vacuously;
// an exclude match rejects regardless of includes.
func (e *Engine) fileMatches(relPath string, clauses globClauses, contentRe *regexp.Regexp) bool {
	if len(clauses.includes) > 0 {
		included := false
		for _, pattern := range clauses.includes {
			if matchClause(pattern, relPath) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	for _, pattern := range clauses.excludes {
		if matchClause(pattern, relPath) {
			return false
		}
	}

	if contentRe != nil {
		content, err := e.cache.Get(relPath)
		if err != nil {
			return false
		}
		return contentRe.MatchString(content)
	}

	return true
}
