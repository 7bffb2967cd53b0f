// Package subst implements regex substitution with capture-group
// backreferences and the positional line diff used for previews.
package subst

import (
	"regexp"
	"strconv"
	"strings"
)

// Apply replaces every non-overlapping match of fromPattern in content with
// toTemplate. A token $N (N >= 1) in the template is substituted with the text
// of capture group N, or the empty string if the group did not participate.
// $0 is not a backreference. A malformed pattern is an identity transform,
// never an error: partial patterns arrive on every keystroke.
func Apply(content, fromPattern, toTemplate string) string {
	re, err := regexp.Compile(fromPattern)
	if err != nil {
		return content
	}

	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		b.WriteString(expandTemplate(toTemplate, content, m, re.NumSubexp()))
		last = m[1]
	}
	b.WriteString(content[last:])
	return b.String()
}

// expandTemplate substitutes $N tokens for group indices 1..groups in
// ascending order. Substitution is textual, so $1 is rewritten before $10.
func expandTemplate(template, content string, match []int, groups int) string {
	out := template
	for i := 1; i <= groups; i++ {
		var captured string
		if 2*i+1 < len(match) && match[2*i] >= 0 {
			captured = content[match[2*i]:match[2*i+1]]
		}
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i), captured)
	}
	return out
}
