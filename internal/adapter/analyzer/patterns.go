package analyzer

import (
	"strings"

	"codegraph/internal/domain"
)

// splitTopLevel splits s on sep, ignoring separators nested inside (), [],
// {} or <> pairs. String literals are not tracked; that is an accepted
// precision limit of the pattern matchers.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// cutTopLevel splits s at the first top-level occurrence of sep.
func cutTopLevel(s string, sep byte) (string, string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// braceRegion returns the text between the first '{' at or after start and
// its matching '}', exclusive of both braces, along with the byte offset of
// the body within content. ok is false when the region never closes.
func braceRegion(content string, start int) (string, int, bool) {
	open := strings.IndexByte(content[start:], '{')
	if open < 0 {
		return "", 0, false
	}
	open += start
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[open+1 : i], open + 1, true
			}
		}
	}
	return "", 0, false
}

// lineOfOffset converts a byte offset into a 1-based line number.
func lineOfOffset(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}

// group returns the text of capture n from a SubmatchIndex result.
func group(s string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return s[m[2*n]:m[2*n+1]]
}

func isKeyword(name string, keywords ...string) bool {
	for _, k := range keywords {
		if name == k {
			return true
		}
	}
	return false
}

// typedParameter parses a "Type name = default" style formal parameter as
// used by C, C++, C# and Java. The last bare token is taken as the name and
// everything before it as the type; with a single token the name wins, which
// mislabels unnamed prototype parameters and is an accepted limit.
func typedParameter(part string) (domain.Parameter, bool) {
	part = strings.TrimSpace(part)
	if part == "" {
		return domain.Parameter{}, false
	}

	p := domain.Parameter{}
	decl := part
	if head, def, ok := cutTopLevel(part, '='); ok {
		decl = strings.TrimSpace(head)
		p.Default = strings.TrimSpace(def)
	}

	if decl == "..." || decl == "void" {
		p.Name = decl
		return p, true
	}

	decl = strings.ReplaceAll(decl, "*", " * ")
	decl = strings.ReplaceAll(decl, "&", " & ")
	tokens := strings.Fields(decl)
	if len(tokens) == 0 {
		return domain.Parameter{}, false
	}

	p.Name = tokens[len(tokens)-1]
	if p.Name == "*" || p.Name == "&" {
		// unnamed pointer/reference parameter: the whole text is the type
		p.Name = ""
		p.TypeHint = strings.Join(tokens, " ")
	} else if len(tokens) > 1 {
		p.TypeHint = strings.Join(tokens[:len(tokens)-1], " ")
	}
	return p, true
}
