package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// commentStyle drives the shared comment scanner. A line comment is emitted
// only when the line holds nothing but whitespace and the comment itself;
// comments trailing code on the same line are deliberately not extracted.
type commentStyle struct {
	line       *regexp.Regexp // standalone line comment, text in group 1
	blockStart *regexp.Regexp
	blockEnd   *regexp.Regexp
	preamble   bool // skip shebang and coding-cookie lines at top of file
}

var (
	slashLine = regexp.MustCompile(`^\s*//(.*)$`)
	hashLine  = regexp.MustCompile(`^\s*#(.*)$`)

	cBlockOpen  = regexp.MustCompile(`/\*`)
	cBlockClose = regexp.MustCompile(`\*/`)

	rubyBlockOpen  = regexp.MustCompile(`^=begin`)
	rubyBlockClose = regexp.MustCompile(`^=end`)

	// PEP 263 encoding declaration, only honored in the first two lines.
	codingCookie = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*[-_.a-zA-Z0-9]+`)
)

var (
	cStyleComments = commentStyle{line: slashLine, blockStart: cBlockOpen, blockEnd: cBlockClose}
	pythonComments = commentStyle{line: hashLine, preamble: true}
	rubyComments   = commentStyle{line: hashLine, blockStart: rubyBlockOpen, blockEnd: rubyBlockClose, preamble: true}
	phpComments    = commentStyle{line: regexp.MustCompile(`^\s*(?://|#)(.*)$`), blockStart: cBlockOpen, blockEnd: cBlockClose}
)

// extractComments scans content line by line. Block comments are captured as
// one record spanning through the closing marker's line, with internal line
// breaks preserved.
func extractComments(content string, style commentStyle) []domain.CommentItem {
	lines := strings.Split(content, "\n")
	var comments []domain.CommentItem

	inBlock := false
	blockLine := 0
	var block strings.Builder

	for i, line := range lines {
		lineNum := i + 1

		if lineNum == 1 && strings.HasPrefix(strings.TrimSpace(line), "#!") {
			continue
		}
		if style.preamble && lineNum <= 2 && codingCookie.MatchString(line) {
			continue
		}

		if inBlock {
			block.WriteString("\n")
			block.WriteString(line)
			if style.blockEnd.MatchString(line) {
				comments = append(comments, domain.CommentItem{
					Text: strings.TrimSpace(block.String()),
					Line: blockLine,
					Type: "block",
				})
				inBlock = false
				block.Reset()
			}
			continue
		}

		if style.blockStart != nil {
			if loc := style.blockStart.FindStringIndex(line); loc != nil {
				rest := line[loc[1]:]
				if end := style.blockEnd.FindStringIndex(rest); end != nil {
					text := strings.TrimSpace(rest[:end[0]])
					if text != "" {
						comments = append(comments, domain.CommentItem{
							Text: text,
							Line: lineNum,
							Type: "block",
						})
					}
				} else {
					inBlock = true
					blockLine = lineNum
					block.WriteString(line)
				}
				continue
			}
		}

		if style.line != nil {
			if m := style.line.FindStringSubmatch(line); len(m) > 1 {
				text := strings.TrimSpace(m[1])
				if text != "" {
					comments = append(comments, domain.CommentItem{
						Text: text,
						Line: lineNum,
						Type: "inline",
					})
				}
			}
		}
	}

	return comments
}
