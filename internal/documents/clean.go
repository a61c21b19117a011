package documents

import (
	"regexp"
	"strings"
)

// Whitespace class shared by every step so that collapsing never produces a
// phrase match the removal step would have missed.
const space = `[\s\v\x{85}\p{Z}]`

var (
	assistantPhrase = regexp.MustCompile(`(?i)i` + space + `+am` + space + `+your` + space + `+ai` + space +
		`+career` + space + `+assistant[.\s\v\x{85}\p{Z}]*`)
	blankLines  = regexp.MustCompile(`\n` + space + `*\n+`)
	spaceRuns   = regexp.MustCompile(space + `+`)
	carriageRet = strings.NewReplacer("\r", "\n")
)

// Clean prepares a document for vectorization: it drops the assistant
// disclaimer, unifies line endings and collapses all whitespace into single
// spaces. The result is a single trimmed line.
//
// Clean(Clean(x)) == Clean(x) holds for every input.
func Clean(text string) string {
	text = assistantPhrase.ReplaceAllString(text, " ")
	text = carriageRet.Replace(text)
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = collapse(text)

	// Removing one occurrence can join the halves of another.
	for assistantPhrase.MatchString(text) {
		text = collapse(assistantPhrase.ReplaceAllString(text, " "))
	}

	return text
}

func collapse(text string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(text, " "))
}
