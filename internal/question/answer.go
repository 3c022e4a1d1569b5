package question

import (
	"regexp"
	"strings"
)

// boxedAnswerPattern matches a final answer such as \boxed{A,C} or \boxed{-2.5}.
var boxedAnswerPattern = regexp.MustCompile(`\\boxed\{\s*([ABCDO\d,.-]+)\s*\}`)

// imageLinkPattern matches markdown image references.
var imageLinkPattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// ExtractBoxedAnswer returns the first boxed answer in a model response.
// A response without a well-formed marker yields no prediction.
func ExtractBoxedAnswer(raw string) Prediction {
	match := boxedAnswerPattern.FindStringSubmatch(raw)
	if match == nil {
		return NoPrediction()
	}
	return Predicted(strings.TrimSpace(match[1]))
}

// ImagePaths lists the image references in text in order of appearance.
func ImagePaths(text string) []string {
	matches := imageLinkPattern.FindAllStringSubmatch(text, -1)
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, match[1])
	}
	return paths
}

// StripImageLinks removes image references and surrounding whitespace.
func StripImageLinks(text string) string {
	return strings.TrimSpace(imageLinkPattern.ReplaceAllString(text, ""))
}
