package domain

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{identifier}} tokens where identifier is word
// characters only. Matching is single-brace-depth and non-greedy: in a
// malformed token like {{{{x}}}} only the innermost {{x}} matches, so x is
// extracted exactly once.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractPlaceholders returns the deduplicated placeholder names found in
// template text, in order of first appearance.
func ExtractPlaceholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	seen := make(map[string]struct{}, len(matches))
	var names []string
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// EscapePlaceholders rewrites {{ and }} to [[ and ]] so a completion service
// cannot mistake template tokens for executable instructions. This is a
// textual transform, not a parse.
func EscapePlaceholders(s string) string {
	s = strings.ReplaceAll(s, "{{", "[[")
	return strings.ReplaceAll(s, "}}", "]]")
}

// SurvivingPlaceholders returns the names from template whose marker, in
// either {{name}} or [[name]] form, still appears verbatim in output.
func SurvivingPlaceholders(template, output string) []string {
	var surviving []string
	for _, name := range ExtractPlaceholders(template) {
		if strings.Contains(output, "{{"+name+"}}") || strings.Contains(output, "[["+name+"]]") {
			surviving = append(surviving, name)
		}
	}
	return surviving
}
