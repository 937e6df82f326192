package bpmn

import (
	"html"
	"regexp"
	"strings"
)

var (
	crlfReplacer  = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "&#10;", " ", "&#xA;", " ")
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonIdentChar  = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// CleanName HTML-unescapes name, normalizes CR/LF and their numeric
// character references to spaces, and collapses whitespace runs to a
// single space. An empty or whitespace-only result is reported as "".
func CleanName(name string) string {
	if name == "" {
		return ""
	}
	unescaped := html.UnescapeString(name)
	flattened := crlfReplacer.Replace(unescaped)
	collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(flattened, " "))
	return collapsed
}

// Sanitize replaces every character outside [A-Za-z0-9_] with an
// underscore, as required of every identifier emitted into PDDL output.
func Sanitize(id string) string {
	return nonIdentChar.ReplaceAllString(id, "_")
}
