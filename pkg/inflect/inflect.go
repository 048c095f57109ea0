// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package inflect derives conventional identifiers from entity type names.
//
// # Usage
//
// A belongs-to relationship is named after the container type it points to,
// in underscored singular form: "ScanlationGroup" becomes "scanlation_group",
// "Chapters" becomes "chapter". This package handles normalization, accent
// removal, word splitting and the common English plural endings.
package inflect

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Underscore converts a CamelCase or mixed type name into snake_case ASCII.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (accents).
// 2. Treats "::", ".", "-" and spaces as word separators and keeps the last segment of "::" paths.
// 3. Inserts "_" at lower→upper and acronym→word boundaries ("HTTPServer" → "http_server").
// 4. Lowercases the result.
func Underscore(name string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, name)

	if index := strings.LastIndex(result, "::"); index >= 0 {
		result = result[index+2:]
	}

	runes := []rune(result)
	var builder strings.Builder
	for i, r := range runes {
		switch {
		case r == '.' || r == '-' || r == ' ' || r == '_':
			writeSeparator(&builder)
			continue
		case unicode.IsUpper(r) && i > 0:
			previous := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(previous) || unicode.IsDigit(previous) || (unicode.IsUpper(previous) && nextIsLower) {
				writeSeparator(&builder)
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return strings.Trim(builder.String(), "_")
}

// Singular returns the singular form of an English word using the common
// suffix rules. Irregular plurals are not handled.
func Singular(word string) string {
	lower := strings.ToLower(word)

	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + matchCase(word[len(word)-3:], "y")
	case strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "shes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "xes"):
		return word[:len(word)-2]
	case strings.HasSuffix(lower, "ss"), strings.HasSuffix(lower, "us"), strings.HasSuffix(lower, "is"):
		return word
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1]
	default:
		return word
	}
}

// RelationshipName is the default belongs-to name for a container type:
// the underscored, singular form of its name.
func RelationshipName(typeName string) string {
	underscored := Underscore(typeName)

	// Only the last word carries the plural
	index := strings.LastIndex(underscored, "_")
	return underscored[:index+1] + Singular(underscored[index+1:])
}

// writeSeparator appends "_" unless the builder already ends with one.
func writeSeparator(builder *strings.Builder) {
	current := builder.String()
	if current != "" && !strings.HasSuffix(current, "_") {
		builder.WriteByte('_')
	}
}

// matchCase returns replacement upper-cased when the original suffix is upper-case.
func matchCase(original, replacement string) string {
	if original == strings.ToUpper(original) {
		return strings.ToUpper(replacement)
	}
	return replacement
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
