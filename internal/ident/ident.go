// Package ident splits and re-cases identifiers used as record field and
// shape names.
package ident

import (
	"strings"
	"unicode"
)

// Tokenize splits a CamelCase, camelCase or snake_case identifier into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "rgb_alpha" -> ["rgb", "alpha"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// ShoutySnake converts an identifier to SHOUTY_SNAKE_CASE.
// "Rgb" -> "RGB", "CartesianInner" -> "CARTESIAN_INNER".
func ShoutySnake(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToUpper(t)
	}

	return strings.Join(tokens, "_")
}

// Snake converts an identifier to lower snake_case.
func Snake(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// LenConst is the name of the arity constant of a shape, e.g. RGB_LEN.
func LenConst(shape string) string {
	return ShoutySnake(shape) + "_LEN"
}

// IndexConst is the name of a field index constant, e.g. RGB_IDX_R.
func IndexConst(shape, field string) string {
	return ShoutySnake(shape) + "_IDX_" + ShoutySnake(field)
}

// Valid reports whether s is a usable identifier: a letter or underscore
// followed by letters, digits or underscores.
func Valid(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// Fold normalizes an identifier for case- and separator-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
