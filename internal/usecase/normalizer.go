package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	// Bracket characters and whitespace runs, replaced by a single space.
	// NFKC already folds the full-width pairs, both forms are listed anyway.
	bracketRunRegex = regexp.MustCompile(`[【】\[\]（）()「」『』\-\s]+`)

	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// noiseTokens are packaging and boilerplate fragments that appear in shop
// listings but carry no discriminative signal. Longer tokens come before their
// prefixes so a single pass removes the most specific form first.
var noiseTokens = []string{
	"シュリンク付", "シュリンク", "未開封",
	"新品", "日本語版", "ポケモンカードゲーム", "ポケカ",
	"1BOX", "1box", "1Box",
	"BOX", "box", "Box",
}

// Normalize canonicalizes a product name for comparison: NFKC folding (so
// half-width and full-width forms compare equal), bracket stripping, noise
// token removal, and whitespace collapse. Pure and idempotent.
func Normalize(text string) string {
	s := norm.NFKC.String(text)
	s = bracketRunRegex.ReplaceAllString(s, " ")
	// Removing a token can splice its neighbours into another noise token, so
	// repeat the removal pass until the string stops changing.
	for {
		before := s
		for _, tok := range noiseTokens {
			s = strings.ReplaceAll(s, tok, "")
		}
		if s == before {
			break
		}
	}
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
