package dcv

import (
	"fmt"
	"regexp"
	"strings"
)

// pageMargins holds the four margin-* declarations extracted from an
// @page rule. Empty fields mean the declaration was absent.
type pageMargins struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// pageRulePattern captures the body of the first @page rule.
var pageRulePattern = regexp.MustCompile(`(?s)@page[^{]*\{([^}]*)\}`)

// marginDeclPattern captures margin-top/right/bottom/left declarations.
var marginDeclPattern = regexp.MustCompile(`margin-(top|right|bottom|left)\s*:\s*([^;]+)(?:;|$)`)

// parsePageMargins extracts per-side margin declarations from the first
// @page rule in css. Missing declarations stay empty (callers fall back
// to lower-precedence layers); a declaration that is present but not a
// valid length is an error, since it would silently skew the page layout.
func parsePageMargins(css string) (pageMargins, error) {
	var m pageMargins

	rule := pageRulePattern.FindStringSubmatch(css)
	if rule == nil {
		return m, nil
	}

	for _, decl := range marginDeclPattern.FindAllStringSubmatch(rule[1], -1) {
		side, value := decl[1], strings.TrimSpace(decl[2])
		if err := ValidateMargin(value); err != nil {
			return pageMargins{}, fmt.Errorf("@page margin-%s: %w", side, err)
		}
		switch side {
		case "top":
			m.Top = value
		case "right":
			m.Right = value
		case "bottom":
			m.Bottom = value
		case "left":
			m.Left = value
		}
	}
	return m, nil
}

// overlay replaces each field of m with the corresponding non-empty field
// of over, leaving the rest untouched. Most specific wins, per field.
func (m pageMargins) overlay(over pageMargins) pageMargins {
	if over.Top != "" {
		m.Top = over.Top
	}
	if over.Right != "" {
		m.Right = over.Right
	}
	if over.Bottom != "" {
		m.Bottom = over.Bottom
	}
	if over.Left != "" {
		m.Left = over.Left
	}
	return m
}
