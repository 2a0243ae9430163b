package scrape

import (
	"regexp"
	"strings"
)

// Element is the minimal surface a strategy reads from. The playwright
// adapter lives in element.go; tests use an in-memory fake, so strategy
// chains are exercised without a live browser.
type Element interface {
	// Text returns the inner text of the first match for selector, or "".
	Text(selector string) string
	// Attr returns the named attribute of the first match, or "".
	Attr(selector, name string) string
	// FullText returns the element's entire visible text.
	FullText() string
}

// Strategy is one named way of pulling a field out of a listing element.
type Strategy struct {
	Name string
	Get  func(el Element) string
}

// Text builds a strategy that reads inner text via a CSS selector.
func Text(name, selector string) Strategy {
	return Strategy{Name: name, Get: func(el Element) string {
		return el.Text(selector)
	}}
}

// Attr builds a strategy that reads an attribute via a CSS selector.
func Attr(name, selector, attr string) Strategy {
	return Strategy{Name: name, Get: func(el Element) string {
		return el.Attr(selector, attr)
	}}
}

// Pattern builds a strategy that scans the element's full text with a
// regular expression and returns the first match.
func Pattern(name string, re *regexp.Regexp) Strategy {
	return Strategy{Name: name, Get: func(el Element) string {
		return re.FindString(el.FullText())
	}}
}

// Chain is an ordered list of strategies for one logical field. The first
// non-empty result wins, which tolerates partial site markup drift without
// failing the whole listing.
type Chain []Strategy

// Extract runs the chain and returns the first non-empty trimmed result.
func (c Chain) Extract(el Element) string {
	for _, s := range c {
		if v := strings.TrimSpace(s.Get(el)); v != "" {
			return v
		}
	}
	return ""
}
