package scrape

import (
	"github.com/playwright-community/playwright-go"
)

// short timeout so a dead selector fails over to the next strategy quickly
const selectorTimeoutMs = 800

type locatorElement struct {
	loc playwright.Locator
}

// FromLocator wraps a rendered listing element so strategy chains can read it.
func FromLocator(loc playwright.Locator) Element {
	return locatorElement{loc: loc}
}

func (e locatorElement) Text(selector string) string {
	target := e.loc.Locator(selector).First()
	if n, err := target.Count(); err != nil || n == 0 {
		return ""
	}
	text, err := target.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(selectorTimeoutMs),
	})
	if err != nil {
		return ""
	}
	return text
}

func (e locatorElement) Attr(selector, name string) string {
	target := e.loc.Locator(selector).First()
	if n, err := target.Count(); err != nil || n == 0 {
		return ""
	}
	value, err := target.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(selectorTimeoutMs),
	})
	if err != nil {
		return ""
	}
	return value
}

func (e locatorElement) FullText() string {
	text, err := e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(selectorTimeoutMs),
	})
	if err != nil {
		return ""
	}
	return text
}
