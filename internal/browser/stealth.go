package browser

import (
	"math/rand"
)

// launch args that suppress the most common automation fingerprints
var stealthArgs = []string{
	"--no-sandbox",
	"--disable-blink-features=AutomationControlled",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--disable-features=VizDisplayCompositor",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-renderer-backgrounding",
	"--hide-scrollbars",
}

// rotation pool of recent desktop user agents
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
}

func pickUserAgent(pool []string) string {
	if len(pool) == 0 {
		pool = userAgents
	}
	return pool[rand.Intn(len(pool))]
}

var defaultHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-AU,en;q=0.8",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// injected before any page script runs; patches the navigator object so the
// session looks like a regular desktop Chrome
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', {
	get: () => undefined,
});
delete navigator.__proto__.webdriver;

Object.defineProperty(navigator, 'plugins', {
	get: () => [1, 2, 3, 4, 5],
});

Object.defineProperty(navigator, 'languages', {
	get: () => ['en-AU', 'en'],
});

window.chrome = window.chrome || { runtime: {} };

// report a real GPU instead of the SwiftShader fallback
const getParameter = WebGLRenderingContext.prototype.getParameter;
WebGLRenderingContext.prototype.getParameter = function (parameter) {
	if (parameter === 37445) {
		return 'Intel Inc.';
	}
	if (parameter === 37446) {
		return 'Intel Iris OpenGL Engine';
	}
	return getParameter.call(this, parameter);
};
`
