package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains browser Accept-Language values, the feed is served in Slovenian
var acceptLanguages = []string{
	"sl-SI,sl;q=0.9,en;q=0.8",
	"sl,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,sl;q=0.8",
}

// addBrowserHeaders adds browser-like headers, some shop exports reject bare clients
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/xml,text/xml;q=0.9,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Connection", "keep-alive")
}
