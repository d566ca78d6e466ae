package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"zh-CN,zh;q=0.9,en;q=0.8",
	"zh-CN,zh;q=0.9",
	"en-US,en;q=0.9,zh-CN;q=0.8",
	"zh-TW,zh;q=0.9,en;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching,
// some feed proxies reject requests not looking like a browser
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	if rand.Float32() < 0.3 { //nolint:gosec // header variation only
		req.Header.Set("DNT", "1")
	}
}
