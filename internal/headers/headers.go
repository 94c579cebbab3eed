// Package headers builds browser-like header sets for product page requests.
// Profiles are pooled and reused so consecutive runs don't present an
// identical fingerprint on every request.
package headers

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	http "github.com/bogdanfinn/fhttp"
)

type profile struct {
	ua        string
	secCHUA   string
	platform  string
	acceptIdx int
	langIdx   int
	encIdx    int
	cacheIdx  int
}

var (
	acceptOpts = []string{
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	}
	encOpts = []string{
		"gzip, deflate, br",
		"gzip, deflate, br, zstd",
	}
	langOpts = []string{
		"en-US,en;q=0.5",
		"en-US,en;q=0.9",
		"en-GB,en;q=0.9,en-US;q=0.8",
		"nl-NL,nl;q=0.9,en-US;q=0.8,en;q=0.7",
		"en-US,en;q=0.9,nl;q=0.8",
	}
	cacheOpts = []string{
		"max-age=0",
		"no-cache",
		"",
	}

	headerOrder = []string{
		"Accept",
		"Accept-Language",
		"Accept-Encoding",
		"User-Agent",
		"Sec-CH-UA",
		"Sec-CH-UA-Mobile",
		"Sec-CH-UA-Platform",
		"Sec-Fetch-Site",
		"Sec-Fetch-Mode",
		"Sec-Fetch-Dest",
		"Sec-Fetch-User",
		"Upgrade-Insecure-Requests",
		"Connection",
		"Cache-Control",
	}
)

var profilePool = sync.Pool{
	New: func() interface{} {
		return generateProfile()
	},
}

func generateUA() string {
	chromeMaj := rand.Intn(11) + 120
	switch rand.Intn(4) {
	case 0: // Windows Chrome
		return fmt.Sprintf(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
				"(KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36", chromeMaj)
	case 1: // macOS Chrome
		return fmt.Sprintf(
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 "+
				"(KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36", chromeMaj)
	case 2: // Windows Edge
		return fmt.Sprintf(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
				"(KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36 Edg/%d.0.0.0",
			chromeMaj, chromeMaj)
	default: // Windows Firefox
		fxMaj := rand.Intn(16) + 115
		return fmt.Sprintf(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:%d.0) Gecko/20100101 Firefox/%d.0",
			fxMaj, fxMaj)
	}
}

func generateSecCHUA(ua string) string {
	const fallback = "124.0.0.0"
	ver := fallback
	if idx := strings.Index(ua, "Chrome/"); idx != -1 {
		rest := ua[idx+7:]
		if j := strings.Index(rest, " "); j != -1 {
			ver = rest[:j]
		} else {
			ver = rest
		}
	}
	brand := "Google Chrome"
	if strings.Contains(ua, "Edg/") {
		brand = "Microsoft Edge"
	}
	return fmt.Sprintf(
		`"Not:A-Brand";v="24", "Chromium";v="%s", "%s";v="%s"`,
		ver, brand, ver,
	)
}

func generateProfile() profile {
	ua := generateUA()
	platform := "Windows"
	if strings.Contains(ua, "Macintosh") {
		platform = "macOS"
	}
	return profile{
		ua:        ua,
		secCHUA:   generateSecCHUA(ua),
		platform:  platform,
		acceptIdx: rand.Intn(len(acceptOpts)),
		langIdx:   rand.Intn(len(langOpts)),
		encIdx:    rand.Intn(len(encOpts)),
		cacheIdx:  rand.Intn(len(cacheOpts)),
	}
}

// BuildHeaders returns an ordered, navigation-shaped header set for a
// top-level product page request.
func BuildHeaders() http.Header {
	p := profilePool.Get().(profile)
	defer profilePool.Put(p)

	h := http.Header{}
	h.Set("Accept", acceptOpts[p.acceptIdx])
	h.Set("Accept-Language", langOpts[p.langIdx])
	h.Set("Accept-Encoding", encOpts[p.encIdx])
	h.Set("User-Agent", p.ua)
	if strings.Contains(p.ua, "Chrome/") {
		h.Set("Sec-CH-UA", p.secCHUA)
		h.Set("Sec-CH-UA-Mobile", "?0")
		h.Set("Sec-CH-UA-Platform", `"`+p.platform+`"`)
	}
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-User", "?1")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Connection", "keep-alive")
	if cc := cacheOpts[p.cacheIdx]; cc != "" {
		h.Set("Cache-Control", cc)
	}

	h[http.HeaderOrderKey] = headerOrder

	return h
}

// InitProfilePool pre-generates profiles so the first requests of a run
// don't all share the pool's lazily created default.
func InitProfilePool(count int) {
	for i := 0; i < count; i++ {
		profilePool.Put(generateProfile())
	}
}
