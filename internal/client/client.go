// Package client fetches product pages through a browser-impersonating TLS
// client. Retail sites fingerprint the TLS handshake as aggressively as the
// headers, so a plain net/http client gets walled off quickly.
package client

import (
	"sync"
	"sync/atomic"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const requestTimeoutSeconds = 15

var (
	proxyList      []string
	proxyListMutex sync.Mutex
	proxyCounter   uint32
)

// ProxiedClient is a tls-client handle plus the proxy it was built with,
// so fetch failures can be logged against the proxy that produced them.
type ProxiedClient struct {
	tls_client.HttpClient
	ProxyURL string
}

// SetProxyList installs the proxies to rotate through. Clients created
// afterwards pick proxies round-robin.
func SetProxyList(proxies []string) {
	proxyListMutex.Lock()
	defer proxyListMutex.Unlock()
	proxyList = proxies
}

// CreateClient builds a Chrome-profiled HTTP client. Redirects are followed:
// product URLs routinely bounce through locale and tracking redirects before
// landing on the real page.
func CreateClient() (*ProxiedClient, error) {
	jar := tls_client.NewCookieJar()
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(requestTimeoutSeconds),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithCookieJar(jar),
	}

	var proxyURL string
	proxyListMutex.Lock()
	if len(proxyList) > 0 {
		idx := atomic.AddUint32(&proxyCounter, 1)
		proxyURL = proxyList[int(idx-1)%len(proxyList)]
		options = append(options, tls_client.WithProxyUrl(proxyURL))
	}
	proxyListMutex.Unlock()

	c, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}

	return &ProxiedClient{HttpClient: c, ProxyURL: proxyURL}, nil
}
