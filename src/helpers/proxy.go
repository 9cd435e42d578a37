package helpers

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// -----------------------------------------------------------------------------

// ProxyManager holds the configured outbound proxies and the one in use.
type ProxyManager struct {
	proxies []*url.URL
	index   int
	mu      sync.Mutex
}

// -----------------------------------------------------------------------------

// NewProxyManager validates and normalises the configured proxy list.
func NewProxyManager(proxies []string) (*ProxyManager, error) {
	pm := &ProxyManager{}
	for _, p := range proxies {
		if !ValidateProxy(p) {
			return nil, fmt.Errorf("invalid proxy %q", p)
		}
		u, err := url.Parse(FormatProxy(p))
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q: %w", p, err)
		}
		pm.proxies = append(pm.proxies, u)
	}
	return pm, nil
}

// -----------------------------------------------------------------------------

// Current returns the proxy in use, or nil for a direct connection.
func (pm *ProxyManager) Current() *url.URL {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.proxies) == 0 {
		return nil
	}
	return pm.proxies[pm.index]
}

// -----------------------------------------------------------------------------

// RotateProxy switches to the next proxy and returns it.
func (pm *ProxyManager) RotateProxy() *url.URL {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if len(pm.proxies) == 0 {
		return nil
	}
	pm.index = (pm.index + 1) % len(pm.proxies)
	return pm.proxies[pm.index]
}

// -----------------------------------------------------------------------------

func (pm *ProxyManager) HasProxies() bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return len(pm.proxies) > 0
}

// -----------------------------------------------------------------------------

// ValidateProxy checks if a proxy string is roughly valid.
func ValidateProxy(proxyStr string) bool {
	if strings.TrimSpace(proxyStr) == "" {
		return false
	}
	u, err := url.Parse(FormatProxy(proxyStr))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https" || u.Scheme == "socks5"
}

// -----------------------------------------------------------------------------

// FormatProxy ensures the proxy has a scheme.
func FormatProxy(proxyStr string) string {
	if !strings.Contains(proxyStr, "://") {
		return "http://" + proxyStr
	}
	return proxyStr
}
