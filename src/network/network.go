package network

//go:generate mockgen -package=network -destination=mock_http_client_test.go -source=../interfaces/network_manager.go IHTTPClient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"market-viewer/src/helpers"
	"market-viewer/src/interfaces"
	"market-viewer/src/logger"
	"market-viewer/src/models"
)

const maxBodyBytes = 16 << 20

// -----------------------------------------------------------------------------

type NetworkManager struct {
	Config       *models.MConfig
	ProxyManager *helpers.ProxyManager
	Client       interfaces.IHTTPClient
	Logger       *logger.Logger
}

// -----------------------------------------------------------------------------

func NewNetworkManager(cfg *models.MConfig, log *logger.Logger) (*NetworkManager, error) {
	pm, err := helpers.NewProxyManager(cfg.Network.Proxies)
	if err != nil {
		return nil, err
	}

	nm := &NetworkManager{
		Config:       cfg,
		ProxyManager: pm,
		Logger:       log,
	}
	nm.Client = nm.createClient()
	return nm, nil
}

// -----------------------------------------------------------------------------

func (nm *NetworkManager) createClient() *http.Client {
	transport := &http.Transport{
		Proxy: func(*http.Request) (*url.URL, error) {
			return nm.ProxyManager.Current(), nil
		},
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(nm.Config.Network.RequestTimeout) * time.Second,
	}
}

// -----------------------------------------------------------------------------

// Get performs a single GET request. There is no retry here: the poller's next
// tick is the retry path. A transport failure rotates to the next proxy so that
// the following attempt uses a different route.
func (nm *NetworkManager) Get(ctx context.Context, urlStr string, params map[string]string) ([]byte, error) {
	reqURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, helpers.NewNetworkError("invalid url", err)
	}

	q := reqURL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, helpers.NewNetworkError("create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if ua := nm.Config.Network.UserAgent; ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := nm.Client.Do(req)
	if err != nil {
		if next := nm.ProxyManager.RotateProxy(); next != nil {
			nm.Logger.Warning("Request failed, next attempt uses proxy %s", next.Host)
		}
		return nil, helpers.NewNetworkError("request failed", redactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, helpers.NewNetworkError(fmt.Sprintf("bad status: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, helpers.NewNetworkError("read response", err)
	}

	return body, nil
}

// -----------------------------------------------------------------------------

// redactURLError strips the request URL, which carries the access token, from
// transport errors before they reach logs or the Error state.
func redactURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
