package interfaces

import (
	"context"
	"net/http"
)

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for HTTP requests to the data source.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a GET request to the specified URL with parameters.
	// Returns the response body as bytes or an error.
	Get(ctx context.Context, url string, params map[string]string) ([]byte, error)
}

// -----------------------------------------------------------------------------
// IHTTPClient is the subset of *http.Client the network manager needs.
// -----------------------------------------------------------------------------

type IHTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
