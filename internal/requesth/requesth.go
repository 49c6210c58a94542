package requesth

import (
	"io"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/depo-io/depoctl/internal/version"
)

// New wraps retryablehttp.NewRequest and sets the depoctl user agent.
func New(method, url string, body io.Reader) (*retryablehttp.Request, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}
	r, err := retryablehttp.NewRequest(method, url, rawBody)
	if err != nil {
		return r, err
	}
	r.Header.Set("User-Agent", "depoctl/"+version.Version)

	return r, err
}
