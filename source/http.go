package source

import (
	"context"
	"fmt"
	"github.com/datastax/csv-projector/types"
	"net/http"
)

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) (*types.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, unavailable(location, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, unavailable(location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, unavailable(location, fmt.Errorf("unexpected status %s", resp.Status))
	}

	table, err := ReadTable(resp.Body)
	if err != nil {
		return nil, unavailable(location, err)
	}
	return table, nil
}
