package source

import (
	"context"
	"errors"
	e "github.com/datastax/csv-projector/errors"
	"github.com/datastax/csv-projector/log"
	"github.com/datastax/csv-projector/types"
	"github.com/spf13/afero"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher retrieves CSV content from a location and parses it into a table. Implementations do not cache.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*types.Table, error)
}

// Source dispatches a location to the HTTP fetcher when it has an http or https scheme and to the filesystem
// fetcher otherwise.
type Source struct {
	http   Fetcher
	file   Fetcher
	logger log.Logger
}

func NewSource(logger log.Logger) *Source {
	return NewSourceWith(NewHTTPFetcher(http.DefaultClient), NewFileFetcher(afero.NewOsFs()), logger)
}

func NewSourceWith(httpFetcher Fetcher, fileFetcher Fetcher, logger log.Logger) *Source {
	return &Source{
		http:   httpFetcher,
		file:   fileFetcher,
		logger: logger,
	}
}

// Fetch never rejects a location up front: anything that is not an http or https URL is opened as a path, so a
// location that cannot be read always fails with a SourceUnavailableError.
func (s *Source) Fetch(ctx context.Context, location string) (*types.Table, error) {
	if location == "" {
		return nil, unavailable(location, errors.New("empty location"))
	}

	fetcher := s.file
	kind := "file"
	if IsRemote(location) {
		fetcher = s.http
		kind = "http"
	}

	s.logger.Debug("fetching source",
		"location", location,
		"kind", kind)

	table, err := fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched source",
		"location", location,
		"columns", len(table.Columns()),
		"rows", table.NumRows())
	return table, nil
}

// IsRemote reports whether the location is an http or https URL.
func IsRemote(location string) bool {
	parsed, err := url.Parse(location)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return scheme == "http" || scheme == "https"
}

func unavailable(location string, err error) error {
	return e.NewSourceUnavailableError(location, err)
}
