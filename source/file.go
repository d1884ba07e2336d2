package source

import (
	"context"
	"github.com/datastax/csv-projector/types"
	"github.com/spf13/afero"
	"net/url"
	"strings"
)

type FileFetcher struct {
	fs afero.Fs
}

func NewFileFetcher(fs afero.Fs) *FileFetcher {
	return &FileFetcher{fs: fs}
}

func (f *FileFetcher) Fetch(_ context.Context, location string) (*types.Table, error) {
	file, err := f.fs.Open(filePath(location))
	if err != nil {
		return nil, unavailable(location, err)
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, unavailable(location, err)
	}
	return table, nil
}

// filePath strips a file:// scheme, anything else is used as a path as is.
func filePath(location string) string {
	if !strings.HasPrefix(strings.ToLower(location), "file:") {
		return location
	}
	parsed, err := url.Parse(location)
	if err != nil || parsed.Path == "" {
		return location
	}
	return parsed.Path
}
