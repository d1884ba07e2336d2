package projector

import (
	"context"
	"github.com/datastax/csv-projector/config"
	e "github.com/datastax/csv-projector/errors"
	"github.com/datastax/csv-projector/log"
	"github.com/datastax/csv-projector/source"
	"github.com/datastax/csv-projector/types"
)

type ProjectorConfig struct {
	naming     config.NamingConvention
	inferTypes bool
	indent     string
	logger     log.Logger
}

func (cfg ProjectorConfig) Naming() config.NamingConvention {
	return cfg.naming
}

func (cfg ProjectorConfig) InferTypes() bool {
	return cfg.inferTypes
}

func (cfg ProjectorConfig) Indent() string {
	return cfg.indent
}

func (cfg ProjectorConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *ProjectorConfig) WithNaming(naming config.NamingConvention) *ProjectorConfig {
	cfg.naming = naming
	return cfg
}

func (cfg *ProjectorConfig) WithInferTypes(inferTypes bool) *ProjectorConfig {
	cfg.inferTypes = inferTypes
	return cfg
}

func (cfg *ProjectorConfig) WithIndent(indent string) *ProjectorConfig {
	cfg.indent = indent
	return cfg
}

// NewProjector creates a projector reading from the network or the local filesystem.
func (cfg ProjectorConfig) NewProjector() *Projector {
	return NewProjector(cfg, source.NewSource(cfg.logger))
}

func (cfg ProjectorConfig) NewProjectorWithFetcher(fetcher source.Fetcher) *Projector {
	return NewProjector(cfg, fetcher)
}

func NewProjectorConfigWithLogger(logger log.Logger) *ProjectorConfig {
	return &ProjectorConfig{
		naming: config.NewDefaultNaming(),
		indent: DefaultIndent,
		logger: logger,
	}
}

// Projector runs the fetch, validate, project and serialize pipeline. It holds no state between calls.
type Projector struct {
	cfg     config.Config
	fetcher source.Fetcher
}

func NewProjector(cfg config.Config, fetcher source.Fetcher) *Projector {
	return &Projector{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// ProcessDocument fetches the table at location and returns the requested columns as a JSON document. An empty
// fields slice selects every column without any validation.
func (p *Projector) ProcessDocument(ctx context.Context, fields []string, location string) ([]byte, error) {
	logger := p.cfg.Logger()

	table, err := p.fetcher.Fetch(ctx, location)
	if err != nil {
		logger.Error("unable to fetch source",
			"location", location,
			"error", err)
		return nil, err
	}

	selected, err := SelectFields(table, fields)
	if err != nil {
		logger.Warn("requested fields are not valid",
			"location", location,
			"fields", fields,
			"error", err)
		return nil, err
	}

	logger.Debug("projecting table",
		"location", location,
		"selected", selected,
		"rows", table.NumRows())

	document, err := Serialize(table, selected, SerializeOptions{
		Naming:     p.cfg.Naming(),
		InferTypes: p.cfg.InferTypes(),
		Indent:     p.cfg.Indent(),
	})
	if err != nil {
		logger.Error("unable to serialize projection",
			"location", location,
			"selected", selected,
			"error", err)
		return nil, err
	}
	return document, nil
}

// SelectFields resolves the columns to emit. With no requested fields every column is selected in table order,
// otherwise all requested fields must exist and the valid ones are returned in table order.
func SelectFields(table *types.Table, requested []string) ([]string, error) {
	available := table.Columns()
	if len(requested) == 0 {
		return available, nil
	}

	result := ValidateFields(requested, available)
	if !result.IsValid {
		return nil, e.NewInvalidFieldsError(result.InvalidFields)
	}
	return result.ValidFields, nil
}
