package config

import "github.com/datastax/csv-projector/log"

type Config interface {
	Naming() NamingConvention
	InferTypes() bool
	Indent() string
	Logger() log.Logger
}
