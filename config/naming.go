package config

import (
	"fmt"
	"github.com/iancoleman/strcase"
)

const (
	NamingNone       = "none"
	NamingSnake      = "snake"
	NamingCamel      = "camel"
	NamingLowerCamel = "lower-camel"
)

// NamingConvention maps a source column name to the key used in the JSON output. Field matching always uses the
// source column name.
type NamingConvention interface {
	ToKey(column string) string
}

type NamingConventionFn func(column string) string

func (fn NamingConventionFn) ToKey(column string) string {
	return fn(column)
}

func NewDefaultNaming() NamingConvention {
	return NamingConventionFn(func(column string) string {
		return column
	})
}

func NewNaming(name string) (NamingConvention, error) {
	switch name {
	case "", NamingNone:
		return NewDefaultNaming(), nil
	case NamingSnake:
		return NamingConventionFn(strcase.ToSnake), nil
	case NamingCamel:
		return NamingConventionFn(strcase.ToCamel), nil
	case NamingLowerCamel:
		return NamingConventionFn(strcase.ToLowerCamel), nil
	default:
		return nil, fmt.Errorf("unknown key naming '%s'", name)
	}
}
