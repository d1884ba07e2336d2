package types

import (
	"encoding"
	"encoding/json"
	"gopkg.in/inf.v0"
	"math/big"
	"strings"
)

// ColumnKind is the JSON rendering chosen for a column when cell types are inferred.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindDecimal
)

type toJsonFn func(value string) interface{}

// InferColumnKind picks the narrowest kind every non-empty cell satisfies. A column without any
// non-empty cell is text and an integer column with blanks is decimal, as integers have no null.
func InferColumnKind(values []string) ColumnKind {
	kind := KindText
	blanks := false
	for _, value := range values {
		if value == "" {
			blanks = true
			continue
		}
		switch {
		case isInteger(value):
			if kind == KindText {
				kind = KindInteger
			}
		case isDecimal(value):
			kind = KindDecimal
		default:
			return KindText
		}
	}
	if kind == KindInteger && blanks {
		return KindDecimal
	}
	return kind
}

// ColumnConverter returns the function that renders cells of the given column. Without inference every cell is
// kept as the raw string.
func ColumnConverter(table *Table, column int, inferTypes bool) func(value string) interface{} {
	if !inferTypes {
		return identityFn
	}
	return nullable(jsonConverterPerKind(InferColumnKind(table.ColumnValues(column))))
}

func jsonConverterPerKind(kind ColumnKind) toJsonFn {
	switch kind {
	case KindInteger:
		return IntegerToNumber
	case KindDecimal:
		return DecimalToNumber
	}
	return identityFn
}

func identityFn(value string) interface{} {
	return value
}

func nullable(fn toJsonFn) toJsonFn {
	return func(value string) interface{} {
		if value == "" {
			return nil
		}
		return fn(value)
	}
}

func IntegerToNumber(value string) interface{} {
	if i, ok := new(big.Int).SetString(value, 10); ok {
		return json.Number(i.String())
	}
	return value
}

// DecimalToNumber writes the shortest form that still reads as a float: "35.50" gives 35.5 and "2" gives 2.0.
func DecimalToNumber(value string) interface{} {
	d, ok := parseText(value, &inf.Dec{})
	if !ok {
		return value
	}

	s := d.(*inf.Dec).String()
	if !strings.Contains(s, ".") {
		return json.Number(s + ".0")
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return json.Number(s)
}

// isInteger only accepts base 10 so leading zeros are not read as octal
func isInteger(value string) bool {
	_, ok := new(big.Int).SetString(value, 10)
	return ok
}

func isDecimal(value string) bool {
	_, ok := parseText(value, &inf.Dec{})
	return ok
}

func parseText(value string, t encoding.TextUnmarshaler) (encoding.TextUnmarshaler, bool) {
	if err := t.UnmarshalText([]byte(value)); err != nil {
		return nil, false
	}
	return t, true
}
