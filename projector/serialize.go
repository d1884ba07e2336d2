package projector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/datastax/csv-projector/config"
	e "github.com/datastax/csv-projector/errors"
	"github.com/datastax/csv-projector/models"
	"github.com/datastax/csv-projector/types"
)

const DefaultIndent = "    "

type SerializeOptions struct {
	Naming     config.NamingConvention
	InferTypes bool
	Indent     string
}

func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		Naming: config.NewDefaultNaming(),
		Indent: DefaultIndent,
	}
}

type projectedColumn struct {
	index   int
	key     string
	convert func(value string) interface{}
}

// Serialize builds one object per table row holding only the selected columns, in the order given, and encodes them
// under the "data" key.
func Serialize(table *types.Table, selected []string, opts SerializeOptions) ([]byte, error) {
	naming := opts.Naming
	if naming == nil {
		naming = config.NewDefaultNaming()
	}

	columns := make([]projectedColumn, 0, len(selected))
	keys := make(map[string]string, len(selected))
	for _, field := range selected {
		index, ok := table.ColumnIndex(field)
		if !ok {
			return nil, e.NewProjectionError(fmt.Sprintf("field '%s' is not a column of the table", field))
		}

		key := naming.ToKey(field)
		if other, ok := keys[key]; ok {
			return nil, e.NewProjectionError(
				fmt.Sprintf("fields '%s' and '%s' map to the same output key '%s'", other, field, key))
		}
		keys[key] = field

		columns = append(columns, projectedColumn{
			index:   index,
			key:     key,
			convert: types.ColumnConverter(table, index, opts.InferTypes),
		})
	}

	doc := models.Document{Data: make([]models.Row, 0, table.NumRows())}
	for i := 0; i < table.NumRows(); i++ {
		row := models.NewRow(len(columns))
		for _, column := range columns {
			row.Set(column.key, column.convert(table.Cell(i, column.index)))
		}
		doc.Data = append(doc.Data, row)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", opts.Indent)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
