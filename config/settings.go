package config

import (
	"encoding/csv"
	"github.com/datastax/csv-projector/log"
	"github.com/datastax/csv-projector/models"
	"github.com/mitchellh/mapstructure"
	"reflect"
	"strings"
)

const (
	DefaultFileLink = "https://drive.google.com/uc?id=1zLdEcpzCp357s3Rse112Lch9EMUWzMLE&export"
	DefaultIndent   = 4
)

// Settings are the user facing options of a projection run, keyed the same way as the command line flags.
type Settings struct {
	Fields     []string `mapstructure:"fields"`
	FileLink   string   `mapstructure:"file_link"`
	InferTypes bool     `mapstructure:"infer-types"`
	KeyNaming  string   `mapstructure:"key-naming" validate:"oneof=none snake camel lower-camel"`
	Indent     int      `mapstructure:"indent" validate:"min=0,max=16"`
	LogLevel   string   `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

func DefaultSettings() Settings {
	return Settings{
		FileLink:  DefaultFileLink,
		KeyNaming: NamingNone,
		Indent:    DefaultIndent,
		LogLevel:  log.DefaultLevel,
	}
}

// Load decodes raw settings, as produced by viper, on top of the defaults and validates the result. Strings are
// converted weakly so values coming from environment variables decode into bools and ints, and a string given for a
// list is split as a CSV record.
func Load(values map[string]interface{}) (*Settings, error) {
	settings := DefaultSettings()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(csvStringToSliceHook),
		WeaklyTypedInput: true,
		Result:           &settings,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(values); err != nil {
		return nil, err
	}

	settings.Fields = selectAllWhenBlank(settings.Fields)

	if err := models.Validate(settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// ToStringSlice splits every entry as a CSV record so "a,b" and `"a,b",c` both work. An empty entry adds nothing
// but empty values inside a record are kept, "date," gives ["date", ""].
func ToStringSlice(slice []string) ([]string, error) {
	result := make([]string, 0)
	for _, entry := range slice {
		if entry == "" {
			continue
		}
		stringReader := strings.NewReader(entry)
		csvReader := csv.NewReader(stringReader)
		split, err := csvReader.Read()
		if err != nil {
			return nil, err
		}
		result = append(result, split...)
	}
	return result, nil
}

func csvStringToSliceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return ToStringSlice([]string{reflect.ValueOf(data).String()})
}

// selectAllWhenBlank maps a single empty value to no fields at all. Empty values next to others are left in place
// so they get reported as invalid fields.
func selectAllWhenBlank(values []string) []string {
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		return []string{}
	}
	return values
}

func (s Settings) IndentString() string {
	return strings.Repeat(" ", s.Indent)
}
