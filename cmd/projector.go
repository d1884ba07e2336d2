package cmd

import (
	"context"
	"errors"
	"fmt"
	"github.com/datastax/csv-projector/config"
	"github.com/datastax/csv-projector/log"
	"github.com/datastax/csv-projector/projector"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"io"
	"os"
	"strings"
)

// Environment variables prefixed with "CSV_PROJECTOR_" can override settings e.g. "CSV_PROJECTOR_FILE_LINK"
const envVarPrefix = "csv_projector"

// Execute runs the projection command and exits with a non-zero status on failure
func Execute() {
	if err := NewCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// NewCommand creates the root command. The JSON document is the only thing written to stdout and it is only written
// when the whole projection succeeded.
func NewCommand(stdout io.Writer) *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           os.Args[0] + " --fields [FIELDS] [--file_link LOCATION] [OPTIONS]",
		Short:         "Select columns of a CSV file and print them as JSON",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !v.IsSet("fields") {
				return errors.New(`fields are required, use --fields "" to select every field`)
			}

			settings, err := config.Load(v.AllSettings())
			if err != nil {
				return err
			}

			logger, err := log.NewCommandLogger(settings.LogLevel)
			if err != nil {
				return fmt.Errorf("unable to initialize logger: %w", err)
			}
			defer logger.Sync()

			if v.ConfigFileUsed() != "" {
				logger.Info("using config file",
					"file", v.ConfigFileUsed())
			}

			return run(stdout, settings, logger)
		},
	}

	flags := cmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.StringSliceP("fields", "f", nil, `comma separated list of fields to select, "" selects every field`)
	flags.StringP("file_link", "l", config.DefaultFileLink, "URL or path of the CSV file")

	// Output options
	flags.Bool("infer-types", false, "write numeric columns as JSON numbers and empty cells as null")
	flags.String("key-naming", config.NamingNone, "naming of the output keys. options: none,snake,camel,lower-camel")
	flags.Int("indent", config.DefaultIndent, "number of spaces used to indent the document, 0 writes it on a single line")
	flags.String("log-level", log.DefaultLevel, "log level written to stderr. options: debug,info,warn,error")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			_ = v.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	v.SetEnvPrefix(envVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(stdout io.Writer, settings *config.Settings, logger log.Logger) error {
	naming, err := config.NewNaming(settings.KeyNaming)
	if err != nil {
		return err
	}

	p := projector.NewProjectorConfigWithLogger(logger).
		WithNaming(naming).
		WithInferTypes(settings.InferTypes).
		WithIndent(settings.IndentString()).
		NewProjector()

	logger.Debug("processing document",
		"location", settings.FileLink,
		"fields", settings.Fields)

	document, err := p.ProcessDocument(context.Background(), settings.Fields, settings.FileLink)
	if err != nil {
		return err
	}

	_, err = stdout.Write(document)
	return err
}

func initialize(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to read config file '%s': %w", cfgFile, err)
	}
	return nil
}
