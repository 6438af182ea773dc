package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rrgmc/ucr"
	"github.com/rrgmc/ucr/value"
	"github.com/spf13/cobra"
)

func newTransformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [file or directory...]",
		Short: "Transform form documents into a payload",
		Long: `Transform reads form documents from files, directories (files ending in .ucr.yaml,
.ucr.yml or .ucr.json, recursively) or standard input ("-" or no arguments), and prints
the create/update/remove payload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(cmd, args)
		},
	}

	cmd.Flags().StringP("format", "f", "json", "output format (json, yaml)")
	cmd.Flags().String("id", "", "id conversion (string, int64, uuid); default keeps id values unchanged")
	cmd.Flags().String("remove-id", "", "id conversion for the remove bucket only (string, int64, uuid); default uses --id")
	cmd.Flags().StringSliceP("table", "t", nil, "only output these tables (repeatable)")
	_ = a.v.BindPFlag("transform.format", cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag("transform.id", cmd.Flags().Lookup("id"))
	_ = a.v.BindPFlag("transform.remove_id", cmd.Flags().Lookup("remove-id"))
	_ = a.v.BindPFlag("transform.tables", cmd.Flags().Lookup("table"))

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, args []string) error {
	idConverter, err := value.IDConverterByName(a.v.GetString("transform.id"))
	if err != nil {
		return err
	}

	removeIDConverter, err := value.IDConverterByName(a.v.GetString("transform.remove_id"))
	if err != nil {
		return err
	}

	options := []ucr.GenerateOption{
		ucr.WithLogger(a.logger),
		ucr.WithLoadValueParser(value.ValueUUID{}),
	}
	if idConverter != nil {
		options = append(options, ucr.WithIDConverter(idConverter))
	}
	if removeIDConverter != nil {
		options = append(options, ucr.WithRemoveIDConverter(removeIDConverter))
	}
	if tables := a.v.GetStringSlice("transform.tables"); len(tables) > 0 {
		options = append(options, ucr.WithTables(tables...))
	}

	payload, err := ucr.Generate(&pathFileProvider{paths: args, stdin: cmd.InOrStdin()}, options...)
	if err != nil {
		return err
	}

	a.logger.Info("payload generated", "tables", len(payload.Tables()), "items", payload.Len())

	return writePayload(cmd.OutOrStdout(), payload, a.v.GetString("transform.format"))
}

func writePayload(w io.Writer, payload *ucr.Payload, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json", "":
		data, err = json.MarshalIndent(payload, "", "  ")
		data = append(data, '\n')
	case "yaml", "yml":
		data, err = yaml.Marshal(payload)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding payload: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// pathFileProvider is a [ucr.FileProvider] over command line arguments. Directories are read with
// [ucr.NewDirectoryFileProvider], files are read regardless of extension, and "-" (or no arguments) reads
// stdin.
type pathFileProvider struct {
	paths []string
	stdin io.Reader
}

func (p *pathFileProvider) Load(callback ucr.FileProviderCallback) error {
	if len(p.paths) == 0 {
		return callback(ucr.FileInfo{Name: "<stdin>", File: p.stdin})
	}

	for _, path := range p.paths {
		if path == "-" {
			if err := callback(ucr.FileInfo{Name: "<stdin>", File: p.stdin}); err != nil {
				return err
			}
			continue
		}

		st, err := os.Stat(path)
		if err != nil {
			return err
		}

		if st.IsDir() {
			if err := ucr.NewDirectoryFileProvider(path).Load(callback); err != nil {
				return err
			}
			continue
		}

		if err := p.loadFile(path, callback); err != nil {
			return err
		}
	}
	return nil
}

func (p *pathFileProvider) loadFile(path string, callback ucr.FileProviderCallback) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := callback(ucr.FileInfo{Name: path, File: file}); err != nil {
		return fmt.Errorf("error processing file '%s': %w", path, err)
	}
	return nil
}
