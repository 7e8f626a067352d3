package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-subst/pkg/subst"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var renderFlags struct {
	dataFile  string
	template  string
	delimiter string
	outFile   string
}

var renderCmd = &cobra.Command{
	Use:   "render [template-file]",
	Short: "Render a template against a YAML or JSON data document",
	Long: `Render reads a template from a file (or "-" for stdin, or --template for an
inline string) and substitutes every {key.path} placeholder with the value the
path resolves to in the --data document. YAML and JSON data files are both
accepted.

Unresolvable placeholders pass through unchanged. A path that drills into a
plain scalar aborts the render with a traversal error and a non-zero exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.dataFile, "data", "d", "", "YAML or JSON file providing the data root")
	renderCmd.Flags().StringVarP(&renderFlags.template, "template", "t", "", "inline template string instead of a template file")
	renderCmd.Flags().StringVar(&renderFlags.delimiter, "delimiter", "", "key path delimiter (default \".\")")
	renderCmd.Flags().StringVarP(&renderFlags.outFile, "out", "o", "", "write output to a file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	template, err := readTemplate(cmd, args)
	if err != nil {
		return err
	}

	data, err := loadData(renderFlags.dataFile)
	if err != nil {
		return err
	}

	cfg := &subst.Config{Delimiter: renderFlags.delimiter}
	if err := cfg.Validate(); err != nil {
		return err
	}

	engine := subst.NewWithConfig(cfg)
	output, err := engine.Render(data, template)
	if err != nil {
		return err
	}

	if renderFlags.outFile != "" {
		return os.WriteFile(renderFlags.outFile, []byte(output), 0644)
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	if renderFlags.template != "" {
		if len(args) > 0 {
			return "", errors.New("--template and a template file are mutually exclusive")
		}
		return renderFlags.template, nil
	}

	if len(args) == 0 {
		return "", errors.New("a template file or --template is required")
	}

	if args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read template from stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read template file: %w", err)
	}
	return string(content), nil
}

// loadData parses the data document. YAML is a superset of JSON, so a single
// parser covers both formats. No --data flag means a nil data root, which
// only matters once a placeholder actually resolves.
func loadData(path string) (interface{}, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return data, nil
}
