package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/temporary-accommodation/tasklist/internal/config"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format: text, yaml or json")
}

func outputFormat(cmd *cobra.Command) (config.OutputFormat, error) {
	raw, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}
	return config.NormalizeOutputFormat(raw)
}

// render writes v as YAML or JSON, or calls text for the text format.
func render(w io.Writer, format config.OutputFormat, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return text(w)
	}
}
