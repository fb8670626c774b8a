package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	colorwish "github.com/nikas90/kids-coloring-ai"
	"github.com/nikas90/kids-coloring-ai/forms"
)

// printError renders an error the way the product's forms would: field
// validation errors line by line, API errors as a single message.
func printError(err error) {
	var fieldErrs forms.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", field, fieldErrs[field])
		}
		return
	}

	if apiErr, ok := colorwish.IsAPIError(err); ok {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apiErr.Message)
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// printYAML writes v as YAML to stdout.
func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// wantYAML reports whether -o yaml was requested.
func wantYAML() bool {
	return viper.GetString("output") == "yaml"
}
