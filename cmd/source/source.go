// Package source holds the flags that locate a compilation result on disk.
package source

import (
	"fmt"

	"github.com/LegacyCodeHQ/solflat/compilation"
	"github.com/spf13/cobra"
)

// Options locates a compilation result: either a bundle, or a solc standard-JSON
// input/output pair together with a target.
type Options struct {
	Bundle     string
	Input      string
	OutputJSON string
	Target     string
}

// AddFlags registers the compilation flags on cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Bundle, "bundle", "b", "", "Compilation bundle with compiler input, output and target")
	cmd.Flags().StringVarP(&o.Input, "input", "i", "", "solc standard-JSON input file")
	cmd.Flags().StringVar(&o.OutputJSON, "output-json", "", "solc standard-JSON output file")
	cmd.Flags().StringVarP(&o.Target, "target", "t", "", "File to flatten (overrides the bundle target)")
}

// Validate checks that exactly one way of locating the compilation was given.
func (o Options) Validate() error {
	hasStandardJSON := o.Input != "" || o.OutputJSON != ""

	switch {
	case o.Bundle != "" && hasStandardJSON:
		return fmt.Errorf("--bundle cannot be used with --input or --output-json")
	case o.Bundle != "":
		return nil
	case o.Input == "" || o.OutputJSON == "":
		return fmt.Errorf("either --bundle or both --input and --output-json are required")
	case o.Target == "":
		return fmt.Errorf("--target is required with --input and --output-json")
	default:
		return nil
	}
}

// Load reads the compilation result.
func (o Options) Load() (compilation.Result, error) {
	if err := o.Validate(); err != nil {
		return compilation.Result{}, err
	}

	if o.Bundle == "" {
		return compilation.LoadStandardJSON(o.Input, o.OutputJSON, o.Target)
	}

	result, err := compilation.LoadBundle(o.Bundle)
	if err != nil {
		return compilation.Result{}, err
	}
	if o.Target != "" {
		result.Target = o.Target
	}
	return result, nil
}

// Files returns the paths Load reads.
func (o Options) Files() []string {
	if o.Bundle != "" {
		return []string{o.Bundle}
	}
	return []string{o.Input, o.OutputJSON}
}
