package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatOrder   OutputFormat = "order"
)

var outputFormats = []OutputFormat{
	OutputFormatDOT,
	OutputFormatMermaid,
	OutputFormatJSON,
	OutputFormatOrder,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat returns the OutputFormat named by s.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	for _, f := range outputFormats {
		if string(f) == strings.ToLower(s) {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats returns the accepted format names as a comma-separated list.
func SupportedFormats() string {
	names := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
