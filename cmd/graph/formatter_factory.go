package graph

import (
	"fmt"

	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters/dot"
	"github.com/LegacyCodeHQ/solflat/cmd/graph/formatters/mermaid"
)

// URLGenerator is implemented by formatters whose output can be opened in an online viewer.
type URLGenerator interface {
	GenerateURL(output string) (string, bool)
}

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (formatters.Formatter, error) {
	f, ok := formatters.ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}

	switch f {
	case formatters.OutputFormatDOT:
		return &dot.Formatter{}, nil
	case formatters.OutputFormatMermaid:
		return &mermaid.Formatter{}, nil
	case formatters.OutputFormatJSON:
		return &formatters.JSONFormatter{}, nil
	case formatters.OutputFormatOrder:
		return &formatters.OrderFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}
}
