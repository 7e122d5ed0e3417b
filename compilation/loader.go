package compilation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LegacyCodeHQ/solflat/depgraph/solidity"
)

// standardInput is the subset of solc standard-JSON input solflat reads.
type standardInput struct {
	Sources map[string]struct {
		Content *string `json:"content"`
	} `json:"sources"`
}

// standardOutput is the subset of solc standard-JSON output solflat reads.
type standardOutput struct {
	Errors []struct {
		Severity         string `json:"severity"`
		FormattedMessage string `json:"formattedMessage"`
		Message          string `json:"message"`
	} `json:"errors"`
	Sources map[string]struct {
		ID  int                  `json:"id"`
		AST *solidity.SourceUnit `json:"ast"`
	} `json:"sources"`
}

// bundle mirrors the payload an editor hands over when compilation finishes:
// the compiler input together with the target under "source" and the compiler
// output under "data".
type bundle struct {
	Source struct {
		Target string `json:"target"`
		standardInput
	} `json:"source"`
	Data standardOutput `json:"data"`
}

// LoadBundle reads a compilation bundle from path.
func LoadBundle(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open compilation bundle: %w", err)
	}
	defer f.Close()

	result, err := DecodeBundle(f)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return result, nil
}

// DecodeBundle decodes a compilation bundle.
func DecodeBundle(r io.Reader) (Result, error) {
	var b bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Result{}, fmt.Errorf("failed to decode compilation bundle: %w", err)
	}
	if b.Source.Target == "" {
		return Result{}, fmt.Errorf("compilation bundle has no target")
	}
	return newResult(b.Source.Target, b.Source.standardInput, b.Data)
}

// LoadStandardJSON reads a solc standard-JSON input/output pair and targets the given file.
func LoadStandardJSON(inputPath, outputPath, target string) (Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open compiler input: %w", err)
	}
	defer in.Close()

	out, err := os.Open(outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open compiler output: %w", err)
	}
	defer out.Close()

	result, err := DecodeStandardJSON(in, out, target)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load %s and %s: %w", inputPath, outputPath, err)
	}
	return result, nil
}

// DecodeStandardJSON decodes a solc standard-JSON input/output pair.
func DecodeStandardJSON(input, output io.Reader, target string) (Result, error) {
	if target == "" {
		return Result{}, fmt.Errorf("target file is required")
	}

	var in standardInput
	if err := json.NewDecoder(input).Decode(&in); err != nil {
		return Result{}, fmt.Errorf("failed to decode compiler input: %w", err)
	}

	var out standardOutput
	if err := json.NewDecoder(output).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("failed to decode compiler output: %w", err)
	}

	return newResult(target, in, out)
}

func newResult(target string, in standardInput, out standardOutput) (Result, error) {
	for _, e := range out.Errors {
		if e.Severity == "error" {
			msg := e.FormattedMessage
			if msg == "" {
				msg = e.Message
			}
			return Result{}, fmt.Errorf("compilation failed: %s", msg)
		}
	}

	result := Result{
		Target:  target,
		Sources: make(map[string]string, len(in.Sources)),
		ASTs:    make(map[string]*solidity.SourceUnit, len(out.Sources)),
	}

	for id, source := range in.Sources {
		if source.Content == nil {
			return Result{}, fmt.Errorf("source %s has no content", id)
		}
		result.Sources[id] = *source.Content
	}

	for id, source := range out.Sources {
		if source.AST == nil {
			continue
		}
		if source.AST.AbsolutePath == "" {
			source.AST.AbsolutePath = id
		}
		result.ASTs[id] = source.AST
	}

	return result, nil
}
