package output

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	List Format = "list"
	JSON Format = "json"
	YAML Format = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch format := Format(strings.ToLower(s)); format {
	case List, JSON, YAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Write writes prefixes to w. JSON and YAML write a single sequence, list
// writes one prefix per line.
func (format Format) Write(w io.Writer, prefixes []string) error {
	if prefixes == nil {
		prefixes = []string{}
	}

	switch format {
	case JSON:
		data, err := json.Marshal(prefixes)
		if err != nil {
			return fmt.Errorf("failed to serialize prefixes to JSON: %w", err)
		}
		return writeLine(w, string(data))
	case YAML:
		data, err := yaml.Marshal(prefixes)
		if err != nil {
			return fmt.Errorf("failed to serialize prefixes to YAML: %w", err)
		}
		if _, err = w.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	case List:
		for _, prefix := range prefixes {
			if err := writeLine(w, prefix); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", string(format))
	}
}

func writeLine(w io.Writer, line string) error {
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
