package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/kvpairs/internal/apperror"
	"github.com/muurk/kvpairs/internal/logging"
)

// Format names an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected json or yaml)", s)
	}
}

// Encode renders pairs as a single line in the given format, without a
// trailing newline
func Encode(format Format, pairs map[string]string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(pairs)
		if err != nil {
			return nil, apperror.NewSerializationFailure("output.Encode", "failed to encode pairs as json", err)
		}
		return data, nil

	case FormatYAML:
		data, err := yaml.Marshal(flowMapping(pairs))
		if err != nil {
			return nil, apperror.NewSerializationFailure("output.Encode", "failed to encode pairs as yaml", err)
		}
		return bytes.TrimRight(data, "\n"), nil

	default:
		return nil, apperror.NewSerializationFailure("output.Encode",
			fmt.Sprintf("unsupported output format %q", format), nil)
	}
}

// flowMapping builds a single-line yaml mapping with sorted keys
func flowMapping(pairs map[string]string) *yaml.Node {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pairs[k]},
		)
	}
	return node
}

// Emitter writes the encoded pair collection to an output stream
type Emitter struct {
	out       io.Writer
	format    Format
	clipboard bool
	copyFn    func(string) error
}

// NewEmitter creates an emitter writing format to w
func NewEmitter(w io.Writer, format Format) *Emitter {
	return &Emitter{
		out:    w,
		format: format,
		copyFn: clipboard.WriteAll,
	}
}

// WithClipboard enables copying the emitted line to the clipboard
func (e *Emitter) WithClipboard(enabled bool) *Emitter {
	e.clipboard = enabled
	return e
}

// Format returns the emitter's format
func (e *Emitter) Format() Format {
	return e.format
}

// Emit encodes pairs and writes them as one line
func (e *Emitter) Emit(pairs map[string]string) error {
	data, err := Encode(e.format, pairs)
	if err != nil {
		logging.LogEmit(string(e.format), len(pairs), 0, err)
		return err
	}

	line := append(data, '\n')
	n, err := e.out.Write(line)
	if err != nil {
		failure := apperror.NewSerializationFailure("output.Emit", "failed to write output", err)
		logging.LogEmit(string(e.format), len(pairs), n, failure)
		return failure
	}
	logging.LogEmit(string(e.format), len(pairs), n, nil)

	if e.clipboard {
		if err := e.copyFn(string(data)); err != nil {
			logging.Warn("Clipboard copy failed", zap.Error(err))
		}
	}
	return nil
}
