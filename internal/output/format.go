// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package output formats command results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the plain line-oriented output.
	FormatText Format = "text"
	// FormatTable outputs data in an aligned table.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("invalid output format: %q (valid: text, table, json, yaml)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// TextRenderer is implemented by types having a plain text representation.
type TextRenderer interface {
	WriteText(w io.Writer) error
}

// Printer writes data to out in the configured format.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a new Printer.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the printer's output writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print outputs data in the configured format.
// For text format data must implement TextRenderer, for table format TableRenderer.
func (p *Printer) Print(data interface{}) error {
	switch p.format {
	case FormatText:
		if renderer, ok := data.(TextRenderer); ok {
			return renderer.WriteText(p.out)
		}
		return errors.Errorf("%T has no text representation", data)
	case FormatTable:
		if renderer, ok := data.(TableRenderer); ok {
			return PrintTable(p.out, renderer)
		}
		return errors.Errorf("%T has no table representation", data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}
