// Copyright 2016 Aleksandr Demakin. All rights reserved.

package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type names []string

func (n names) WriteText(w io.Writer) error {
	for _, name := range n {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (n names) Headers() []string {
	return []string{"NAME"}
}

func (n names) Rows() [][]string {
	rows := make([][]string, 0, len(n))
	for _, name := range n {
		rows = append(rows, []string{name})
	}
	return rows
}

func TestParseFormat(t *testing.T) {
	data := map[string]Format{
		"":      FormatText,
		"text":  FormatText,
		"TABLE": FormatTable,
		" json": FormatJSON,
		"yml":   FormatYAML,
		"yaml":  FormatYAML,
	}
	for in, out := range data {
		f, err := ParseFormat(in)
		assert.NoError(t, err, "input %q", in)
		assert.Equal(t, out, f, "input %q", in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrinterFormats(t *testing.T) {
	data := names{"a", "b"}
	type td struct {
		format Format
		out    string
	}
	expected := []td{
		{format: FormatText, out: "a\nb\n"},
		{format: FormatJSON, out: "[\n  \"a\",\n  \"b\"\n]\n"},
		{format: FormatYAML, out: "- a\n- b\n"},
	}
	for _, d := range expected {
		buff := bytes.NewBuffer(nil)
		require.NoError(t, NewPrinter(buff, d.format).Print(data))
		assert.Equal(t, d.out, buff.String(), "format %s", d.format)
	}
}

func TestPrinterTable(t *testing.T) {
	buff := bytes.NewBuffer(nil)
	require.NoError(t, NewPrinter(buff, FormatTable).Print(names{"queue1"}))
	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "NAME", strings.TrimSpace(lines[0]))
		assert.Equal(t, "queue1", strings.TrimSpace(lines[1]))
	}
}

func TestPrinterNoRenderer(t *testing.T) {
	assert.Error(t, NewPrinter(io.Discard, FormatText).Print(42))
	assert.Error(t, NewPrinter(io.Discard, FormatTable).Print(42))
	assert.Error(t, NewPrinter(io.Discard, Format("xml")).Print(42))
}
