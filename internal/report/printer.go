// Package report renders report sections for a terminal.
//
// A section is a banner followed by its records. Records are rendered either
// as YAML documents (FormatBlock) or as an aligned text table (FormatTable).
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format selects how records are rendered.
type Format string

const (
	// FormatBlock renders each record as an indented YAML mapping.
	FormatBlock Format = "block"
	// FormatTable renders all records as one aligned table.
	FormatTable Format = "table"
)

// BannerWidth is the width of the "=" rule around section titles.
const BannerWidth = 80

// EmptyMessage is printed in table format when a section has no rows.
const EmptyMessage = "Nenhum resultado encontrado."

// ErrUnknownFormat is returned by ParseFormat for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name into a Format. The empty string selects
// FormatBlock.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatBlock:
		return FormatBlock, nil
	case FormatTable:
		return FormatTable, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, FormatBlock, FormatTable)
}

// Section is one titled result set.
type Section struct {
	// Name is the short identifier of the section, e.g. "q1".
	Name  string
	Title string

	// Headers and Rows feed the table layout. A nil cell is a NULL.
	Headers []string
	Rows    [][]*string

	// Records feed the block layout, one YAML document each.
	Records []any
}

// Len returns the number of records in the section.
func (s Section) Len() int {
	return len(s.Rows)
}

// Printer writes sections to an io.Writer.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer. An empty format selects FormatBlock.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatBlock
	}
	return &Printer{w: w, format: format}
}

// Format returns the layout the printer renders records with.
func (p *Printer) Format() Format {
	return p.format
}

// Banner writes a title framed by two rules. Multi-line titles are written
// as is.
func (p *Printer) Banner(title string) error {
	rule := strings.Repeat("=", BannerWidth)
	_, err := fmt.Fprintf(p.w, "%s\n%s\n%s\n", rule, title, rule)
	return err
}

// Print writes the section banner followed by its records.
func (p *Printer) Print(s Section) error {
	if err := p.Banner(s.Title); err != nil {
		return err
	}

	var err error
	switch p.format {
	case FormatTable:
		err = p.table(s.Headers, s.Rows)
	default:
		err = p.blocks(s.Records)
	}
	if err != nil {
		return fmt.Errorf("failed to print %s: %w", s.Name, err)
	}

	_, err = fmt.Fprintln(p.w)
	return err
}

// Message writes a single line of text.
func (p *Printer) Message(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func (p *Printer) blocks(records []any) error {
	if len(records) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return enc.Close()
}

func cell(v *string) string {
	if v == nil {
		return "NULL"
	}
	return *v
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func (p *Printer) table(headers []string, rows [][]*string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.w, EmptyMessage)
		return err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, v := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell(v)))
		}
	}

	var b strings.Builder
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = pad(h, widths[i])
	}
	b.WriteString(strings.Join(cols, " | "))
	b.WriteByte('\n')

	for i, w := range widths {
		cols[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cols, "-+-"))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, v := range row {
			cols[i] = pad(cell(v), widths[i])
		}
		b.WriteString(strings.Join(cols, " | "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}
