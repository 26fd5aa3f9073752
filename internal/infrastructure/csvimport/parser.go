// Package csvimport reads spreadsheet exports for bulk catalog loads. It
// handles the details real files get wrong, such as byte order marks,
// stray whitespace and short rows, and reports problems per cell.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser reads a header row followed by data rows
type Parser struct {
	reader  *csv.Reader
	headers []string
	index   map[string]int
	line    int
	maxRows int
	rows    int
}

// Option configures a Parser
type Option func(*Parser)

// WithDelimiter sets the field delimiter, comma by default
func WithDelimiter(d rune) Option {
	return func(p *Parser) { p.reader.Comma = d }
}

// WithMaxRows caps the number of data rows. Zero means no cap.
func WithMaxRows(n int) Option {
	return func(p *Parser) { p.maxRows = n }
}

// NewParser strips a UTF-8 byte order mark, checks the encoding of the
// first block and reads the header row. Header names are lower-cased.
func NewParser(r io.Reader, opts ...Option) (*Parser, error) {
	buf := bufio.NewReader(r)

	if head, _ := buf.Peek(len(utf8BOM)); string(head) == string(utf8BOM) {
		_, _ = buf.Discard(len(utf8BOM))
	}

	const sniff = 4096
	block, err := buf.Peek(sniff)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(block) == 0 {
		return nil, ErrEmptyFile
	}
	if !validUTF8Prefix(block) {
		return nil, ErrInvalidEncoding
	}

	cr := csv.NewReader(buf)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	p := &Parser{reader: cr, index: make(map[string]int)}
	for _, opt := range opts {
		opt(p)
	}

	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	p.line = 1

	for i, h := range record {
		name := strings.ToLower(strings.TrimSpace(h))
		p.headers = append(p.headers, name)
		if name != "" {
			p.index[name] = i
		}
	}
	if len(p.index) == 0 {
		return nil, ErrMissingHeader
	}
	return p, nil
}

// validUTF8Prefix allows the sniffed block to end in the middle of a
// multi-byte rune
func validUTF8Prefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}
	for cut := 1; cut < utf8.UTFMax && cut < len(b); cut++ {
		if utf8.Valid(b[:len(b)-cut]) && !utf8.FullRune(b[len(b)-cut:]) {
			return true
		}
	}
	return false
}

// Headers returns the normalized header names in file order
func (p *Parser) Headers() []string {
	return p.headers
}

// Missing returns the names in required that the header lacks
func (p *Parser) Missing(required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := p.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Row is one data line keyed by header name
type Row struct {
	Line   int
	values map[string]string
}

// Get returns the trimmed cell for column, or "" when the row is short
func (r *Row) Get(column string) string {
	return r.values[column]
}

// Blank reports whether every cell is empty
func (r *Row) Blank() bool {
	for _, v := range r.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Next returns the next non-blank row, or io.EOF. A malformed line yields
// a RowError and parsing may continue.
func (p *Parser) Next() (*Row, error) {
	for {
		record, err := p.reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				p.line = parseErr.StartLine
				return nil, RowError{Row: p.line, Code: CodeMalformed, Message: parseErr.Err.Error()}
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		// quoted cells may span lines
		p.line, _ = p.reader.FieldPos(0)

		row := &Row{Line: p.line, values: make(map[string]string, len(p.index))}
		for name, i := range p.index {
			if i < len(record) {
				row.values[name] = strings.TrimSpace(record[i])
			}
		}
		if row.Blank() {
			continue
		}

		p.rows++
		if p.maxRows > 0 && p.rows > p.maxRows {
			return nil, ErrTooManyRows
		}
		return row, nil
	}
}

// ReadAll collects every row. Malformed lines are added to errs.
func (p *Parser) ReadAll(errs *Errors) ([]*Row, error) {
	var rows []*Row
	for {
		row, err := p.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		var rowErr RowError
		if errors.As(err, &rowErr) {
			errs.Add(rowErr)
			continue
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
