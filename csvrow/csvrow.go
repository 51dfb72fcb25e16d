// Package csvrow builds and parses single delimited-text lines for filecache records.
//
// Fields are quoted per RFC 4180 with ',' as separator. Backslash, CR and LF inside a
// field are escaped (\\, \r, \n) so a row never spans more than one line.
package csvrow

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMultiline  = errors.New("csvrow: line contains a newline")
	ErrFieldCount = errors.New("csvrow: unexpected field count")
	ErrEscape     = errors.New("csvrow: invalid escape sequence")
)

var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// Join encodes fields as one line without a trailing newline.
func Join(fields ...string) string {
	if len(fields) == 1 && fields[0] == "" {
		return `""`
	}
	esc := make([]string, len(fields))
	for i, f := range fields {
		esc[i] = escaper.Replace(f)
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(esc) // strings.Builder never fails
	w.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}

// Split is the inverse of Join. When n > 0 the line must hold exactly n fields.
func Split(line string, n int) ([]string, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, ErrMultiline
	}
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrFieldCount)
	}
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	rec, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvrow: %w", err)
	}
	if n > 0 && len(rec) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(rec), n)
	}
	for i, f := range rec {
		u, err := unescape(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		rec[i] = u
	}
	return rec, nil
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", ErrEscape
		}
		i++
		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			return "", fmt.Errorf("%w: \\%c", ErrEscape, s[i])
		}
	}
	return sb.String(), nil
}
