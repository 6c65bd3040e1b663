package csvdoc

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config controls how Parse splits the input.
type Config struct {
	// Separator is an explicit delimiter. It must be exactly one character.
	Separator string
	// AutoDetect infers the delimiter when Separator is empty.
	AutoDetect bool
	// MaxRows caps the number of data rows. Zero or less means no limit.
	// The header row does not count.
	MaxRows int
	// NoHeader treats the first row as data and uses positional keys "1", "2", ...
	NoHeader bool
}

func (c Config) separator(input string) (rune, error) {
	if c.Separator != "" {
		if utf8.RuneCountInString(c.Separator) != 1 {
			return 0, errors.Wrapf(ErrInvalidSeparator, "separator %q", c.Separator)
		}
		sep, _ := utf8.DecodeRuneInString(c.Separator)
		if sep == utf8.RuneError || sep == cQuote || isLineEnd(sep) {
			return 0, errors.Wrapf(ErrInvalidSeparator, "separator %q", c.Separator)
		}
		return sep, nil
	}
	if c.AutoDetect {
		return detectSeparator(input), nil
	}
	return cDefaultSeparator, nil
}

// Parse splits input into a Table and returns it with the number of data
// rows produced. Malformed quoting and ragged rows never fail; the only
// errors are ErrEmptyInput and ErrInvalidSeparator.
func Parse(input string, cfg Config) (*Table, int, error) {
	if input == "" {
		return nil, 0, errors.WithStack(ErrEmptyInput)
	}
	input = strings.TrimPrefix(input, cUTF8BOM)
	sep, err := cfg.separator(input)
	if err != nil {
		return nil, 0, err
	}

	p := newParser(input, sep)
	t := newTable(sep)
	if !cfg.NoHeader {
		if header, ok := p.next(); ok {
			t.setHeader(header)
		}
	}
	for cfg.MaxRows <= 0 || len(t.rows) < cfg.MaxRows {
		record, ok := p.next()
		if !ok {
			break
		}
		t.appendRecord(record)
	}

	logrus.WithFields(logrus.Fields{
		"separator": SeparatorName(sep),
		"columns":   len(t.columnKeys),
		"rows":      len(t.rows),
	}).Debug("Parsed csv")
	return t, len(t.rows), nil
}

type fieldState int

const (
	stateFieldStart fieldState = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
)

// parser holds the state of one Parse call.
type parser struct {
	input  string
	pos    int
	sep    rune
	state  fieldState
	field  strings.Builder
	record []string
}

func newParser(input string, sep rune) *parser {
	p := new(parser)
	p.input = input
	p.sep = sep
	return p
}

// next returns the next record, skipping empty lines.
func (p *parser) next() ([]string, bool) {
	for p.pos < len(p.input) {
		if record, ok := p.readRecord(); ok {
			return record, true
		}
	}
	return nil, false
}

// readRecord consumes one logical record. It reports false for an empty line.
func (p *parser) readRecord() ([]string, bool) {
	p.state = stateFieldStart
	p.record = nil
	p.field.Reset()
	touched := false

	for p.pos < len(p.input) {
		start := p.pos
		c, size := utf8.DecodeRuneInString(p.input[start:])
		p.pos += size
		raw := p.input[start:p.pos]

		switch p.state {
		case stateFieldStart:
			switch {
			case c == cQuote:
				p.state = stateQuoted
			case c == p.sep:
				p.emitField()
			case isLineEnd(c):
				p.skipLF(c)
				if !touched {
					return nil, false
				}
				p.emitField()
				return p.record, true
			default:
				p.field.WriteString(raw)
				p.state = stateUnquoted
			}
		case stateUnquoted:
			switch {
			case c == p.sep:
				p.emitField()
			case isLineEnd(c):
				p.skipLF(c)
				p.emitField()
				return p.record, true
			default:
				p.field.WriteString(raw)
			}
		case stateQuoted:
			if c == cQuote {
				p.state = stateQuoteInQuoted
			} else {
				p.field.WriteString(raw)
			}
		case stateQuoteInQuoted:
			switch {
			case c == cQuote:
				p.field.WriteRune(cQuote)
				p.state = stateQuoted
			case c == p.sep:
				p.emitField()
			case isLineEnd(c):
				p.skipLF(c)
				p.emitField()
				return p.record, true
			default:
				// text after the closing quote is kept as is
				p.field.WriteString(raw)
				p.state = stateUnquoted
			}
		}
		touched = true
	}

	if !touched {
		return nil, false
	}
	if p.state == stateQuoted {
		logrus.WithField("offset", p.pos).Debug("Unterminated quoted field closed at end of input")
	}
	p.emitField()
	return p.record, true
}

func (p *parser) emitField() {
	p.record = append(p.record, p.field.String())
	p.field.Reset()
	p.state = stateFieldStart
}

// skipLF consumes the '\n' of a "\r\n" pair.
func (p *parser) skipLF(c rune) {
	if c == '\r' && p.pos < len(p.input) && p.input[p.pos] == '\n' {
		p.pos++
	}
}

func isLineEnd(c rune) bool {
	return c == '\n' || c == '\r'
}
