package schema

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// formatTokens maps dayjs format tokens to Go reference-time chunks.
// Ordered longest first so that greedy matching picks YYYY before YY.
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"SSS", "000"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"SS", "00"},
	{"ZZ", "-0700"},
	{"M", "1"},
	{"D", "2"},
	{"H", "15"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"S", "0"},
	{"A", "PM"},
	{"a", "pm"},
	{"Z", "-07:00"},
}

// goLayoutChunks appear in literal text but would be read as layout elements by package time.
var goLayoutChunks = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07", "_2"}

var formatCache sync.Map // format -> *compiledFormat

// compiledFormat is a translated format. Segments split the layout around
// tokens package time cannot render, currently only the unpadded 24 hour H.
type compiledFormat struct {
	layout   string
	segments []segment
}

type segment struct {
	layout string
	token  string
}

// Layout translates a dayjs style format (for example "YYYY-MM-DD HH:mm:ss")
// into a layout accepted by time.Parse. Text wrapped in square brackets is
// copied literally. Letters that are not tokens are copied as is.
func Layout(format string) (string, error) {
	cf, err := compile(format)
	if err != nil {
		return "", err
	}
	return cf.layout, nil
}

// Render formats t with a dayjs style format. Parsing the result with Layout
// yields t again, and an input that parses but differs from Render of the
// parsed time is not in the exact form the format describes.
func Render(t time.Time, format string) (string, error) {
	cf, err := compile(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, seg := range cf.segments {
		if seg.token == "H" {
			b.WriteString(strconv.Itoa(t.Hour()))
			continue
		}
		b.WriteString(t.Format(seg.layout))
	}
	return b.String(), nil
}

func compile(format string) (*compiledFormat, error) {
	if cached, ok := formatCache.Load(format); ok {
		return cached.(*compiledFormat), nil
	}

	cf, err := translate(format)
	if err != nil {
		return nil, err
	}
	formatCache.Store(format, cf)
	return cf, nil
}

func translate(format string) (*compiledFormat, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: empty format", ErrInvalidFormat)
	}

	var (
		layout strings.Builder
		chunk  strings.Builder
		segs   []segment
	)
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated literal in %q", ErrInvalidFormat, format)
			}
			lit := format[i+1 : i+end]
			if err := checkLiteral(format, lit); err != nil {
				return nil, err
			}
			layout.WriteString(lit)
			chunk.WriteString(lit)
			i += end + 1
			continue
		}

		if tok, std, ok := matchToken(format[i:]); ok {
			if strings.HasPrefix(tok, "S") && (i == 0 || (format[i-1] != '.' && format[i-1] != ',')) {
				return nil, fmt.Errorf("%w: fractional seconds must follow '.' or ',' in %q", ErrInvalidFormat, format)
			}
			layout.WriteString(std)
			if tok == "H" {
				if chunk.Len() > 0 {
					segs = append(segs, segment{layout: chunk.String()})
					chunk.Reset()
				}
				segs = append(segs, segment{layout: std, token: tok})
			} else {
				chunk.WriteString(std)
			}
			i += len(tok)
			continue
		}

		if format[i] == 'd' {
			return nil, fmt.Errorf("%w: unsupported token %q in %q", ErrInvalidFormat, "d", format)
		}
		if err := checkLiteral(format, format[i:i+1]); err != nil {
			return nil, err
		}
		layout.WriteByte(format[i])
		chunk.WriteByte(format[i])
		i++
	}
	if chunk.Len() > 0 {
		segs = append(segs, segment{layout: chunk.String()})
	}
	return &compiledFormat{layout: layout.String(), segments: segs}, nil
}

func matchToken(s string) (string, string, bool) {
	for _, t := range formatTokens {
		if strings.HasPrefix(s, t.token) {
			return t.token, t.layout, true
		}
	}
	return "", "", false
}

func checkLiteral(format, lit string) error {
	if strings.ContainsAny(lit, "0123456789") {
		return fmt.Errorf("%w: digits are not allowed in literal text of %q", ErrInvalidFormat, format)
	}
	for _, chunk := range goLayoutChunks {
		if strings.Contains(lit, chunk) {
			return fmt.Errorf("%w: literal %q is ambiguous in %q", ErrInvalidFormat, lit, format)
		}
	}
	return nil
}
