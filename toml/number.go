package toml

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/doctree-format/doctree/ir"
)

const dateTokenLen = len("2006-01-02")

// isDateToken reports whether tok starts like a TOML date: dddd-dd-...
func isDateToken(tok []byte) bool {
	if len(tok) < dateTokenLen {
		return false
	}
	for i := 0; i < 4; i++ {
		if !isDigit(tok[i]) {
			return false
		}
	}
	return tok[4] == '-' && tok[7] == '-'
}

// isTimeToken reports whether tok starts like a TOML local time: dd:...
func isTimeToken(tok []byte) bool {
	return len(tok) >= len("00:00:00") &&
		isDigit(tok[0]) && isDigit(tok[1]) && tok[2] == ':'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05.999999999"
	localDTLayout  = "2006-01-02T15:04:05.999999999"
	offsetDTLayout = "2006-01-02T15:04:05.999999999Z07:00"
)

func (p *parser) timeOfDay(tok []byte) (*ir.Value, error) {
	t, err := time.Parse(timeLayout, string(tok))
	if err != nil {
		return nil, p.errf(ErrDateTime, "%q", tok)
	}
	return ir.FromTime(t), nil
}

func (p *parser) dateTime(tok []byte) (*ir.Value, error) {
	s := string(tok)
	if len(s) == dateTokenLen {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, p.errf(ErrDateTime, "%q", s)
		}
		return ir.FromDate(t), nil
	}
	// normalize the lowercase t/z and space separators TOML allows
	if s[dateTokenLen] == 't' || s[dateTokenLen] == ' ' {
		s = s[:dateTokenLen] + "T" + s[dateTokenLen+1:]
	}
	if s[len(s)-1] == 'z' {
		s = s[:len(s)-1] + "Z"
	}
	if hasOffset(s) {
		t, err := time.Parse(offsetDTLayout, s)
		if err != nil {
			return nil, p.errf(ErrDateTime, "%q", tok)
		}
		return ir.FromDateTime(t, true), nil
	}
	t, err := time.Parse(localDTLayout, s)
	if err != nil {
		return nil, p.errf(ErrDateTime, "%q", tok)
	}
	return ir.FromDateTime(t, false), nil
}

// hasOffset reports whether a normalized date-time text carries a zone:
// a trailing Z or a +/- after the time part.
func hasOffset(s string) bool {
	if s[len(s)-1] == 'Z' {
		return true
	}
	for i := dateTokenLen + 1; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return true
		}
	}
	return false
}

// number classifies and parses an integer or float token.
func (p *parser) number(tok []byte) (*ir.Value, error) {
	s := string(tok)
	body := s
	neg := false
	switch {
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	case strings.HasPrefix(body, "-"):
		body = body[1:]
		neg = true
	}
	if body == "" {
		return nil, p.errf(ErrValue, "%q", s)
	}
	switch body {
	case "inf":
		f := math.Inf(1)
		if neg {
			f = math.Inf(-1)
		}
		return ir.FromFloat(f), nil
	case "nan":
		return ir.FromFloat(math.NaN()), nil
	}
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0o") ||
		strings.HasPrefix(body, "0b") {
		if s[0] == '+' || s[0] == '-' {
			return nil, p.errf(ErrNumber, "sign on non-decimal integer %q", s)
		}
		if err := checkUnderscores(body[2:]); err != nil {
			return nil, p.errf(ErrNumber, "%q: %v", s, err)
		}
		v, err := strconv.ParseInt(body, 0, 64)
		if err != nil {
			return nil, p.errf(ErrNumber, "%q", s)
		}
		return ir.FromInt(v), nil
	}
	if isDigit(body[0]) && len(body) > 1 && body[0] == '0' &&
		(isDigit(body[1]) || body[1] == '_') {
		return nil, p.errf(ErrLeadingZero, "%q", s)
	}
	if strings.ContainsAny(body, ".eE") {
		return p.float(s, body, neg)
	}
	if err := checkUnderscores(body); err != nil {
		return nil, p.errf(ErrNumber, "%q: %v", s, err)
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
	if err != nil {
		return nil, p.errf(ErrNumber, "%q", s)
	}
	return ir.FromInt(v), nil
}

func (p *parser) float(s, body string, neg bool) (*ir.Value, error) {
	if err := checkFloatShape(body); err != nil {
		return nil, p.errf(ErrNumber, "%q: %v", s, err)
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(body, "_", ""), 64)
	if err != nil {
		return nil, p.errf(ErrNumber, "%q", s)
	}
	if neg {
		f = -f
	}
	return ir.FromFloat(f), nil
}

// checkUnderscores requires each underscore to sit between two digits
// (hex digits included).
func checkUnderscores(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 ||
			!isHexDigit(s[i-1]) || !isHexDigit(s[i+1]) {
			return ErrNumber
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// checkFloatShape enforces digits on both sides of the decimal point and
// well-placed underscores.
func checkFloatShape(s string) error {
	if err := checkUnderscores(s); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return ErrNumber
		}
	}
	return nil
}
