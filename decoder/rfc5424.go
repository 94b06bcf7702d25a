package decoder

import (
	"strings"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/lognorm/lognorm/event"
)

const bom = "\ufeff"

// ParseRFC5424 decodes a syslog message in the RFC5424 format.
//
// Example of format:
//
//	"<165>1 2003-10-11T22:14:15.003Z mymachine.example.com myproc 10 ID47 [exampleSDID@32473 iut="3"] An application event log"
//
// The header shape is version-dependent, so a version other than "1" is a
// hard failure. A timestamp token that does not parse as RFC3339 is a soft
// failure: the rest of the header is still decoded and the timestamp stays
// unset. "-" header fields map to absent values, never to the literal dash.
func ParseRFC5424(data string) (*event.Event, error) {
	data = strings.TrimSuffix(data, "\n")
	if len(data) == 0 {
		return nil, errSyslogInvalidFormat
	}

	// priority
	pri, rest, err := parsePriority(data)
	if err != nil {
		return nil, err
	}

	// proto version
	version, rest := cutToken(rest)
	if version != "1" {
		return nil, errSyslogInvalidVersion
	}

	ev := event.New(event.VariantSyslogRFC5424)
	ev.SetPriority(pri)

	next := func() (string, bool) {
		if rest == "" {
			return "", false
		}
		tok, r := cutToken(rest)
		if tok == "" {
			return "", false
		}
		rest = r
		if tok == "-" {
			tok = ""
		}
		return tok, true
	}

	// timestamp
	tsTok, ok := next()
	if !ok {
		return nil, errSyslogInvalidFormat
	}
	if tsTok != "" {
		if ts, tsErr := time.Parse(time.RFC3339Nano, tsTok); tsErr == nil {
			ev.Timestamp = ts
		}
	}

	// hostname, appname, procid, msgid
	for _, field := range []*string{&ev.Hostname, &ev.AppName, &ev.ProcID, &ev.MsgID} {
		tok, tokOk := next()
		if !tokOk {
			return nil, errSyslogInvalidFormat
		}
		*field = tok
	}

	// structured data
	sd, offset, err := parseStructuredData(rest)
	if err != nil {
		return nil, err
	}
	ev.StructuredData = sd
	rest = rest[offset:]

	// no message
	if rest == "" {
		return ev, nil
	}

	// message, separated from the header by exactly one space
	if rest[0] != ' ' {
		return nil, errSyslogInvalidFormat
	}
	rest = strings.TrimPrefix(rest[1:], bom)
	ev.Message = rest

	return ev, nil
}

// parseStructuredData scans zero or more "[SD-ID PARAM="VALUE" ...]"
// elements. A broken element is dropped and scanning resyncs at its
// closing bracket when one exists; elements parsed before it are kept.
func parseStructuredData(data string) ([]event.SDElement, int, error) {
	if data == "" {
		return nil, 0, errSyslogInvalidFormat
	}
	if data[0] == '-' {
		if len(data) == 1 || data[1] == ' ' {
			return nil, 1, nil
		}
		return nil, 0, errSyslogInvalidSD
	}
	if data[0] != '[' {
		return nil, 0, errSyslogInvalidSD
	}

	var elems []event.SDElement
	offset := 0
	for offset < len(data) && data[offset] == '[' {
		elem, n, ok := parseSDElement(data[offset:])
		if !ok {
			skip := resyncSDElement(data[offset:])
			if skip < 0 {
				// unterminated element swallowed the remainder
				return elems, len(data), nil
			}
			offset += skip
			continue
		}
		elems = append(elems, elem)
		offset += n
	}

	return elems, offset, nil
}

func parseSDElement(data string) (event.SDElement, int, bool) {
	none := event.SDElement{}
	i := 1 // past '['

	idStart := i
	for i < len(data) && data[i] != ' ' && data[i] != ']' {
		i++
	}
	if i == len(data) || i == idStart {
		return none, 0, false
	}

	elem := event.SDElement{
		ID:     data[idStart:i],
		Params: orderedmap.NewOrderedMap[string, string](),
	}

	for {
		for i < len(data) && data[i] == ' ' {
			i++
		}
		if i == len(data) {
			return none, 0, false
		}
		if data[i] == ']' {
			return elem, i + 1, true
		}

		// param name
		nameStart := i
		for i < len(data) && data[i] != '=' && data[i] != ' ' && data[i] != ']' {
			i++
		}
		if i == len(data) || data[i] != '=' || i == nameStart {
			return none, 0, false
		}
		name := data[nameStart:i]
		i++

		// param value, double-quoted
		if i == len(data) || data[i] != '"' {
			return none, 0, false
		}
		i++
		value, n, ok := scanSDValue(data[i:])
		if !ok {
			return none, 0, false
		}
		i += n

		elem.Params.Set(name, value)
	}
}

// scanSDValue reads a quoted param value up to the closing quote,
// reversing the RFC5424 escapes for '"', '\' and ']'.
func scanSDValue(data string) (string, int, bool) {
	var b strings.Builder
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '\\' && i+1 < len(data) && isSDEscapable(data[i+1]):
			b.WriteByte(data[i+1])
			i += 2
		case c == '"':
			return b.String(), i + 1, true
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, false
}

func isSDEscapable(c byte) bool {
	return c == '"' || c == '\\' || c == ']'
}

// escapeSDValue is the two-sided inverse of scanSDValue's unescaping.
func escapeSDValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isSDEscapable(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// resyncSDElement finds the end of a broken element, the first unescaped
// ']'. Returns -1 if the element runs to the end of input.
func resyncSDElement(data string) int {
	for i := 1; i < len(data); i++ {
		if data[i] == ']' && data[i-1] != '\\' {
			return i + 1
		}
	}
	return -1
}
