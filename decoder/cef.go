package decoder

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// CEF header field names, in wire order.
var cefHeaderFields = []string{
	"cef_version",
	"device_vendor",
	"device_product",
	"device_version",
	"signature_id",
	"name",
	"severity",
}

// ParseCEF parses an ArcSight Common Event Format message:
//
//	CEF:Version|Device Vendor|Device Product|Device Version|Signature ID|Name|Severity|Extension
//
// Header fields may escape pipes with a backslash; the extension holds
// key=value pairs where values may contain spaces and the escapes
// \\ \= \| \n \r \t \s. Custom "somethingLabel" fields rename their base
// field, as ArcSight consumers expect. Returns nil if the text is not CEF.
func ParseCEF(message string) *orderedmap.OrderedMap[string, string] {
	if !strings.HasPrefix(message, "CEF:") {
		return nil
	}

	parts := splitEscapedPipes(message[4:], 7)
	if len(parts) < 8 {
		return nil
	}

	result := orderedmap.NewOrderedMap[string, string]()
	for i, field := range cefHeaderFields {
		result.Set(field, parts[i])
	}

	if ext := parts[7]; ext != "" {
		parseCEFExtension(ext, result)
		applyCustomLabels(result)
	}

	return result
}

// splitEscapedPipes splits on '|' honoring "\|" escapes, keeping
// everything after the limit-th pipe as one trailing part.
func splitEscapedPipes(text string, limit int) []string {
	var parts []string
	var current strings.Builder
	pipes := 0

	i := 0
	for i < len(text) {
		switch {
		case text[i] == '\\' && i+1 < len(text) && text[i+1] == '|':
			current.WriteByte('|')
			i += 2
		case text[i] == '|':
			parts = append(parts, current.String())
			current.Reset()
			pipes++
			i++
			if pipes == limit {
				parts = append(parts, text[i:])
				return parts
			}
		default:
			current.WriteByte(text[i])
			i++
		}
	}

	parts = append(parts, current.String())
	return parts
}

// parseCEFExtension walks "key=value key2=value with spaces" pairs. A
// space ends a value only when a key=value pattern follows it; otherwise
// it belongs to the value.
func parseCEFExtension(ext string, result *orderedmap.OrderedMap[string, string]) {
	i := 0
	length := len(ext)

	for i < length {
		for i < length && ext[i] == ' ' {
			i++
		}
		if i >= length {
			break
		}

		keyStart := i
		for i < length && ext[i] != '=' && ext[i] != ' ' {
			i++
		}
		if i >= length || ext[i] != '=' {
			for i < length && ext[i] != ' ' {
				i++
			}
			continue
		}
		key := ext[keyStart:i]
		i++

		var value strings.Builder
		for i < length {
			if ext[i] == ' ' {
				spaces := i
				for i < length && ext[i] == ' ' {
					i++
				}
				if i >= length || nextTokenIsKey(ext[i:]) {
					break
				}
				value.WriteString(ext[spaces:i])
				continue
			}
			if ext[i] == '\\' && i+1 < length {
				value.WriteByte(unescapeCEFChar(ext[i+1]))
				i += 2
				continue
			}
			value.WriteByte(ext[i])
			i++
		}

		result.Set(key, value.String())
	}
}

func nextTokenIsKey(s string) bool {
	for i := 0; i < len(s) && s[i] != ' '; i++ {
		if s[i] == '=' {
			return true
		}
	}
	return false
}

func unescapeCEFChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 's':
		return ' '
	default:
		// \\, \=, \| and anything else map to the char itself
		return c
	}
}

// applyCustomLabels resolves ArcSight custom field labels: a pair like
// cs1Label=foo cs1=bar adds foo=bar.
func applyCustomLabels(result *orderedmap.OrderedMap[string, string]) {
	type relabel struct{ label, value string }
	var relabels []relabel

	for el := result.Front(); el != nil; el = el.Next() {
		if !strings.HasSuffix(el.Key, "Label") {
			continue
		}
		base := strings.TrimSuffix(el.Key, "Label")
		if value, has := result.Get(base); has {
			relabels = append(relabels, relabel{el.Value, value})
		}
	}

	for _, r := range relabels {
		result.Set(r.label, r.value)
	}
}
