package decoder

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// ParseLEEF1 parses an IBM QRadar LEEF 1.0 message:
//
//	LEEF:1.0|Vendor|Product|Version|EventID|Extension
//
// with a tab-delimited key=value extension. Returns nil if the text is not
// LEEF 1.x.
func ParseLEEF1(message string) *orderedmap.OrderedMap[string, string] {
	if !strings.HasPrefix(message, "LEEF:") || strings.HasPrefix(message, "LEEF:2.") {
		return nil
	}

	parts := splitEscapedPipes(message[5:], 5)
	if len(parts) < 6 {
		return nil
	}

	result := orderedmap.NewOrderedMap[string, string]()
	result.Set("leef_version", parts[0])
	result.Set("vendor", parts[1])
	result.Set("product", parts[2])
	result.Set("version", parts[3])
	result.Set("event_id", parts[4])

	if ext := parts[5]; ext != "" {
		parseLEEFExtension(ext, "\t", result)
	}

	return result
}

// ParseLEEF2 parses a LEEF 2.0 message:
//
//	LEEF:2.0|Vendor|Product|Version|EventID|EventCategory|Delim|Extension
//
// The seventh header field names the extension delimiter; an empty one
// means tab. Returns nil if the text is not strict LEEF 2.0 (exactly eight
// pipe-separated fields).
func ParseLEEF2(message string) *orderedmap.OrderedMap[string, string] {
	if !strings.HasPrefix(message, "LEEF:2.") {
		return nil
	}

	parts := strings.SplitN(message, "|", 8)
	if len(parts) != 8 {
		return nil
	}

	result := orderedmap.NewOrderedMap[string, string]()
	result.Set("leef_version", parts[0][5:])
	result.Set("vendor", parts[1])
	result.Set("product", parts[2])
	result.Set("version", parts[3])
	result.Set("event_id", parts[4])
	result.Set("event_category", parts[5])

	delim := parts[6]
	if delim == "" {
		delim = "\t"
	}
	ext := parts[7]
	if ext == "" {
		return nil
	}

	parseLEEFExtension(ext, delim, result)
	applyCustomLabels(result)

	return result
}

func parseLEEFExtension(ext, delim string, result *orderedmap.OrderedMap[string, string]) {
	for _, pair := range strings.Split(ext, delim) {
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		result.Set(key, unescapeLEEFValue(value))
	}
}

var leefValueReplacer = strings.NewReplacer(
	`\\`, "\\",
	`\|`, "|",
	`\=`, "=",
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
	`\s`, " ",
)

func unescapeLEEFValue(value string) string {
	return leefValueReplacer.Replace(value)
}
