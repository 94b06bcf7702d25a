package decoder

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// ParseKV tokenizes a "key1=val1 key2="val 2"" style message, the lingua
// franca of firewall logs. Quoted values may escape any character with a
// backslash. Returns nil when the text yields no pairs at all.
func ParseKV(message string) *orderedmap.OrderedMap[string, string] {
	if message == "" || !strings.ContainsRune(message, '=') {
		return nil
	}

	result := orderedmap.NewOrderedMap[string, string]()
	length := len(message)
	i := 0
	for i < length {
		// skip whitespace
		for i < length && message[i] == ' ' {
			i++
		}

		// key
		keyStart := i
		for i < length && message[i] != '=' && message[i] != ' ' {
			i++
		}
		key := message[keyStart:i]
		if key == "" || i >= length || message[i] != '=' {
			// not a key=value token, skip it
			for i < length && message[i] != ' ' {
				i++
			}
			continue
		}
		i++

		// value
		var value string
		if i < length && message[i] == '"' {
			i++
			var b strings.Builder
			for i < length && message[i] != '"' {
				if message[i] == '\\' && i+1 < length {
					b.WriteByte(message[i+1])
					i += 2
				} else {
					b.WriteByte(message[i])
					i++
				}
			}
			i++ // closing quote
			value = b.String()
		} else {
			valueStart := i
			for i < length && message[i] != ' ' {
				i++
			}
			value = message[valueStart:i]
		}

		result.Set(key, value)
	}

	if result.Len() == 0 {
		return nil
	}
	return result
}
