package decoder

import "strings"

// ParseQuotedCSV splits one comma-separated record into fields. Fields may
// be double-quoted to protect commas, with "" as the escaped quote; spaces
// after a separator are not part of the next field. Returns nil for an
// empty record or broken quoting.
func ParseQuotedCSV(message string) []string {
	if message == "" {
		return nil
	}

	var fields []string
	var current strings.Builder
	i := 0
	length := len(message)

	for {
		for i < length && message[i] == ' ' {
			i++
		}

		if i < length && message[i] == '"' {
			// quoted field
			i++
			for {
				if i >= length {
					return nil // missing closing quote
				}
				if message[i] == '"' {
					if i+1 < length && message[i+1] == '"' {
						current.WriteByte('"')
						i += 2
						continue
					}
					i++
					break
				}
				current.WriteByte(message[i])
				i++
			}
		} else {
			for i < length && message[i] != ',' {
				current.WriteByte(message[i])
				i++
			}
		}

		fields = append(fields, current.String())
		current.Reset()

		if i >= length {
			break
		}
		if message[i] != ',' {
			return nil // garbage after closing quote
		}
		i++
	}

	return fields
}
