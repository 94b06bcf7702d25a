package decoder

import (
	"errors"
	"math"
	"strings"
)

var (
	errSyslogInvalidFormat   = errors.New("log doesn't conform the format")
	errSyslogInvalidPriority = errors.New("PRI header not a valid priority")
	errSyslogInvalidVersion  = errors.New("PROTO header not a valid version")
	errSyslogInvalidSD       = errors.New("structured data doesn't conform the format")
)

// max facility = 23, max severity = 7. 23 * 8 + 7 = 191
const maxPriority = 191

// parsePriority reads the leading "<N>" PRI header. On success it returns
// the priority value and the text after '>'.
func parsePriority(data string) (int, string, error) {
	if len(data) == 0 || data[0] != '<' {
		return 0, data, errSyslogInvalidFormat
	}
	end := strings.IndexByte(data, '>')
	if end < 2 || 4 < end {
		return 0, data, errSyslogInvalidFormat
	}

	pri, ok := atoi(data[1:end])
	if !ok || pri > maxPriority {
		return 0, data, errSyslogInvalidPriority
	}

	return pri, data[end+1:], nil
}

// atoi is an allocation free ASCII number to integer conversion
func atoi(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	res := 0
	for i := 0; i < len(s); i++ {
		c := s[i] - '0'
		if c > 9 {
			return 0, false
		}
		if res > (math.MaxInt-int(c))/10 {
			return 0, false
		}
		res = res*10 + int(c)
	}
	return res, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FacilityKeyword returns the syslog keyword for a facility code,
// "UNKNOWN" when out of range.
func FacilityKeyword(f int) string {
	switch f {
	case 0:
		return "KERN"
	case 1:
		return "USER"
	case 2:
		return "MAIL"
	case 3:
		return "DAEMON"
	case 4:
		return "AUTH"
	case 5:
		return "SYSLOG"
	case 6:
		return "LPR"
	case 7:
		return "NEWS"
	case 8:
		return "UUCP"
	case 9:
		return "CRON"
	case 10:
		return "AUTHPRIV"
	case 11:
		return "FTP"
	case 12:
		return "NTP"
	case 13:
		return "SECURITY"
	case 14:
		return "CONSOLE"
	case 15:
		return "SOLARISCRON"
	case 16:
		return "LOCAL0"
	case 17:
		return "LOCAL1"
	case 18:
		return "LOCAL2"
	case 19:
		return "LOCAL3"
	case 20:
		return "LOCAL4"
	case 21:
		return "LOCAL5"
	case 22:
		return "LOCAL6"
	case 23:
		return "LOCAL7"
	default:
		return "UNKNOWN"
	}
}

// SeverityKeyword returns the syslog keyword for a severity code,
// "UNKNOWN" when out of range.
func SeverityKeyword(s int) string {
	switch s {
	case 0:
		return "EMERG"
	case 1:
		return "ALERT"
	case 2:
		return "CRIT"
	case 3:
		return "ERROR"
	case 4:
		return "WARN"
	case 5:
		return "NOTICE"
	case 6:
		return "INFO"
	case 7:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// cutToken splits off the first space-delimited token. The separating
// space is consumed; a token running to the end of input is fine.
func cutToken(s string) (string, string) {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
