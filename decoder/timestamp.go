package decoder

import (
	"strings"
	"time"
)

// parseBSDTimestamp reads the classic "Mmm _d HH:MM:SS" stamp. The format
// carries no year and no zone, so both come from ref: a parsed month later
// than ref's month means the message crossed a year boundary and belongs to
// the previous year.
func parseBSDTimestamp(s string, ref time.Time) (time.Time, int, bool) {
	const stampLen = len(time.Stamp) // "Jan _2 15:04:05"

	if len(s) < stampLen {
		return time.Time{}, 0, false
	}
	if !validBSDStamp(s[:stampLen]) {
		return time.Time{}, 0, false
	}

	t, err := time.ParseInLocation(time.Stamp, s[:stampLen], ref.Location())
	if err != nil {
		return time.Time{}, 0, false
	}

	year := ref.Year()
	if t.Month() > ref.Month() {
		year--
	}
	t = time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, ref.Location())

	consumed := stampLen
	if len(s) > stampLen {
		if s[stampLen] != ' ' {
			return time.Time{}, 0, false
		}
		consumed++
	}
	return t, consumed, true
}

func validBSDStamp(ts string) bool {
	if ts[3] != ' ' || ts[6] != ' ' || ts[9] != ':' || ts[12] != ':' {
		return false
	}
	// Mmm
	if ts[0] < 'A' || 'Z' < ts[0] ||
		ts[1] < 'a' || ts[1] > 'z' ||
		ts[2] < 'a' || ts[2] > 'z' {
		return false
	}
	// dd
	if !(ts[4] == ' ' || isDigit(ts[4])) || !isDigit(ts[5]) {
		return false
	}
	// hh, mm, ss
	return isDigit(ts[7]) && isDigit(ts[8]) &&
		isDigit(ts[10]) && isDigit(ts[11]) &&
		isDigit(ts[13]) && isDigit(ts[14])
}

// parseISOTimestamp reads a leading RFC3339 token with optional fractional
// seconds. The offset (or 'Z') is mandatory.
func parseISOTimestamp(s string) (time.Time, int, bool) {
	tok, _ := cutToken(s)
	if len(tok) < len("2006-01-02T15:04:05Z") {
		return time.Time{}, 0, false
	}
	t, err := time.Parse(time.RFC3339Nano, tok)
	if err != nil {
		return time.Time{}, 0, false
	}

	consumed := len(tok)
	if consumed < len(s) {
		consumed++ // separating space
	}
	return t, consumed, true
}

// parseEpochTimestamp reads a leading Unix epoch token. Digit count picks
// the unit: 10 is seconds, 13 milliseconds, 16 microseconds, 19
// nanoseconds. Seconds may carry a fractional part.
func parseEpochTimestamp(s string) (time.Time, int, bool) {
	tok, _ := cutToken(s)

	sec := tok
	frac := ""
	if dot := strings.IndexAny(tok, ".,"); dot >= 0 {
		sec, frac = tok[:dot], tok[dot+1:]
	}

	n, ok := atoi(sec)
	if !ok {
		return time.Time{}, 0, false
	}

	var t time.Time
	switch len(sec) {
	case 10:
		nsec := 0
		if frac != "" {
			f, fok := atoi(frac)
			if !fok || len(frac) > 9 {
				return time.Time{}, 0, false
			}
			for i := len(frac); i < 9; i++ {
				f *= 10
			}
			nsec = f
		}
		t = time.Unix(int64(n), int64(nsec))
	case 13:
		if frac != "" {
			return time.Time{}, 0, false
		}
		t = time.UnixMilli(int64(n))
	case 16:
		if frac != "" {
			return time.Time{}, 0, false
		}
		t = time.UnixMicro(int64(n))
	case 19:
		if frac != "" {
			return time.Time{}, 0, false
		}
		t = time.Unix(0, int64(n))
	default:
		return time.Time{}, 0, false
	}

	consumed := len(tok)
	if consumed < len(s) {
		consumed++
	}
	return t.UTC(), consumed, true
}
