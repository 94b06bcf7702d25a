package decoder

import (
	"strings"
	"time"

	"github.com/lognorm/lognorm/event"
)

// ParseRFC3164 decodes a BSD-style (RFC3164) syslog message.
//
// Example of format:
//
//	"<34>Oct 11 22:14:15 mymachine.example.com myproc[10]: 'myproc' failed on /dev/pts/8"
//
// Legacy devices bend this format in every possible way, so the grammar
// degrades instead of failing: a malformed or out-of-range PRI is treated
// as "no PRI present", a missing timestamp leaves the field unset, and a
// missing hostname/tag turns the whole remainder into the free-text
// message. The returned record's variant reflects what was actually found:
// VariantSyslogRFC3164 when a timestamp or tag was parsed,
// VariantSyslogBase when only a PRI was, VariantRaw otherwise.
//
// ref supplies the clock context for the year and zone the BSD timestamp
// omits; the grammar never invents either on its own.
func ParseRFC3164(data string, ref time.Time) (*event.Event, error) {
	data = strings.TrimSuffix(data, "\n")
	if len(data) == 0 {
		return nil, errSyslogInvalidFormat
	}

	ev := event.New(event.VariantSyslogRFC3164)
	rest := data

	// priority
	if pri, r, err := parsePriority(rest); err == nil {
		ev.SetPriority(pri)
		rest = r
		// some devices put a space after the PRI bracket
		if len(rest) > 0 && rest[0] == ' ' {
			rest = rest[1:]
		}
	}

	// timestamp; BSD stamp first, then the ISO and epoch variants some
	// devices send in its place
	if ts, n, ok := parseBSDTimestamp(rest, ref); ok {
		ev.Timestamp = ts
		rest = rest[n:]
	} else if ts, n, ok := parseISOTimestamp(rest); ok {
		ev.Timestamp = ts
		rest = rest[n:]
	} else if ts, n, ok := parseEpochTimestamp(rest); ok {
		ev.Timestamp = ts
		rest = rest[n:]
	}

	hostname, appName, procID, msg := splitHostnameTag(rest)
	ev.Hostname = hostname
	ev.AppName = appName
	ev.ProcID = procID
	ev.Message = msg

	if !ev.HasTimestamp() && hostname == "" && appName == "" {
		if ev.HasPriority() {
			ev.Variant = event.VariantSyslogBase
		} else {
			ev.Variant = event.VariantRaw
		}
	}

	return ev, nil
}

// splitHostnameTag picks apart "HOSTNAME TAG[PID]: MSG" and its common
// truncations. A leading token counts as hostname only when the token
// after it is tag-shaped; a tag without the trailing colon means there is
// no structured header at all and everything is message.
func splitHostnameTag(s string) (hostname, appName, procID, msg string) {
	tok1, rest1 := cutToken(s)

	if app, pid, ok := splitTag(tok1); ok {
		return "", app, pid, rest1
	}

	tok2, rest2 := cutToken(rest1)
	if app, pid, ok := splitTag(tok2); ok {
		return tok1, app, pid, rest2
	}

	return "", "", "", s
}

// splitTag parses a "TAG[PID]:" or "TAG:" token into app name and pid.
func splitTag(tok string) (appName, procID string, ok bool) {
	if len(tok) < 2 || tok[len(tok)-1] != ':' {
		return "", "", false
	}
	tok = tok[:len(tok)-1]

	if tok[len(tok)-1] == ']' {
		open := strings.IndexByte(tok, '[')
		if open <= 0 {
			return "", "", false
		}
		return tok[:open], tok[open+1 : len(tok)-1], true
	}

	if strings.ContainsAny(tok, "[]") {
		return "", "", false
	}
	return tok, "", true
}
