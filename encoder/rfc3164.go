package encoder

import (
	"strconv"
	"strings"
	"time"

	"github.com/lognorm/lognorm/event"
)

// EncodeRFC3164 renders a record back to BSD syslog wire format:
//
//	<PRI>TIMESTAMP HOSTNAME TAG[PID]: MESSAGE
//
// Absent header parts are skipped, so a record carrying only a priority
// and a message comes out as "<PRI>MESSAGE". The BSD timestamp drops the
// year and zone, that is the format's own loss, not the encoder's.
func EncodeRFC3164(ev *event.Event) []byte {
	var b strings.Builder

	if ev.HasPriority() {
		b.WriteByte('<')
		b.WriteString(strconv.Itoa(ev.Priority))
		b.WriteByte('>')
	}
	if ev.HasTimestamp() {
		b.WriteString(ev.Timestamp.Format(time.Stamp))
		b.WriteByte(' ')
	}
	if ev.Hostname != "" {
		b.WriteString(ev.Hostname)
		b.WriteByte(' ')
	}
	if ev.AppName != "" {
		b.WriteString(ev.AppName)
		if ev.ProcID != "" {
			b.WriteByte('[')
			b.WriteString(ev.ProcID)
			b.WriteByte(']')
		}
		b.WriteString(": ")
	}
	b.WriteString(ev.Message)

	return []byte(b.String())
}
