package encoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
)

func TestEncodeRFC3164(t *testing.T) {
	tests := []struct {
		name string

		build func() *event.Event

		want string
	}{
		{
			name: "full_header",
			build: func() *event.Event {
				ev := event.New(event.VariantSyslogRFC3164)
				ev.SetPriority(34)
				ev.Timestamp = time.Date(2023, time.October, 11, 22, 14, 15, 0, time.UTC)
				ev.Hostname = "mymachine.example.com"
				ev.AppName = "myproc"
				ev.ProcID = "10"
				ev.Message = "'myproc' failed on /dev/pts/8"
				return ev
			},
			want: "<34>Oct 11 22:14:15 mymachine.example.com myproc[10]: 'myproc' failed on /dev/pts/8",
		},
		{
			name: "tag_without_pid",
			build: func() *event.Event {
				ev := event.New(event.VariantSyslogRFC3164)
				ev.SetPriority(38)
				ev.Hostname = "host"
				ev.AppName = "sshd"
				ev.Message = "Accepted publickey"
				return ev
			},
			want: "<38>host sshd: Accepted publickey",
		},
		{
			name: "priority_and_message_only",
			build: func() *event.Event {
				ev := event.New(event.VariantSyslogBase)
				ev.SetPriority(111)
				ev.Message = "This is a message"
				return ev
			},
			want: "<111>This is a message",
		},
		{
			name: "no_priority",
			build: func() *event.Event {
				ev := event.New(event.VariantRaw)
				ev.Message = "bare text"
				return ev
			},
			want: "bare text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(EncodeRFC3164(tt.build())))
		})
	}
}

func TestEncodeRFC3164RoundTrip(t *testing.T) {
	ref := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	ev := event.New(event.VariantSyslogRFC3164)
	ev.SetPriority(13)
	ev.Timestamp = time.Date(2023, time.February, 5, 17, 32, 18, 0, time.UTC)
	ev.Hostname = "host"
	ev.AppName = "app"
	ev.ProcID = "42"
	ev.Message = "hello"

	back, err := decoder.ParseRFC3164(string(EncodeRFC3164(ev)), ref)
	require.NoError(t, err)

	assert.Equal(t, ev.Variant, back.Variant)
	assert.Equal(t, ev.Priority, back.Priority)
	assert.True(t, ev.Timestamp.Equal(back.Timestamp))
	assert.Equal(t, ev.Hostname, back.Hostname)
	assert.Equal(t, ev.AppName, back.AppName)
	assert.Equal(t, ev.ProcID, back.ProcID)
	assert.Equal(t, ev.Message, back.Message)
}
