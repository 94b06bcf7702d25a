package decoder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lognorm/lognorm/event"
)

type sdParam struct {
	name  string
	value string
}

type sdElem struct {
	id     string
	params []sdParam
}

func flattenSD(elems []event.SDElement) []sdElem {
	var out []sdElem
	for _, elem := range elems {
		e := sdElem{id: elem.ID}
		for el := elem.Params.Front(); el != nil; el = el.Next() {
			e.params = append(e.params, sdParam{el.Key, el.Value})
		}
		out = append(out, e)
	}
	return out
}

func TestSyslogRFC5424(t *testing.T) {
	tests := []struct {
		name string

		input string

		wantErr       bool
		wantFacility  int
		wantSeverity  int
		wantTimestamp string
		wantHostname  string
		wantAppName   string
		wantProcID    string
		wantMsgID     string
		wantSD        []sdElem
		wantMessage   string
	}{
		{
			name:          "valid_full",
			input:         "<34>1 2023-05-09T02:33:52.123Z myhostname app 1234 ID47 [exampleSDID@32473 iut=\"3\"] An application event log entry\n",
			wantFacility:  4,
			wantSeverity:  2,
			wantTimestamp: "2023-05-09T02:33:52.123Z",
			wantHostname:  "myhostname",
			wantAppName:   "app",
			wantProcID:    "1234",
			wantMsgID:     "ID47",
			wantSD: []sdElem{
				{id: "exampleSDID@32473", params: []sdParam{{"iut", "3"}}},
			},
			wantMessage: "An application event log entry",
		},
		{
			name:          "valid_full_bom",
			input:         "<165>1 2003-10-11T22:14:15.003Z mymachine.example.com myproc 10 ID47 [exampleSDID@32473 iut=\"3\" eventSource=\"Application\" eventID=\"1011\"] \ufeffAn application event log",
			wantFacility:  20,
			wantSeverity:  5,
			wantTimestamp: "2003-10-11T22:14:15.003Z",
			wantHostname:  "mymachine.example.com",
			wantAppName:   "myproc",
			wantProcID:    "10",
			wantMsgID:     "ID47",
			wantSD: []sdElem{
				{id: "exampleSDID@32473", params: []sdParam{
					{"iut", "3"}, {"eventSource", "Application"}, {"eventID", "1011"},
				}},
			},
			wantMessage: "An application event log",
		},
		{
			name:         "valid_nil_header_fields",
			input:        "<165>1 - - - - - - hello",
			wantFacility: 20,
			wantSeverity: 5,
			wantMessage:  "hello",
		},
		{
			name:         "valid_no_message",
			input:        "<165>1 - mymachine.example.com myproc 10 ID47 -",
			wantFacility: 20,
			wantSeverity: 5,
			wantHostname: "mymachine.example.com",
			wantAppName:  "myproc",
			wantProcID:   "10",
			wantMsgID:    "ID47",
		},
		{
			name:          "invalid_timestamp_is_soft",
			input:         "<165>1 2003:10:11T22.14.15 mymachine.example.com myproc 10 ID47 - still recovered",
			wantFacility:  20,
			wantSeverity:  5,
			wantTimestamp: "",
			wantHostname:  "mymachine.example.com",
			wantAppName:   "myproc",
			wantProcID:    "10",
			wantMsgID:     "ID47",
			wantMessage:   "still recovered",
		},
		{
			name:          "missing_offset_timestamp_is_soft",
			input:         "<165>1 2003-10-11T22:14:15 host app - - - no zone given",
			wantFacility:  20,
			wantSeverity:  5,
			wantTimestamp: "",
			wantHostname:  "host",
			wantAppName:   "app",
			wantMessage:   "no zone given",
		},
		{
			name:          "escaped_sd_values",
			input:         `<165>1 2003-10-11T22:14:15.003Z host app - - [x@1 q="say \"hi\"" b="a\\b" c="end\]"] m`,
			wantFacility:  20,
			wantSeverity:  5,
			wantTimestamp: "2003-10-11T22:14:15.003Z",
			wantHostname:  "host",
			wantAppName:   "app",
			wantSD: []sdElem{
				{id: "x@1", params: []sdParam{
					{"q", `say "hi"`}, {"b", `a\b`}, {"c", "end]"},
				}},
			},
			wantMessage: "m",
		},
		{
			name:         "duplicate_sd_ids_preserved",
			input:        `<165>1 - host app - - [dup@1 a="1"][dup@1 a="2"] m`,
			wantFacility: 20,
			wantSeverity: 5,
			wantHostname: "host",
			wantAppName:  "app",
			wantSD: []sdElem{
				{id: "dup@1", params: []sdParam{{"a", "1"}}},
				{id: "dup@1", params: []sdParam{{"a", "2"}}},
			},
			wantMessage: "m",
		},
		{
			name:         "broken_sd_element_is_localized",
			input:        `<165>1 - host app - - [good@1 a="1"][broken b="no close] trailing text`,
			wantFacility: 20,
			wantSeverity: 5,
			wantHostname: "host",
			wantAppName:  "app",
			wantSD: []sdElem{
				{id: "good@1", params: []sdParam{{"a", "1"}}},
			},
			wantMessage: "trailing text",
		},
		{
			name:    "invalid_version",
			input:   "<165>2 2003-10-11T22:14:15.003Z host app - - - msg",
			wantErr: true,
		},
		{
			name:    "missing_version",
			input:   "<165> 2003-10-11T22:14:15.003Z host app - - - msg",
			wantErr: true,
		},
		{
			name:    "missing_pri",
			input:   "1 2003-10-11T22:14:15.003Z host app - - - msg",
			wantErr: true,
		},
		{
			name:    "truncated_header",
			input:   "<165>1 - host",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseRFC5424(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, event.VariantSyslogRFC5424, ev.Variant)
			assert.Equal(t, tt.wantFacility, ev.Facility)
			assert.Equal(t, tt.wantSeverity, ev.Severity)
			if tt.wantTimestamp == "" {
				assert.False(t, ev.HasTimestamp())
			} else {
				want, tErr := time.Parse(time.RFC3339Nano, tt.wantTimestamp)
				require.NoError(t, tErr)
				assert.True(t, want.Equal(ev.Timestamp))
			}
			assert.Equal(t, tt.wantHostname, ev.Hostname)
			assert.Equal(t, tt.wantAppName, ev.AppName)
			assert.Equal(t, tt.wantProcID, ev.ProcID)
			assert.Equal(t, tt.wantMsgID, ev.MsgID)
			assert.Equal(t, tt.wantSD, flattenSD(ev.StructuredData))
			assert.Equal(t, tt.wantMessage, ev.Message)
		})
	}
}

func TestSDValueEscapeRoundTrip(t *testing.T) {
	values := []string{
		`plain`,
		`with "quotes"`,
		`back\slash`,
		`closing ] bracket`,
		`all \ of " them ] at \" once`,
		``,
	}

	for _, value := range values {
		input := fmt.Sprintf(`<165>1 - host app - - [t@1 v="%s"] m`, escapeSDValue(value))
		ev, err := ParseRFC5424(input)
		require.NoError(t, err, "value %q", value)
		require.Len(t, ev.StructuredData, 1)

		got, has := ev.StructuredData[0].Params.Get("v")
		require.True(t, has)
		assert.Equal(t, value, got)
	}
}

func TestSDValueUnescapeInverse(t *testing.T) {
	for _, value := range []string{`a"b`, `a\b`, `a]b`, `\\"]`} {
		unescaped, _, ok := scanSDValue(escapeSDValue(value) + `"`)
		assert.True(t, ok)
		assert.Equal(t, value, unescaped)
	}
}
