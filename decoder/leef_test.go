package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLEEF1(t *testing.T) {
	tests := []struct {
		name string

		input string

		want [][2]string
	}{
		{
			name:  "basic",
			input: "LEEF:1.0|Microsoft|MSExchange|2013 SP1|15345|src=10.50.1.1\tdst=2.10.20.20\tspt=1200",
			want: [][2]string{
				{"leef_version", "1.0"},
				{"vendor", "Microsoft"},
				{"product", "MSExchange"},
				{"version", "2013 SP1"},
				{"event_id", "15345"},
				{"src", "10.50.1.1"},
				{"dst", "2.10.20.20"},
				{"spt", "1200"},
			},
		},
		{
			name:  "escaped_values",
			input: "LEEF:1.0|V|P|1|42|msg=a\\sb\\nc\tpath=C:\\\\bin",
			want: [][2]string{
				{"leef_version", "1.0"},
				{"vendor", "V"},
				{"product", "P"},
				{"version", "1"},
				{"event_id", "42"},
				{"msg", "a b\nc"},
				{"path", `C:\bin`},
			},
		},
		{
			name:  "empty_extension",
			input: "LEEF:1.0|V|P|1|42|",
			want: [][2]string{
				{"leef_version", "1.0"},
				{"vendor", "V"},
				{"product", "P"},
				{"version", "1"},
				{"event_id", "42"},
			},
		},
		{
			name:  "leef2_rejected",
			input: "LEEF:2.0|V|P|1|42|cat|^|a=1",
		},
		{
			name:  "not_leef",
			input: "CEF:0|V|P|1|42|n|5|",
		},
		{
			name:  "truncated_header",
			input: "LEEF:1.0|V|P",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLEEF1(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, omPairs(got))
		})
	}
}

func TestParseLEEF2(t *testing.T) {
	tests := []struct {
		name string

		input string

		want [][2]string
	}{
		{
			name:  "custom_delimiter",
			input: "LEEF:2.0|Lancope|StealthWatch|1.0|41|cat|^|src=10.0.1.8^dst=10.0.0.5^sev=5",
			want: [][2]string{
				{"leef_version", "2.0"},
				{"vendor", "Lancope"},
				{"product", "StealthWatch"},
				{"version", "1.0"},
				{"event_id", "41"},
				{"event_category", "cat"},
				{"src", "10.0.1.8"},
				{"dst", "10.0.0.5"},
				{"sev", "5"},
			},
		},
		{
			name:  "default_tab_delimiter",
			input: "LEEF:2.0|V|P|1|42|cat||src=1.2.3.4\tdst=5.6.7.8",
			want: [][2]string{
				{"leef_version", "2.0"},
				{"vendor", "V"},
				{"product", "P"},
				{"version", "1"},
				{"event_id", "42"},
				{"event_category", "cat"},
				{"src", "1.2.3.4"},
				{"dst", "5.6.7.8"},
			},
		},
		{
			name:  "custom_labels",
			input: "LEEF:2.0|V|P|1|42|cat|^|cs1=example.com^cs1Label=domain",
			want: [][2]string{
				{"leef_version", "2.0"},
				{"vendor", "V"},
				{"product", "P"},
				{"version", "1"},
				{"event_id", "42"},
				{"event_category", "cat"},
				{"cs1", "example.com"},
				{"cs1Label", "domain"},
				{"domain", "example.com"},
			},
		},
		{
			name:  "empty_extension",
			input: "LEEF:2.0|V|P|1|42|cat|^|",
		},
		{
			name:  "missing_delim_field",
			input: "LEEF:2.0|V|P|1|42|cat|a=1",
		},
		{
			name:  "leef1_rejected",
			input: "LEEF:1.0|V|P|1|42|a=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLEEF2(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, omPairs(got))
		})
	}
}
