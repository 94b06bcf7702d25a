package encoder

import (
	"fmt"
	"strconv"
	"time"

	insaneJSON "github.com/ozontech/insane-json"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
)

const (
	syslogFacilityFormatParam = "syslog_facility_format"
	syslogSeverityFormatParam = "syslog_severity_format"

	spfNumber = "number"
	spfString = "string"
)

type jsonParams struct {
	facilityFormat string // optional
	severityFormat string // optional
}

func extractJSONParams(params map[string]any) (jsonParams, error) {
	facilityFormat := spfNumber
	if facilityFormatRaw, ok := params[syslogFacilityFormatParam]; ok {
		facilityFormat, ok = facilityFormatRaw.(string)
		if !ok {
			return jsonParams{}, fmt.Errorf("%q must be string", syslogFacilityFormatParam)
		}
		if err := priorityFormatValidate(syslogFacilityFormatParam, facilityFormat); err != nil {
			return jsonParams{}, err
		}
	}

	severityFormat := spfNumber
	if severityFormatRaw, ok := params[syslogSeverityFormatParam]; ok {
		severityFormat, ok = severityFormatRaw.(string)
		if !ok {
			return jsonParams{}, fmt.Errorf("%q must be string", syslogSeverityFormatParam)
		}
		if err := priorityFormatValidate(syslogSeverityFormatParam, severityFormat); err != nil {
			return jsonParams{}, err
		}
	}

	return jsonParams{
		facilityFormat: facilityFormat,
		severityFormat: severityFormat,
	}, nil
}

func priorityFormatValidate(param, format string) error {
	switch format {
	case spfNumber, spfString:
		return nil
	default:
		return fmt.Errorf("invalid %q format, must be one of [number|string]", param)
	}
}

// JSONEncoder renders a canonical record as one JSON object. Absent fields
// are elided, never emitted as null or zero.
type JSONEncoder struct {
	params jsonParams
}

func NewJSONEncoder(params map[string]any) (*JSONEncoder, error) {
	p, err := extractJSONParams(params)
	if err != nil {
		return nil, fmt.Errorf("can't extract params: %w", err)
	}

	return &JSONEncoder{params: p}, nil
}

// Encode renders ev.
//
// Example of output:
//
//	{
//		"priority": 165,
//		"facility": 20,
//		"severity": 5,
//		"timestamp": "2003-10-11T22:14:15.003Z",
//		"hostname": "mymachine.example.com",
//		"app_name": "myproc",
//		"process_id": "10",
//		"message_id": "ID47",
//		"message": "An application event log",
//		"structured_data": {
//			"exampleSDID@32473": {"iut": "3"}
//		},
//		"classification": {"vendor": "generic", "product": "unknown_kv", "msgclass": "unknown"},
//		"event_data": {"iut": "3"}
//	}
func (e *JSONEncoder) Encode(ev *event.Event) []byte {
	root := insaneJSON.Spawn()
	defer insaneJSON.Release(root)

	if ev.HasPriority() {
		root.AddFieldNoAlloc(root, "priority").MutateToInt(ev.Priority)
		e.addPriorityField(root, "facility", ev.Facility, e.params.facilityFormat, decoder.FacilityKeyword)
		e.addPriorityField(root, "severity", ev.Severity, e.params.severityFormat, decoder.SeverityKeyword)
	}
	if ev.HasTimestamp() {
		root.AddFieldNoAlloc(root, "timestamp").MutateToString(ev.Timestamp.Format(time.RFC3339Nano))
	}
	if ev.Hostname != "" {
		root.AddFieldNoAlloc(root, "hostname").MutateToString(ev.Hostname)
	}
	if ev.AppName != "" {
		root.AddFieldNoAlloc(root, "app_name").MutateToString(ev.AppName)
	}
	if ev.ProcID != "" {
		root.AddFieldNoAlloc(root, "process_id").MutateToString(ev.ProcID)
	}
	if ev.MsgID != "" {
		root.AddFieldNoAlloc(root, "message_id").MutateToString(ev.MsgID)
	}
	if ev.Message != "" {
		root.AddFieldNoAlloc(root, "message").MutateToString(ev.Message)
	}

	if len(ev.StructuredData) > 0 {
		sdObj := root.AddFieldNoAlloc(root, "structured_data").MutateToObject()
		for _, elem := range ev.StructuredData {
			elemObj := sdObj.AddField(elem.ID).MutateToObject()
			for el := elem.Params.Front(); el != nil; el = el.Next() {
				elemObj.AddField(el.Key).MutateToString(el.Value)
			}
		}
	}

	if !ev.Classification.IsZero() {
		obj := root.AddFieldNoAlloc(root, "classification").MutateToObject()
		obj.AddField("vendor").MutateToString(ev.Classification.Vendor)
		obj.AddField("product").MutateToString(ev.Classification.Product)
		obj.AddField("msgclass").MutateToString(ev.Classification.MsgClass)
	}

	if ev.EventData.Len() > 0 {
		obj := root.AddFieldNoAlloc(root, "event_data").MutateToObject()
		for el := ev.EventData.Front(); el != nil; el = el.Next() {
			node := obj.AddField(el.Key)
			switch v := el.Value.(type) {
			case string:
				node.MutateToString(v)
			case float64:
				node.MutateToFloat(v)
			case int:
				node.MutateToInt(v)
			case bool:
				node.MutateToJSON(root, strconv.FormatBool(v))
			case nil:
				node.MutateToJSON(root, "null")
			default:
				node.MutateToString(fmt.Sprint(v))
			}
		}
	}

	out := root.EncodeToByte()
	return append(make([]byte, 0, len(out)), out...)
}

func (e *JSONEncoder) addPriorityField(root *insaneJSON.Root, name string, value int, format string, keyword func(int) string) {
	if format == spfNumber {
		root.AddFieldNoAlloc(root, name).MutateToInt(value)
		return
	}
	root.AddFieldNoAlloc(root, name).MutateToString(keyword(value))
}
