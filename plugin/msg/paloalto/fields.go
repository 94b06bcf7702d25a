package paloalto

// PAN-OS CSV field orders per log type, from the Palo Alto Networks syslog
// field descriptions. Records longer than the table keep only the named
// prefix; shorter records map what they have.
var panTypeFieldMap = map[string][]string{
	"TRAFFIC": {
		"future_use_1", "receive_time", "serial_number", "type", "subtype",
		"future_use_2", "generated_time", "source_ip", "destination_ip",
		"nat_source_ip", "nat_destination_ip", "rule_name", "source_user",
		"destination_user", "application", "virtual_system", "source_zone",
		"destination_zone", "inbound_interface", "outbound_interface",
		"log_action", "future_use_3", "session_id", "repeat_count",
		"source_port", "destination_port", "nat_source_port",
		"nat_destination_port", "flags", "protocol", "action", "bytes",
		"bytes_sent", "bytes_received", "packets", "start_time",
		"elapsed_time", "category", "future_use_4", "sequence_number",
		"action_flags", "source_location", "destination_location",
		"future_use_5", "packets_sent", "packets_received", "session_end_reason",
	},
	"THREAT": {
		"future_use_1", "receive_time", "serial_number", "type", "subtype",
		"future_use_2", "generated_time", "source_ip", "destination_ip",
		"nat_source_ip", "nat_destination_ip", "rule_name", "source_user",
		"destination_user", "application", "virtual_system", "source_zone",
		"destination_zone", "inbound_interface", "outbound_interface",
		"log_action", "future_use_3", "session_id", "repeat_count",
		"source_port", "destination_port", "nat_source_port",
		"nat_destination_port", "flags", "protocol", "action",
		"miscellaneous", "threat_id", "category", "severity", "direction",
		"sequence_number", "action_flags", "source_location",
		"destination_location", "future_use_4", "content_type",
	},
	"SYSTEM": {
		"future_use_1", "receive_time", "serial_number", "type", "subtype",
		"future_use_2", "generated_time", "virtual_system", "event_id",
		"object", "future_use_3", "future_use_4", "module", "severity",
		"description",
	},
	"CONFIG": {
		"future_use_1", "receive_time", "serial_number", "type", "subtype",
		"future_use_2", "generated_time", "host", "virtual_system",
		"command", "admin", "client", "result", "configuration_path",
		"sequence_number", "action_flags",
	},
}
