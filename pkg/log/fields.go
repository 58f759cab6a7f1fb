package log

const (
	// Connection
	FieldConnID     = "connection_id"
	FieldRemoteAddr = "remote_addr"

	// Chat
	FieldRoom = "room"
	FieldName = "name"

	// Service
	FieldService = "service"

	// Log type (for audit log)
	FieldLogType = "log_type"
	LogTypeAudit = "audit"
)
