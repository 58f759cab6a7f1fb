package audit

import (
	"context"

	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

// Audit actions for the presence coordinator.
const (
	ActionConnect    = "presence.connect"
	ActionEnterRoom  = "presence.enter_room"
	ActionMessage    = "presence.message"
	ActionDisconnect = "presence.disconnect"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldDetail = "detail"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action string, connID string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldConnID, connID).
		Msg(msg)
}

// LogWithDetail emits an audit log with an extra detail field.
func LogWithDetail(ctx context.Context, action string, connID string, detail string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldConnID, connID).
		Str(FieldDetail, detail).
		Msg(msg)
}
