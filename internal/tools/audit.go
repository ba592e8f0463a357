package tools

import (
	"mcpizza/internal/database"
	"mcpizza/internal/logger"
	"mcpizza/internal/sanitizer"

	"go.uber.org/zap"
)

// Recorder пишет двусторонние взаимодействия в лог и, если настроена
// БД, в журнал аудита. Все тексты проходят санитайзер: платежные
// данные не должны попадать на диск.
type Recorder struct {
	repo      *database.AuditRepository // nil — аудит только в лог
	san       *sanitizer.DataSanitizer
	log       *logger.Zap
	sessionID string
}

func NewRecorder(repo *database.AuditRepository, log *logger.Zap, sessionID string) *Recorder {
	return &Recorder{
		repo:      repo,
		san:       sanitizer.New(),
		log:       log,
		sessionID: sessionID,
	}
}

// Call фиксирует входящий вызов инструмента.
func (r *Recorder) Call(tool string, args map[string]any) {
	r.log.Info("TOOL_CALL",
		zap.String("session", r.sessionID),
		zap.String("tool", tool),
		zap.String("arguments", r.san.SanitizeArgs(args)))
}

// Record фиксирует завершенный вызов вместе с результатом.
func (r *Recorder) Record(tool string, args map[string]any, success bool, preview, errMsg string) {
	sanitizedArgs := r.san.SanitizeArgs(args)
	sanitizedPreview := r.san.Sanitize(preview)

	r.log.Info("TOOL_RESPONSE",
		zap.String("session", r.sessionID),
		zap.String("tool", tool),
		zap.Bool("success", success),
		zap.String("error", errMsg))

	if r.repo == nil {
		return
	}
	err := r.repo.CreateInteraction(&database.Interaction{
		SessionID:       r.sessionID,
		Tool:            tool,
		Arguments:       sanitizedArgs,
		Success:         success,
		ResponsePreview: sanitizedPreview,
		Error:           errMsg,
	})
	if err != nil {
		r.log.Warn("Не удалось записать взаимодействие в аудит", zap.Error(err))
	}
}

// PlacedOrder фиксирует исход размещения заказа.
func (r *Recorder) PlacedOrder(storeID, vendorOrderID string, total float64, status, detail string) {
	r.log.Info("ORDER_OUTCOME",
		zap.String("session", r.sessionID),
		zap.String("store", storeID),
		zap.String("order_id", vendorOrderID),
		zap.String("status", status))

	if r.repo == nil {
		return
	}
	err := r.repo.CreatePlacedOrder(&database.PlacedOrder{
		SessionID:     r.sessionID,
		StoreID:       storeID,
		VendorOrderID: vendorOrderID,
		Total:         total,
		Status:        status,
		StatusDetail:  r.san.Sanitize(detail),
	})
	if err != nil {
		r.log.Warn("Не удалось записать заказ в аудит", zap.Error(err))
	}
}
