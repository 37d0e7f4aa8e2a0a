package request_event

import (
	requestModel "dispatch-backend/models/request"

	"gorm.io/gorm"
)

// RecordStatusChange appends a StatusEvent row for a status overwrite. Run
// inside the same transaction as the update so the trail never drifts from
// the request row.
func RecordStatusChange(tx *gorm.DB, requestID uint, status requestModel.Status, changedBy string) error {
	if changedBy == "" {
		changedBy = "anonymous"
	}

	ev := requestModel.StatusEvent{
		RequestID: requestID,
		Status:    status,
		ChangedBy: changedBy,
	}

	return tx.Create(&ev).Error
}
