package request

import (
	"time"
)

// StatusEvent records a status overwrite on a request. Transitions are not
// constrained, so the event trail is the only record of what happened when.
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for request relationship
	RequestID uint    `gorm:"not null;index" json:"request_id"`
	Request   Request `gorm:"foreignKey:RequestID" json:"-"`

	Status    Status    `gorm:"type:varchar(20);not null" json:"status"`
	ChangedBy string    `gorm:"type:varchar(255);not null" json:"changed_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "request_status_events"
}
