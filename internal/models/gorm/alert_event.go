package gorm

import "time"

// AlertEvent is the persisted form of one offensive-aircraft alert.
type AlertEvent struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	Hex       string    `gorm:"column:hex;index"`
	Callsign  string    `gorm:"column:callsign"`
	TypeCode  string    `gorm:"column:type_code"`
	Owner     string    `gorm:"column:owner"`
	Category  string    `gorm:"column:category;index"`
	EmittedAt time.Time `gorm:"column:emitted_at;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AlertEvent) TableName() string {
	return "alert_events"
}
