package gorm

import "time"

// RaiderProfile is a raider on the roster the admin dashboard lists.
type RaiderProfile struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Handle      string    `gorm:"column:handle;uniqueIndex"`
	Verified    bool      `gorm:"column:verified;default:false"`
	TotalEarned int       `gorm:"column:total_earned;default:0"`
	ActiveDays  int       `gorm:"column:active_days;default:0"`
	Avatar      string    `gorm:"column:avatar"`
	ConnectedX  bool      `gorm:"column:connected_x;default:false"`
	LastActive  string    `gorm:"column:last_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (RaiderProfile) TableName() string {
	return "raider_profiles"
}
