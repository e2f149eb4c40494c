package model

import "time"

// BaseModel handles the autoincrement ID and standard timestamps.
// IDs are plain integers so creation order stays visible in the API.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
