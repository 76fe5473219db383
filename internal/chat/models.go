package chat

import "time"

// MaxIDLength bounds conversation ids so they fit the indexed SQL column.
const MaxIDLength = 255

type MessageRow struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	ConversationID string    `gorm:"type:varchar(255);index:idx_conv_msg_conversation;not null"`
	Role           string    `gorm:"type:varchar(16);not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

func (MessageRow) TableName() string { return "conversation_messages" }
