package chat

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the SQL-backed Store. Row ids give insertion order.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&MessageRow{})
}

func (r *Repo) Append(ctx context.Context, id, role, content string) error {
	return r.db.WithContext(ctx).Create(&MessageRow{
		ConversationID: id,
		Role:           role,
		Content:        content,
	}).Error
}

// Get returns messages in ASC id order (oldest -> newest).
func (r *Repo) Get(ctx context.Context, id string) ([]Message, error) {
	var rows []MessageRow
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	msgs := make([]Message, len(rows))
	for i, row := range rows {
		msgs[i] = Message{Role: row.Role, Content: row.Content}
	}
	return msgs, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Delete(&MessageRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&MessageRow{}).Error
}
