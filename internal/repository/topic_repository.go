package repository

import (
	"context"

	"gorm.io/gorm"

	"notebase/internal/model"
)

// TopicRepository defines topic persistence operations.
type TopicRepository interface {
	Create(ctx context.Context, topic *model.Topic) error
	FindByID(ctx context.Context, id uint) (*model.Topic, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Topic, error)
	Update(ctx context.Context, topic *model.Topic) error
	Delete(ctx context.Context, id uint) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository builds a GORM-backed repository.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *model.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) FindByID(ctx context.Context, id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) ListByUser(ctx context.Context, userID uint) ([]model.Topic, error) {
	var topics []model.Topic
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("creation_date").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepository) Update(ctx context.Context, topic *model.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Topic{}, id).Error
}
