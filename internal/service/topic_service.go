package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"notebase/internal/cache"
	apperrors "notebase/internal/errors"
	"notebase/internal/model"
	"notebase/internal/repository"
)

const topicCacheTTL = 5 * time.Minute

// TopicService exposes topic operations scoped to the calling user.
type TopicService interface {
	ListTopics(ctx context.Context, userID uint) ([]model.Topic, error)
	CreateTopic(ctx context.Context, userID uint, name string) (*model.Topic, error)
	RenameTopic(ctx context.Context, userID, topicID uint, name string) (*model.Topic, error)
	DeleteTopic(ctx context.Context, userID, topicID uint) error
}

type topicService struct {
	repo  repository.TopicRepository
	cache *cache.Client
}

// NewTopicService builds a TopicService with repository and cache.
func NewTopicService(repo repository.TopicRepository, cache *cache.Client) TopicService {
	return &topicService{repo: repo, cache: cache}
}

func (s *topicService) cacheKey(userID uint) string {
	return fmt.Sprintf("topics:user:%d", userID)
}

func (s *topicService) ListTopics(ctx context.Context, userID uint) ([]model.Topic, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached []model.Topic
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	topics, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	if payload, err := json.Marshal(topics); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, topicCacheTTL)
	}
	return topics, nil
}

func (s *topicService) CreateTopic(ctx context.Context, userID uint, name string) (*model.Topic, error) {
	topic := &model.Topic{
		UserID:    userID,
		TopicName: name,
	}
	if err := s.repo.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return topic, nil
}

func (s *topicService) RenameTopic(ctx context.Context, userID, topicID uint, name string) (*model.Topic, error) {
	topic, err := s.ownedTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	topic.TopicName = name
	if err := s.repo.Update(ctx, topic); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return topic, nil
}

func (s *topicService) DeleteTopic(ctx context.Context, userID, topicID uint) error {
	topic, err := s.ownedTopic(ctx, userID, topicID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, topic.TopicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// ownedTopic loads a topic and hides other users' topics behind the same
// not-found error as missing ones.
func (s *topicService) ownedTopic(ctx context.Context, userID, topicID uint) (*model.Topic, error) {
	topic, err := s.repo.FindByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("find topic: %w", err)
	}
	if topic.UserID != userID {
		return nil, apperrors.ErrTopicNotFound
	}
	return topic, nil
}
