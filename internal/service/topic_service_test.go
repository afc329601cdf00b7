package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"notebase/internal/cache"
	apperrors "notebase/internal/errors"
	"notebase/internal/model"
)

// MockTopicRepository is a mock implementation of TopicRepository.
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) FindByID(ctx context.Context, id uint) (*model.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Topic), args.Error(1)
}

func (m *MockTopicRepository) ListByUser(ctx context.Context, userID uint) ([]model.Topic, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Topic), args.Error(1)
}

func (m *MockTopicRepository) Update(ctx context.Context, topic *model.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// nil cache behaves as a permanent miss, so the service always hits the repo.
var noCache *cache.Client

func TestTopicService_ListTopics(t *testing.T) {
	mockRepo := new(MockTopicRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return([]model.Topic{
		{TopicID: 1, UserID: 7, TopicName: "go"},
		{TopicID: 2, UserID: 7, TopicName: "sql"},
	}, nil)

	svc := NewTopicService(mockRepo, noCache)
	topics, err := svc.ListTopics(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "go", topics[0].TopicName)

	mockRepo.AssertExpectations(t)
}

func TestTopicService_CreateTopic(t *testing.T) {
	mockRepo := new(MockTopicRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Topic")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Topic).TopicID = 5
	}).Return(nil)

	svc := NewTopicService(mockRepo, noCache)
	topic, err := svc.CreateTopic(context.Background(), 7, "reading list")

	require.NoError(t, err)
	assert.Equal(t, uint(5), topic.TopicID)
	assert.Equal(t, uint(7), topic.UserID)
	assert.Equal(t, "reading list", topic.TopicName)

	mockRepo.AssertExpectations(t)
}

func TestTopicService_RenameTopic(t *testing.T) {
	tests := []struct {
		name          string
		topicID       uint
		setupMock     func(*MockTopicRepository)
		expectedError error
	}{
		{
			name:    "owner renames",
			topicID: 5,
			setupMock: func(m *MockTopicRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Topic{TopicID: 5, UserID: 7, TopicName: "old"}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Topic")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "foreign topic reads as missing",
			topicID: 6,
			setupMock: func(m *MockTopicRepository) {
				m.On("FindByID", mock.Anything, uint(6)).Return(&model.Topic{TopicID: 6, UserID: 99, TopicName: "theirs"}, nil)
			},
			expectedError: apperrors.ErrTopicNotFound,
		},
		{
			name:    "missing topic",
			topicID: 404,
			setupMock: func(m *MockTopicRepository) {
				m.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTopicNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTopicRepository)
			tt.setupMock(mockRepo)

			svc := NewTopicService(mockRepo, noCache)
			topic, err := svc.RenameTopic(context.Background(), 7, tt.topicID, "new name")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, topic)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "new name", topic.TopicName)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTopicService_DeleteTopic(t *testing.T) {
	mockRepo := new(MockTopicRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Topic{TopicID: 5, UserID: 7}, nil)
	mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

	svc := NewTopicService(mockRepo, noCache)
	require.NoError(t, svc.DeleteTopic(context.Background(), 7, 5))

	mockRepo.AssertExpectations(t)
}

func TestTopicService_DeleteTopic_NotOwner(t *testing.T) {
	mockRepo := new(MockTopicRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Topic{TopicID: 5, UserID: 99}, nil)

	svc := NewTopicService(mockRepo, noCache)
	err := svc.DeleteTopic(context.Background(), 7, 5)

	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
	mockRepo.AssertExpectations(t)
}
