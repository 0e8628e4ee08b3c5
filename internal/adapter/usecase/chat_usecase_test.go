package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/core/domain"
	"campaigniq/internal/core/port"
)

type MockCampaignUseCase struct {
	mock.Mock
}

func (m *MockCampaignUseCase) Ingest(ctx context.Context, input domain.Campaign) (*port.IngestResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.IngestResult), args.Error(1)
}

func (m *MockCampaignUseCase) ListInsights(ctx context.Context, limit int) ([]domain.CombinedInsight, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CombinedInsight), args.Error(1)
}

func (m *MockCampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignUseCase) ListPredictions(ctx context.Context) ([]domain.Prediction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Content(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

func (m *MockChatClient) GeneratedAnswer(ctx context.Context, question, trainingData string) (string, error) {
	args := m.Called(ctx, question, trainingData)
	return args.String(0), args.Error(1)
}

func TestMessageForwardsWithoutGrounding(t *testing.T) {
	insights := new(MockCampaignUseCase)
	client := new(MockChatClient)
	uc := NewChatUseCase(insights, client)

	client.On("Content", mock.Anything, "how are sales?").Return("X", nil)

	answer, err := uc.Message(context.Background(), "how are sales?")
	require.NoError(t, err)
	assert.Equal(t, "X", answer)
	insights.AssertNotCalled(t, "ListInsights", mock.Anything, mock.Anything)
}

func TestAnswerEmbedsInsights(t *testing.T) {
	insights := new(MockCampaignUseCase)
	client := new(MockChatClient)
	uc := NewChatUseCase(insights, client)

	insights.On("ListInsights", mock.Anything, port.DefaultInsightLimit).
		Return([]domain.CombinedInsight{{
			Campaign:   domain.InsightCampaignRef{CampaignID: 942511},
			Prediction: domain.Prediction{CampaignID: 942511, PredictionStatus: "Needs Improvement"},
		}}, nil)
	client.On("GeneratedAnswer", mock.Anything, "which campaign is best?", mock.MatchedBy(func(trainingData string) bool {
		return strings.Contains(trainingData, "942511") &&
			strings.Contains(trainingData, "business analytics dashboard")
	})).Return("the expansion campaign", nil)

	answer, err := uc.Answer(context.Background(), "which campaign is best?")
	require.NoError(t, err)
	assert.Equal(t, "the expansion campaign", answer)
}

func TestAnswerInsightsFailureDegradesToEmptyData(t *testing.T) {
	insights := new(MockCampaignUseCase)
	client := new(MockChatClient)
	uc := NewChatUseCase(insights, client)

	insights.On("ListInsights", mock.Anything, port.DefaultInsightLimit).
		Return(nil, errors.New("store offline"))
	client.On("GeneratedAnswer", mock.Anything, "hello", mock.MatchedBy(func(trainingData string) bool {
		return strings.Contains(trainingData, "[]")
	})).Return("hi", nil)

	answer, err := uc.Answer(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi", answer)
}

func TestAnswerUpstreamFailurePropagates(t *testing.T) {
	insights := new(MockCampaignUseCase)
	client := new(MockChatClient)
	uc := NewChatUseCase(insights, client)

	insights.On("ListInsights", mock.Anything, port.DefaultInsightLimit).
		Return([]domain.CombinedInsight{}, nil)
	client.On("GeneratedAnswer", mock.Anything, "hello", mock.Anything).
		Return("", port.ErrChatUpstream)

	_, err := uc.Answer(context.Background(), "hello")
	assert.ErrorIs(t, err, port.ErrChatUpstream)
}
