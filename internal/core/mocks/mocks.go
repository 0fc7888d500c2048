package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/domain"
	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

// MockGitHubClient is a mock implementation of ports.GitHubClient
type MockGitHubClient struct {
	mock.Mock
}

func NewMockGitHubClient() *MockGitHubClient {
	return &MockGitHubClient{}
}

func (m *MockGitHubClient) FetchContributionCalendar(ctx context.Context, login string, window domain.DateRange) ([]ports.DailyCount, error) {
	args := m.Called(ctx, login, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DailyCount), args.Error(1)
}

func (m *MockGitHubClient) FetchContributionPage(ctx context.Context, login string, window domain.DateRange, kind domain.ContributionType, cursor string) (ports.ContributionPage, error) {
	args := m.Called(ctx, login, window, kind, cursor)
	return args.Get(0).(ports.ContributionPage), args.Error(1)
}

func (m *MockGitHubClient) FetchRepositoryPage(ctx context.Context, login string, cursor string) (ports.RepositoryPage, error) {
	args := m.Called(ctx, login, cursor)
	return args.Get(0).(ports.RepositoryPage), args.Error(1)
}

// MockRenderer is a mock implementation of ports.Renderer
type MockRenderer struct {
	mock.Mock
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) Render(ctx context.Context, data domain.GraphData, opts ports.RenderOptions) ([]byte, error) {
	args := m.Called(ctx, data, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockGraphService is a mock implementation of ports.GraphService
type MockGraphService struct {
	mock.Mock
}

func NewMockGraphService() *MockGraphService {
	return &MockGraphService{}
}

func (m *MockGraphService) ContributionsGraph(ctx context.Context, params ports.GraphParams) ([]byte, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockGraphService) LanguagesGraph(ctx context.Context, params ports.GraphParams) ([]byte, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// FixedClock is a ports.Clock that always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
