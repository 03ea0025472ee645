package service

import (
	"context"
	"errors"
	"testing"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/dto"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/models/result"
	"github.com/niklvrr/okr-dashboard/internal/infrastructure/repository"
	"github.com/niklvrr/okr-dashboard/internal/transport/dto/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestObjectiveService_List_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())
	data := testData()

	mockRepo.On("ListObjectives", mock.Anything, mock.MatchedBy(func(d *dto.ListObjectivesDTO) bool {
		return d.Status == domain.StatusAtRisk && d.Team == "" && d.SortBy == "progress" && d.Search == "user"
	})).Return(&result.ListObjectivesResult{Objectives: data.Objectives[1:], Total: 2}, nil)

	resp, err := service.List(context.Background(), &request.ListObjectivesRequest{
		Search: "user",
		Status: "at-risk",
		Team:   "all",
		SortBy: " progress ",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "2", resp.Objectives[0].Id)
	assert.Equal(t, 40, resp.AverageProgress)
	mockRepo.AssertExpectations(t)
}

func TestObjectiveService_List_StatusAll(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	mockRepo.On("ListObjectives", mock.Anything, mock.MatchedBy(func(d *dto.ListObjectivesDTO) bool {
		return d.Status == ""
	})).Return(&result.ListObjectivesResult{Objectives: testData().Objectives, Total: 2}, nil)

	resp, err := service.List(context.Background(), &request.ListObjectivesRequest{Status: "all"})

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 58, resp.AverageProgress)
	mockRepo.AssertExpectations(t)
}

func TestObjectiveService_List_NothingMatched(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	mockRepo.On("ListObjectives", mock.Anything, mock.Anything).
		Return(&result.ListObjectivesResult{Objectives: []domain.Objective{}, Total: 2}, nil)

	resp, err := service.List(context.Background(), &request.ListObjectivesRequest{Search: "zzz"})

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, 0, resp.AverageProgress)
	assert.NotNil(t, resp.Objectives)
	mockRepo.AssertExpectations(t)
}

func TestObjectiveService_List_UnknownStatus(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	resp, err := service.List(context.Background(), &request.ListObjectivesRequest{Status: "paused"})

	assert.Nil(t, resp)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	mockRepo.AssertNotCalled(t, "ListObjectives")
}

func TestObjectiveService_List_UnknownSort(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	mockRepo.On("ListObjectives", mock.Anything, mock.Anything).Return(nil, repository.ErrInvalidInput)

	_, err := service.List(context.Background(), &request.ListObjectivesRequest{SortBy: "owner"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertExpectations(t)
}

func TestObjectiveService_List_UnknownError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	mockRepo.On("ListObjectives", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := service.List(context.Background(), &request.ListObjectivesRequest{})

	assert.ErrorIs(t, err, listObjectivesError)
	var domainErr *DomainError
	assert.False(t, errors.As(err, &domainErr))
}

func TestObjectiveService_Get_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())
	obj := testData().Objectives[0]

	mockRepo.On("GetObjective", mock.Anything, &dto.GetObjectiveDTO{ObjectiveId: "1"}).Return(&obj, nil)

	resp, err := service.Get(context.Background(), &request.GetObjectiveRequest{ObjectiveId: " 1 "})

	assert.NoError(t, err)
	assert.Equal(t, "Improve Product Performance", resp.Objective.Title)
	mockRepo.AssertExpectations(t)
}

func TestObjectiveService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	mockRepo.On("GetObjective", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	resp, err := service.Get(context.Background(), &request.GetObjectiveRequest{ObjectiveId: "42"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrObjectiveNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestObjectiveService_Get_EmptyId(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewObjectiveService(mockRepo, zap.NewNop())

	_, err := service.Get(context.Background(), &request.GetObjectiveRequest{ObjectiveId: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "GetObjective")
}
