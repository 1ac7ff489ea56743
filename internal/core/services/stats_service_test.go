package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stitchworks/trim_inventory_app/internal/core/domain"
	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/core/services"
)

// --- Test Suite Setup ---

type StatsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStatsRepository
	service  portssvc.StatsSvcFacade
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStatsRepository)
	suite.service = services.NewStatsService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *StatsServiceTestSuite) TestGetDashboardStats_Success() {
	ctx := context.Background()
	expected := &domain.DashboardStats{
		TotalMaterials: 3,
		EnteredToday:   40,
		IssuedToday:    15,
	}

	// The service must pass a [midnight, next midnight) window in local time.
	suite.mockRepo.On("GetDashboardStats", ctx,
		mock.MatchedBy(func(dayStart time.Time) bool {
			return dayStart.Hour() == 0 && dayStart.Minute() == 0 && dayStart.Second() == 0 && dayStart.Nanosecond() == 0
		}),
		mock.MatchedBy(func(dayEnd time.Time) bool {
			return dayEnd.Hour() == 0 && dayEnd.After(time.Now())
		}),
	).Return(expected, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, stats)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetDashboardStats_WindowSpansOneDay() {
	ctx := context.Background()
	expected := &domain.DashboardStats{TotalMaterials: 0}

	var gotStart, gotEnd time.Time
	suite.mockRepo.On("GetDashboardStats", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			gotStart = args.Get(1).(time.Time)
			gotEnd = args.Get(2).(time.Time)
		}).Return(expected, nil).Once()

	_, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(gotStart.AddDate(0, 0, 1), gotEnd)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetDashboardStats_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetDashboardStats", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, expectedErr).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestStatsService(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
