package service

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockChannelRepo   *mocks.MockChannelRepo
	mockUserRepo      *mocks.MockUserRepo
	mockStandupRepo   *mocks.MockStandupRepo
	mockSchedulerRepo *mocks.MockSchedulerRepo
	mockSlackClient   *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	standupRepo := mocks.NewMockStandupRepo(ctrl)
	dm.EXPECT().Standup().Return(standupRepo).AnyTimes()

	schedulerRepo := mocks.NewMockSchedulerRepo(ctrl)
	dm.EXPECT().Scheduler().Return(schedulerRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:   dm,
		mockChannelRepo:   channelRepo,
		mockUserRepo:      userRepo,
		mockStandupRepo:   standupRepo,
		mockSchedulerRepo: schedulerRepo,
		mockSlackClient:   slackClient,
	}

	// validate service creation
	channelService := newChannel(dm, slackClient)
	require.NotNil(t, channelService)

	return
}

// expectTransaction makes WithTransaction run its callback against the same
// mocked repositories.
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}
