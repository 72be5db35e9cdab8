package database

import (
	"fmt"
	"testing"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func createTestChannel(t *testing.T, dm contract.DataManager, slackChannelID string) *entity.Channel {
	t.Helper()

	channel := &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: "engineering",
		SlackTeamID:      "T001",
	}
	require.NoError(t, dm.Channel().Create(channel))
	require.NotZero(t, channel.ID)

	return channel
}

func createTestUser(t *testing.T, dm contract.DataManager, channelID int64, slackUserID string) *entity.User {
	t.Helper()

	user := &entity.User{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: fmt.Sprintf("user-%s", slackUserID),
		DisplayName:   fmt.Sprintf("User %s", slackUserID),
		IsEnabled:     true,
	}
	require.NoError(t, dm.User().Create(user))
	require.NotZero(t, user.ID)

	return user
}
