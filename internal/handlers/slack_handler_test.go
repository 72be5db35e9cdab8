package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-standup-bot/internal/slack"
	"github.com/diegoclair/slack-standup-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSigningSecret = "test-signing-secret"

func newHandlerTestMock(t *testing.T) (*SlackHandler, *mocks.MockChannelService, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	channelService := mocks.NewMockChannelService(ctrl)

	return New(channelService, testSigningSecret), channelService, ctrl
}

func testSlashCommand() *slack.SlashCommand {
	return &slack.SlashCommand{
		ChannelID:   "C001",
		ChannelName: "engineering",
		TeamID:      "T001",
		UserID:      "U001",
	}
}

func testChannel() *entity.Channel {
	return &entity.Channel{
		ID:               1,
		SlackChannelID:   "C001",
		SlackChannelName: "engineering",
		SlackTeamID:      "T001",
		State:            domain.StateIdle,
	}
}

func expectSetupChannel(m *mocks.MockChannelService) {
	m.EXPECT().
		SetupChannel("C001", "engineering", "T001").
		Return(testChannel(), false, nil).Times(1)
}

func mustCommand(t *testing.T, text string) *slackcmd.Command {
	t.Helper()

	cmd, err := slackcmd.ParseCommand(text)
	require.NoError(t, err)
	return cmd
}

func signRequest(req *http.Request, body string) {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	mac := hmac.New(sha256.New, []byte(testSigningSecret))
	mac.Write([]byte(fmt.Sprintf("v0:%s:%s", timestamp, body)))
	signature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", signature)
}

func TestHandleSlashCommand_Signature(t *testing.T) {
	form := url.Values{}
	form.Set("command", "/standup")
	form.Set("text", "help")
	form.Set("channel_id", "C001")
	form.Set("channel_name", "engineering")
	form.Set("team_id", "T001")
	body := form.Encode()

	t.Run("Should reject a request with a forged signature", func(t *testing.T) {
		handler, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Slack-Request-Timestamp", fmt.Sprintf("%d", time.Now().Unix()))
		req.Header.Set("X-Slack-Signature", "v0=deadbeef")

		rec := httptest.NewRecorder()
		handler.HandleSlashCommand(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Should reject a request without signature headers", func(t *testing.T) {
		handler, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		handler.HandleSlashCommand(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Should accept a correctly signed request", func(t *testing.T) {
		handler, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		signRequest(req, body)

		rec := httptest.NewRecorder()
		handler.HandleSlashCommand(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var msg slack.Msg
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
		assert.Contains(t, msg.Text, "/standup start")
	})
}

func TestHandleCommand_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Should start the standup and announce the first user", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().Start(int64(1)).Return(nil).Times(1)
		channelService.EXPECT().StartTodayStandup(gomock.Any(), int64(1)).Return(nil).Times(1)
		channelService.EXPECT().PendingStandups(int64(1)).Return([]*entity.Standup{
			{ID: 10, UserID: 5, SeqOrder: 1, Status: domain.StandupPending},
			{ID: 11, UserID: 6, SeqOrder: 2, Status: domain.StandupPending},
		}, nil).Times(1)
		channelService.EXPECT().ListUsers(int64(1)).Return([]*entity.User{
			{ID: 5, SlackUserID: "U005", DisplayName: "Ana"},
			{ID: 6, SlackUserID: "U006", DisplayName: "Bruno"},
		}, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "start"), testSlashCommand())

		assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
		assert.Contains(t, msg.Text, "2 participants")
		assert.Contains(t, msg.Text, "<@U005>")
	})

	t.Run("Should report an already running standup", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().Start(int64(1)).Return(domain.ErrInvalidTransition).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "start"), testSlashCommand())

		assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
		assert.Contains(t, msg.Text, "already running")
	})

	t.Run("Should warn when nobody is in the standup", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().Start(int64(1)).Return(nil).Times(1)
		channelService.EXPECT().StartTodayStandup(gomock.Any(), int64(1)).Return(nil).Times(1)
		channelService.EXPECT().PendingStandups(int64(1)).Return(nil, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "start"), testSlashCommand())

		assert.Contains(t, msg.Text, "nobody is in it yet")
	})
}

func TestHandleCommand_Stop(t *testing.T) {
	ctx := context.Background()

	t.Run("Should stop a running standup", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().Stop(int64(1)).Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "stop"), testSlashCommand())

		assert.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
		assert.Contains(t, msg.Text, "stopped")
	})

	t.Run("Should report when no standup is running", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().Stop(int64(1)).Return(domain.ErrInvalidTransition).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "stop"), testSlashCommand())

		assert.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
		assert.Contains(t, msg.Text, "No standup is running")
	})
}

func TestHandleCommand_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("Should summarize today's progress", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().TodayStandups(int64(1)).Return([]*entity.Standup{
			{ID: 10, UserID: 5, Status: domain.StandupCompleted},
			{ID: 11, UserID: 6, Status: domain.StandupInProgress},
			{ID: 12, UserID: 7, Status: domain.StandupPending},
		}, nil).Times(1)
		channelService.EXPECT().IsComplete(int64(1)).Return(false, nil).Times(1)
		channelService.EXPECT().CurrentStandup(int64(1)).Return(&entity.Standup{ID: 11, UserID: 6}, nil).Times(1)
		channelService.EXPECT().ListUsers(int64(1)).Return([]*entity.User{
			{ID: 6, SlackUserID: "U006", DisplayName: "Bruno"},
		}, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "status"), testSlashCommand())

		assert.Contains(t, msg.Text, "Completed: 1")
		assert.Contains(t, msg.Text, "In progress: 1")
		assert.Contains(t, msg.Text, "Pending: 1")
		assert.Contains(t, msg.Text, "<@U006>")
		assert.NotContains(t, msg.Text, "Everyone is done")
	})

	t.Run("Should celebrate a complete day", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().TodayStandups(int64(1)).Return([]*entity.Standup{
			{ID: 10, UserID: 5, Status: domain.StandupCompleted},
		}, nil).Times(1)
		channelService.EXPECT().IsComplete(int64(1)).Return(true, nil).Times(1)
		channelService.EXPECT().CurrentStandup(int64(1)).Return(nil, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "status"), testSlashCommand())

		assert.Contains(t, msg.Text, "Everyone is done")
	})

	t.Run("Should point at start when the day is empty", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().TodayStandups(int64(1)).Return(nil, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "status"), testSlashCommand())

		assert.Contains(t, msg.Text, "No standups for today")
	})
}

func TestHandleCommand_ManageUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Should add a mentioned user", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().AddUser(int64(1), "U123").Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "add <@U123|john>"), testSlashCommand())

		assert.Contains(t, msg.Text, "<@U123> was added")
	})

	t.Run("Should require a mention on add", func(t *testing.T) {
		handler, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		msg := handler.handleCommand(ctx, mustCommand(t, "add"), testSlashCommand())

		assert.Contains(t, msg.Text, "Please mention the user")
	})

	t.Run("Should remove a mentioned user", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().RemoveUser(int64(1), "U123").Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "remove <@U123>"), testSlashCommand())

		assert.Contains(t, msg.Text, "<@U123> was removed")
	})

	t.Run("Should disable a mentioned user", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().SetUserEnabled(int64(1), "U123", false).Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "disable <@U123>"), testSlashCommand())

		assert.Contains(t, msg.Text, "disabled from")
	})

	t.Run("Should list users flagging bots and disabled members", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().ListUsers(int64(1)).Return([]*entity.User{
			{ID: 5, DisplayName: "Ana", IsEnabled: true},
			{ID: 6, DisplayName: "Bot", IsBot: true, IsEnabled: true},
			{ID: 7, DisplayName: "Caio", IsEnabled: false},
		}, nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "list"), testSlashCommand())

		assert.Contains(t, msg.Text, "1. Ana\n")
		assert.Contains(t, msg.Text, "Bot (bot, skipped)")
		assert.Contains(t, msg.Text, "Caio (disabled)")
	})
}

func TestHandleCommand_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Should update the kickoff time", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().UpdateSchedule(int64(1), "time", "09:30").Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "config time 09:30"), testSlashCommand())

		assert.Contains(t, msg.Text, "time = 09:30")
	})

	t.Run("Should require a config type and value", func(t *testing.T) {
		handler, _, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		msg := handler.handleCommand(ctx, mustCommand(t, "config time"), testSlashCommand())

		assert.Contains(t, msg.Text, "Use: `/standup config")
	})

	t.Run("Should pause automatic standups", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().PauseSchedule(int64(1)).Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "pause"), testSlashCommand())

		assert.Contains(t, msg.Text, "paused")
	})

	t.Run("Should resume automatic standups", func(t *testing.T) {
		handler, channelService, ctrl := newHandlerTestMock(t)
		defer ctrl.Finish()

		expectSetupChannel(channelService)
		channelService.EXPECT().ResumeSchedule(int64(1)).Return(nil).Times(1)

		msg := handler.handleCommand(ctx, mustCommand(t, "resume"), testSlashCommand())

		assert.Contains(t, msg.Text, "resumed")
	})
}

func TestParseUserMention(t *testing.T) {
	tests := []struct {
		mention string
		want    string
	}{
		{"<@U123|john>", "U123"},
		{"<@U123>", "U123"},
		{"U123", "U123"},
		{"  <@U123|john doe>  ", "U123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseUserMention(tt.mention))
	}
}
