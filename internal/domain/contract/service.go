package contract

import (
	"context"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type ChannelService interface {
	SetupChannel(slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	Start(channelID int64) error
	Stop(channelID int64) error
	StartTodayStandup(ctx context.Context, channelID int64) error
	AvailableUsers(channelID int64) ([]*entity.User, error)
	TodayStandups(channelID int64) ([]*entity.Standup, error)
	PendingStandups(channelID int64) ([]*entity.Standup, error)
	CurrentStandup(channelID int64) (*entity.Standup, error)
	IsComplete(channelID int64) (bool, error)
	Message(channelID int64, text string) error
	AddUser(channelID int64, slackUserID string) error
	RemoveUser(channelID int64, slackUserID string) error
	SetUserEnabled(channelID int64, slackUserID string, enabled bool) error
	ListUsers(channelID int64) ([]*entity.User, error)
	UpdateSchedule(channelID int64, configType, configValue string) error
	GetSchedule(channelID int64) (*entity.Scheduler, error)
	PauseSchedule(channelID int64) error
	ResumeSchedule(channelID int64) error
}

type StandupService interface {
	GetOrCreate(channelID, userID int64, day string) (*entity.Standup, error)
	SetOrder(standupID int64, order int) error
	Classify(channelID int64, day string) (*entity.DayStandups, error)
}
