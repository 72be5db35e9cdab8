package contract

import (
	"context"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	User() UserRepo
	Standup() StandupRepo
	Scheduler() SchedulerRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	// TransitionState atomically moves the channel from one state to another.
	// It returns false when the channel was not in the expected state, which
	// is how a lost concurrent transition shows up.
	TransitionState(id int64, from, to domain.ChannelState) (bool, error)
	GetActiveChannels() ([]*entity.Channel, error)
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByID(userID int64) (*entity.User, error)
	GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.User, error)
	// GetAvailableByChannel returns the channel's non-bot enabled users in a
	// stable order (joined_at, then id).
	GetAvailableByChannel(channelID int64) ([]*entity.User, error)
	GetByChannel(channelID int64) ([]*entity.User, error)
	SetEnabled(userID int64, enabled bool) error
	Delete(userID int64) error
}

// StandupRepo defines the contract for standup repository
type StandupRepo interface {
	// Create persists a new standup. A (channel, user, day) uniqueness
	// violation is reported as domain.ErrDuplicateStandup.
	Create(standup *entity.Standup) error
	GetByUserAndDay(channelID, userID int64, day string) (*entity.Standup, error)
	GetByChannelAndDay(channelID int64, day string) ([]*entity.Standup, error)
	SetOrder(standupID int64, order int) error
	UpdateStatus(standupID int64, status domain.StandupStatus) error
	UpdateReport(standupID int64, report string) error
}

// SchedulerRepo defines the contract for scheduler repository
type SchedulerRepo interface {
	Create(scheduler *entity.Scheduler) error
	GetByChannelID(channelID int64) (*entity.Scheduler, error)
	Update(scheduler *entity.Scheduler) error
	Delete(channelID int64) error
	GetEnabled() ([]*entity.Scheduler, error)
	SetEnabled(channelID int64, enabled bool) error
}
