package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/internal/metrics"
	"github.com/slack-go/slack"
)

type channelService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	scheduler   *standupScheduler
}

func newChannel(dm contract.DataManager, slackClient contract.SlackClient) *channelService {
	return &channelService{
		dm:          dm,
		slackClient: slackClient,
		scheduler:   nil, // Will be set later to avoid circular dependency
	}
}

func (s *channelService) SetScheduler(scheduler *standupScheduler) {
	s.scheduler = scheduler
}

func (s *channelService) SetupChannel(slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	// Check if channel already exists
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, false, nil // Channel already existed
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		State:            domain.StateIdle,
	}

	if err := s.dm.Channel().Create(channel); err != nil {
		return nil, false, fmt.Errorf("failed to create channel: %w", err)
	}

	// Create default scheduler config
	scheduler := &entity.Scheduler{
		ChannelID:        channel.ID,
		NotificationTime: domain.DefaultNotificationTime,
		ActiveDays:       domain.DefaultActiveDays,
		IsEnabled:        true,
	}

	if err := s.dm.Scheduler().Create(scheduler); err != nil {
		return nil, false, fmt.Errorf("failed to create scheduler config: %w", err)
	}

	// Notify scheduler of new channel
	if s.scheduler != nil {
		s.scheduler.Reschedule(channel.ID)
	}

	return channel, true, nil // Channel was auto-created
}

// Start moves the channel from idle to active. Any other edge fails with
// domain.ErrInvalidTransition and leaves the state untouched.
func (s *channelService) Start(channelID int64) error {
	return s.transition(channelID, domain.EventStart)
}

// Stop moves the channel from active back to idle.
func (s *channelService) Stop(channelID int64) error {
	return s.transition(channelID, domain.EventStop)
}

func (s *channelService) transition(channelID int64, event domain.ChannelEvent) error {
	channel, err := s.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return domain.ErrChannelNotFound
	}

	next, err := channel.State.Apply(event)
	if err != nil {
		return err
	}

	ok, err := s.dm.Channel().TransitionState(channelID, channel.State, next)
	if err != nil {
		return fmt.Errorf("failed to transition channel state: %w", err)
	}

	if !ok {
		// A concurrent caller won the transition; observing the
		// post-transition state makes this edge illegal.
		return domain.ErrInvalidTransition
	}

	return nil
}

// StartTodayStandup materializes today's standup for every available user and
// assigns the sequence order following the enumeration order. The whole run
// is transactional: a failure leaves today's standups exactly as they were.
// Re-invocation on the same day never duplicates standups but reassigns the
// order, so the latest successful run's order is authoritative.
func (s *channelService) StartTodayStandup(ctx context.Context, channelID int64) error {
	day := domain.Today()

	var created int
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		created = 0
		users, err := tx.User().GetAvailableByChannel(channelID)
		if err != nil {
			return fmt.Errorf("failed to get available users: %w", err)
		}

		for i, user := range users {
			standup, isNew, err := getOrCreateStandup(tx.Standup(), channelID, user.ID, day)
			if err != nil {
				return fmt.Errorf("failed to get or create standup for user %d: %w", user.ID, err)
			}
			if isNew {
				created++
			}

			if err := tx.Standup().SetOrder(standup.ID, i+1); err != nil {
				return fmt.Errorf("failed to set standup order for user %d: %w", user.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Count only committed creations
	metrics.StandupsCreated.Add(float64(created))
	return nil
}

// AvailableUsers returns the channel members that are able to do the standup.
func (s *channelService) AvailableUsers(channelID int64) ([]*entity.User, error) {
	return s.dm.User().GetAvailableByChannel(channelID)
}

// TodayStandups returns all the standups of today.
func (s *channelService) TodayStandups(channelID int64) ([]*entity.Standup, error) {
	return s.dm.Standup().GetByChannelAndDay(channelID, domain.Today())
}

// PendingStandups returns the standups that weren't done yet, sorted
// ascending by sequence order.
func (s *channelService) PendingStandups(channelID int64) ([]*entity.Standup, error) {
	standups, err := s.TodayStandups(channelID)
	if err != nil {
		return nil, err
	}

	var pending []*entity.Standup
	for _, standup := range standups {
		if standup.Status == domain.StandupPending {
			pending = append(pending, standup)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].SeqOrder < pending[j].SeqOrder
	})

	return pending, nil
}

// CurrentStandup returns the in-progress standup of today, if any. More than
// one in-progress standup is a data-consistency violation; the first by
// creation order is returned and the condition is logged.
func (s *channelService) CurrentStandup(channelID int64) (*entity.Standup, error) {
	standups, err := s.TodayStandups(channelID)
	if err != nil {
		return nil, err
	}

	var current *entity.Standup
	for _, standup := range standups {
		if standup.Status != domain.StandupInProgress {
			continue
		}
		if current != nil {
			log.Printf("WARN: channel %d has more than one in-progress standup for %s", channelID, standup.Day)
			break
		}
		current = standup
	}

	return current, nil
}

// IsComplete reports whether today's standup set is non-empty and every
// entry is completed. An empty day is not complete.
func (s *channelService) IsComplete(channelID int64) (bool, error) {
	standups, err := s.TodayStandups(channelID)
	if err != nil {
		return false, err
	}

	if len(standups) == 0 {
		return false, nil
	}

	for _, standup := range standups {
		if standup.Status != domain.StandupCompleted {
			return false, nil
		}
	}

	return true, nil
}

// Message sends a message to the slack channel. Delivery failures propagate
// unchanged to the caller.
func (s *channelService) Message(channelID int64, text string) error {
	channel, err := s.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return domain.ErrChannelNotFound
	}

	_, _, err = s.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	return err
}

func (s *channelService) AddUser(channelID int64, slackUserID string) error {
	// Get user info from Slack
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	// Check if user already exists
	existingUser, err := s.dm.User().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return fmt.Errorf("user is already in the standup")
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	user := &entity.User{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		IsBot:         userInfo.IsBot,
		IsEnabled:     true,
	}

	return s.dm.User().Create(user)
}

func (s *channelService) RemoveUser(channelID int64, slackUserID string) error {
	user, err := s.dm.User().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return fmt.Errorf("user not found in standup")
	}

	return s.dm.User().Delete(user.ID)
}

func (s *channelService) SetUserEnabled(channelID int64, slackUserID string, enabled bool) error {
	user, err := s.dm.User().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return fmt.Errorf("user not found in standup")
	}

	return s.dm.User().SetEnabled(user.ID, enabled)
}

func (s *channelService) ListUsers(channelID int64) ([]*entity.User, error) {
	return s.dm.User().GetByChannel(channelID)
}

func (s *channelService) UpdateSchedule(channelID int64, configType, value string) error {
	scheduler, err := s.dm.Scheduler().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get scheduler config: %w", err)
	}

	if scheduler == nil {
		scheduler = &entity.Scheduler{
			ChannelID:        channelID,
			NotificationTime: domain.DefaultNotificationTime,
			ActiveDays:       domain.DefaultActiveDays,
			IsEnabled:        true,
		}
		if err := s.dm.Scheduler().Create(scheduler); err != nil {
			return fmt.Errorf("failed to create scheduler config: %w", err)
		}
	}

	switch configType {
	case "time":
		if !validNotificationTime(value) {
			return fmt.Errorf("invalid time format. Use HH:MM (24-hour format). Example: 09:30")
		}
		scheduler.NotificationTime = value
	case "days":
		days := parseDays(value)
		if len(days) == 0 {
			return fmt.Errorf("invalid days. Use numbers 1-7 (1=Mon, 2=Tue, 3=Wed, 4=Thu, 5=Fri, 6=Sat, 7=Sun). Example: 1,2,4,5")
		}
		scheduler.ActiveDays = days
	default:
		return fmt.Errorf("invalid configuration type. Use 'time' or 'days'")
	}

	if err := s.dm.Scheduler().Update(scheduler); err != nil {
		return err
	}

	if s.scheduler != nil {
		s.scheduler.Reschedule(channelID)
	}

	return nil
}

func (s *channelService) GetSchedule(channelID int64) (*entity.Scheduler, error) {
	return s.dm.Scheduler().GetByChannelID(channelID)
}

func (s *channelService) PauseSchedule(channelID int64) error {
	if err := s.dm.Scheduler().SetEnabled(channelID, false); err != nil {
		return fmt.Errorf("failed to pause scheduler: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.Reschedule(channelID)
	}

	return nil
}

func (s *channelService) ResumeSchedule(channelID int64) error {
	if err := s.dm.Scheduler().SetEnabled(channelID, true); err != nil {
		return fmt.Errorf("failed to resume scheduler: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.Reschedule(channelID)
	}

	return nil
}
