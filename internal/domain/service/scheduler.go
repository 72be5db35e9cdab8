package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/internal/metrics"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// standupScheduler fires the daily standup cycle for each channel at its
// configured time on its active days.
type standupScheduler struct {
	dm       contract.DataManager
	channels contract.ChannelService
	cron     gocron.Scheduler

	mu   sync.Mutex
	jobs map[int64]uuid.UUID
}

func newScheduler(dm contract.DataManager, channels contract.ChannelService) (*standupScheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &standupScheduler{
		dm:       dm,
		channels: channels,
		cron:     cron,
		jobs:     make(map[int64]uuid.UUID),
	}, nil
}

// Start registers a job for every enabled channel config and begins firing.
func (s *standupScheduler) Start() error {
	configs, err := s.dm.Scheduler().GetEnabled()
	if err != nil {
		return fmt.Errorf("failed to load scheduler configs: %w", err)
	}

	for _, config := range configs {
		if err := s.schedule(config); err != nil {
			log.Printf("Failed to schedule channel %d: %v", config.ChannelID, err)
		}
	}

	log.Printf("Scheduler starting with %d channels", len(configs))
	s.cron.Start()
	return nil
}

func (s *standupScheduler) Stop() error {
	log.Println("Scheduler stopping...")
	return s.cron.Shutdown()
}

// Reschedule rebuilds the job for one channel after its config changed.
func (s *standupScheduler) Reschedule(channelID int64) {
	s.mu.Lock()
	if jobID, ok := s.jobs[channelID]; ok {
		if err := s.cron.RemoveJob(jobID); err != nil {
			log.Printf("Failed to remove job for channel %d: %v", channelID, err)
		}
		delete(s.jobs, channelID)
	}
	s.mu.Unlock()

	config, err := s.dm.Scheduler().GetByChannelID(channelID)
	if err != nil {
		log.Printf("Failed to load scheduler config for channel %d: %v", channelID, err)
		return
	}

	if config == nil || !config.IsEnabled {
		return
	}

	if err := s.schedule(config); err != nil {
		log.Printf("Failed to reschedule channel %d: %v", channelID, err)
	}
}

func (s *standupScheduler) schedule(config *entity.Scheduler) error {
	hour, minute, err := parseNotificationTime(config.NotificationTime)
	if err != nil {
		return err
	}

	if len(config.ActiveDays) == 0 {
		return fmt.Errorf("no active days configured for channel %d", config.ChannelID)
	}

	weekdays := make([]time.Weekday, 0, len(config.ActiveDays))
	for _, day := range config.ActiveDays {
		weekdays = append(weekdays, domain.ISOWeekday(day))
	}

	job, err := s.cron.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(weekdays[0], weekdays[1:]...),
			gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(s.runDailyCycle, config.ChannelID),
		gocron.WithName(fmt.Sprintf("standup-channel-%d", config.ChannelID)),
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	s.mu.Lock()
	s.jobs[config.ChannelID] = job.ID()
	s.mu.Unlock()

	return nil
}

// runDailyCycle activates the channel, materializes today's standups and
// posts the kickoff message.
func (s *standupScheduler) runDailyCycle(channelID int64) {
	// A duplicate trigger finds the channel already active; that is fine,
	// StartTodayStandup is idempotent.
	if err := s.channels.Start(channelID); err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		log.Printf("Failed to start channel %d: %v", channelID, err)
		metrics.CycleErrors.Inc()
		return
	}

	if err := s.channels.StartTodayStandup(context.Background(), channelID); err != nil {
		log.Printf("Failed to start today's standup for channel %d: %v", channelID, err)
		metrics.CycleErrors.Inc()
		return
	}

	metrics.CyclesStarted.Inc()

	pending, err := s.channels.PendingStandups(channelID)
	if err != nil {
		log.Printf("Failed to get pending standups for channel %d: %v", channelID, err)
		return
	}

	if len(pending) == 0 {
		if err := s.channels.Message(channelID, "🤖 *Daily Standup*\n\nNo users found for today's standup. Use `/standup add @user` to add team members!"); err != nil {
			log.Printf("Failed to send message to channel %d: %v", channelID, err)
			return
		}
		metrics.MessagesSent.Inc()
		return
	}

	first, err := s.dm.User().GetByID(pending[0].UserID)
	if err != nil || first == nil {
		log.Printf("Failed to get first user for channel %d: %v", channelID, err)
		return
	}

	message := fmt.Sprintf("🌅 *Daily Standup*\n\nTime for today's standup! %d to go.\nFirst up: <@%s>", len(pending), first.SlackUserID)
	if err := s.channels.Message(channelID, message); err != nil {
		log.Printf("Failed to send kickoff to channel %d: %v", channelID, err)
		return
	}

	metrics.MessagesSent.Inc()
	log.Printf("Standup cycle started for channel %d with %d standups", channelID, len(pending))
}

func parseNotificationTime(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid notification time %q: %w", value, err)
	}
	return t.Hour(), t.Minute(), nil
}

func validNotificationTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func parseDays(input string) []int {
	parts := strings.Split(strings.TrimSpace(input), ",")
	var days []int

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if dayNum, ok := domain.WeekdayNumbers[part]; ok {
			days = append(days, dayNum)
		}
	}

	// Sort days in week order (1-7)
	sort.Ints(days)
	return days
}
