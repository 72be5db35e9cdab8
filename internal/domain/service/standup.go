package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/internal/metrics"
)

type standupService struct {
	dm contract.DataManager
}

func newStandup(dm contract.DataManager) *standupService {
	return &standupService{dm: dm}
}

// GetOrCreate returns the existing standup for (channel, user, day) or
// creates a new pending one. Safe under concurrent calls for the same key:
// the loser of a creation race re-reads and returns the canonical row.
func (s *standupService) GetOrCreate(channelID, userID int64, day string) (*entity.Standup, error) {
	standup, created, err := getOrCreateStandup(s.dm.Standup(), channelID, userID, day)
	if err != nil {
		return nil, err
	}

	if created {
		metrics.StandupsCreated.Inc()
	}
	return standup, nil
}

// SetOrder assigns the sequence order of a standup.
func (s *standupService) SetOrder(standupID int64, order int) error {
	return s.dm.Standup().SetOrder(standupID, order)
}

// Classify partitions a day's standups by status. The pending partition is
// sorted ascending by sequence order for a deterministic prompting sequence.
func (s *standupService) Classify(channelID int64, day string) (*entity.DayStandups, error) {
	standups, err := s.dm.Standup().GetByChannelAndDay(channelID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get standups: %w", err)
	}

	result := &entity.DayStandups{}
	for _, standup := range standups {
		switch standup.Status {
		case domain.StandupPending:
			result.Pending = append(result.Pending, standup)
		case domain.StandupInProgress:
			result.InProgress = append(result.InProgress, standup)
		case domain.StandupCompleted:
			result.Completed = append(result.Completed, standup)
		default:
			return nil, fmt.Errorf("standup %d has unknown status %q", standup.ID, standup.Status)
		}
	}

	sort.SliceStable(result.Pending, func(i, j int) bool {
		return result.Pending[i].SeqOrder < result.Pending[j].SeqOrder
	})

	return result, nil
}

// getOrCreateStandup reports whether it created the row, so callers running
// inside a transaction can defer counting until the transaction commits.
func getOrCreateStandup(repo contract.StandupRepo, channelID, userID int64, day string) (*entity.Standup, bool, error) {
	standup, err := repo.GetByUserAndDay(channelID, userID, day)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get standup: %w", err)
	}

	if standup != nil {
		return standup, false, nil
	}

	standup = &entity.Standup{
		ChannelID: channelID,
		UserID:    userID,
		Day:       day,
		Status:    domain.StandupPending,
	}

	err = repo.Create(standup)
	if errors.Is(err, domain.ErrDuplicateStandup) {
		// Lost the creation race, the canonical row already exists
		standup, err = repo.GetByUserAndDay(channelID, userID, day)
		if err != nil {
			return nil, false, fmt.Errorf("failed to re-read standup after duplicate: %w", err)
		}
		if standup == nil {
			return nil, false, fmt.Errorf("standup for user %d on %s vanished after duplicate", userID, day)
		}
		return standup, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create standup: %w", err)
	}

	return standup, true, nil
}
