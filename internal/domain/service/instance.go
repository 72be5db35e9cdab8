package service

import (
	"fmt"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
)

type Instance struct {
	Channel   *channelService
	Standup   *standupService
	Scheduler *standupScheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient) (*Instance, error) {
	channelService := newChannel(dm, slackClient)

	scheduler, err := newScheduler(dm, channelService)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	channelService.SetScheduler(scheduler)

	return &Instance{
		Channel:   channelService,
		Standup:   newStandup(dm),
		Scheduler: scheduler,
	}, nil
}
