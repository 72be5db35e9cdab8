package entity

import (
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
)

type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	State            domain.ChannelState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type User struct {
	ID            int64
	ChannelID     int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	IsBot         bool
	IsEnabled     bool
	JoinedAt      time.Time
}

// Available reports whether the user is eligible for the daily standup.
func (u *User) Available() bool {
	return !u.IsBot && u.IsEnabled
}

type Standup struct {
	ID        int64
	ChannelID int64
	UserID    int64
	Day       string
	Status    domain.StandupStatus
	SeqOrder  int
	Report    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayStandups holds the disjoint status partitions of one channel's standups
// for a single day. Pending is sorted ascending by SeqOrder.
type DayStandups struct {
	Pending    []*Standup
	InProgress []*Standup
	Completed  []*Standup
}

type Scheduler struct {
	ID               int64
	ChannelID        int64
	NotificationTime string // HH:MM, 24-hour
	ActiveDays       []int  // ISO 8601 weekday numbers
	IsEnabled        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
