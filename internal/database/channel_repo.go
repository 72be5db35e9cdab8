package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type channelRepository struct {
	db dbConn
}

func newChannelRepository(db dbConn) contract.ChannelRepo {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(channel *entity.Channel) error {
	query := `
		INSERT INTO channels (slack_channel_id, slack_channel_name, slack_team_id, state)
		VALUES (?, ?, ?, ?)
	`

	if channel.State == "" {
		channel.State = domain.StateIdle
	}

	result, err := r.db.Exec(query,
		channel.SlackChannelID,
		channel.SlackChannelName,
		channel.SlackTeamID,
		string(channel.State),
	)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	channel.ID = id
	return nil
}

func (r *channelRepository) GetBySlackID(slackChannelID string) (*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, slack_team_id,
			state, created_at, updated_at
		FROM channels
		WHERE slack_channel_id = ?
	`

	return r.scanOne(r.db.QueryRow(query, slackChannelID))
}

func (r *channelRepository) GetByID(id int64) (*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, slack_team_id,
			state, created_at, updated_at
		FROM channels
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *channelRepository) Update(channel *entity.Channel) error {
	query := `
		UPDATE channels SET
			slack_channel_name = ?,
			state = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		channel.SlackChannelName,
		string(channel.State),
		time.Now(),
		channel.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

// TransitionState only applies the update when the channel is still in the
// expected state, so a concurrent transition loses cleanly instead of
// clobbering the winner.
func (r *channelRepository) TransitionState(id int64, from, to domain.ChannelState) (bool, error) {
	query := `
		UPDATE channels SET
			state = ?,
			updated_at = ?
		WHERE id = ? AND state = ?
	`

	result, err := r.db.Exec(query, string(to), time.Now(), id, string(from))
	if err != nil {
		return false, fmt.Errorf("failed to transition channel state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *channelRepository) GetActiveChannels() ([]*entity.Channel, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, slack_team_id,
			state, created_at, updated_at
		FROM channels
		WHERE state = ?
	`

	rows, err := r.db.Query(query, string(domain.StateActive))
	if err != nil {
		return nil, fmt.Errorf("failed to get active channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		channel := &entity.Channel{}
		var state string
		err := rows.Scan(
			&channel.ID,
			&channel.SlackChannelID,
			&channel.SlackChannelName,
			&channel.SlackTeamID,
			&state,
			&channel.CreatedAt,
			&channel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channel.State = domain.ChannelState(state)
		channels = append(channels, channel)
	}

	return channels, nil
}

func (r *channelRepository) scanOne(row *sql.Row) (*entity.Channel, error) {
	channel := &entity.Channel{}
	var state string

	err := row.Scan(
		&channel.ID,
		&channel.SlackChannelID,
		&channel.SlackChannelName,
		&channel.SlackTeamID,
		&state,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	channel.State = domain.ChannelState(state)
	return channel, nil
}
