package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type userRepository struct {
	db dbConn
}

func newUserRepository(db dbConn) contract.UserRepo {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	query := `
		INSERT INTO users (channel_id, slack_user_id, slack_user_name, display_name, is_bot, is_enabled)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		user.ChannelID,
		user.SlackUserID,
		user.SlackUserName,
		user.DisplayName,
		user.IsBot,
		user.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepository) GetByID(userID int64) (*entity.User, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_bot, is_enabled, joined_at
		FROM users
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, userID))
}

func (r *userRepository) GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.User, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_bot, is_enabled, joined_at
		FROM users
		WHERE channel_id = ? AND slack_user_id = ?
	`

	return r.scanOne(r.db.QueryRow(query, channelID, slackUserID))
}

// GetAvailableByChannel returns the channel's non-bot enabled users. The
// order must be stable across calls, so ties on joined_at break by id.
func (r *userRepository) GetAvailableByChannel(channelID int64) ([]*entity.User, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_bot, is_enabled, joined_at
		FROM users
		WHERE channel_id = ? AND is_bot = 0 AND is_enabled = 1
		ORDER BY joined_at ASC, id ASC
	`

	return r.list(query, channelID)
}

func (r *userRepository) GetByChannel(channelID int64) ([]*entity.User, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_bot, is_enabled, joined_at
		FROM users
		WHERE channel_id = ?
		ORDER BY joined_at ASC, id ASC
	`

	return r.list(query, channelID)
}

func (r *userRepository) SetEnabled(userID int64, enabled bool) error {
	query := `UPDATE users SET is_enabled = ? WHERE id = ?`

	_, err := r.db.Exec(query, enabled, userID)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}

	return nil
}

func (r *userRepository) Delete(userID int64) error {
	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *userRepository) list(query string, args ...interface{}) ([]*entity.User, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		err := rows.Scan(
			&user.ID,
			&user.ChannelID,
			&user.SlackUserID,
			&user.SlackUserName,
			&user.DisplayName,
			&user.IsBot,
			&user.IsEnabled,
			&user.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *userRepository) scanOne(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}

	err := row.Scan(
		&user.ID,
		&user.ChannelID,
		&user.SlackUserID,
		&user.SlackUserName,
		&user.DisplayName,
		&user.IsBot,
		&user.IsEnabled,
		&user.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
