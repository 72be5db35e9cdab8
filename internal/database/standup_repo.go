package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type standupRepository struct {
	db dbConn
}

func newStandupRepository(db dbConn) contract.StandupRepo {
	return &standupRepository{db: db}
}

func (r *standupRepository) Create(standup *entity.Standup) error {
	query := `
		INSERT INTO standups (channel_id, user_id, day, status, seq_order, report)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if standup.Status == "" {
		standup.Status = domain.StandupPending
	}

	result, err := r.db.Exec(query,
		standup.ChannelID,
		standup.UserID,
		standup.Day,
		string(standup.Status),
		standup.SeqOrder,
		standup.Report,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateStandup
		}
		return fmt.Errorf("failed to create standup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	standup.ID = id
	return nil
}

func (r *standupRepository) GetByUserAndDay(channelID, userID int64, day string) (*entity.Standup, error) {
	query := `
		SELECT id, channel_id, user_id, day, status, seq_order, report, created_at, updated_at
		FROM standups
		WHERE channel_id = ? AND user_id = ? AND day = ?
	`

	standup := &entity.Standup{}
	var status string

	err := r.db.QueryRow(query, channelID, userID, day).Scan(
		&standup.ID,
		&standup.ChannelID,
		&standup.UserID,
		&standup.Day,
		&status,
		&standup.SeqOrder,
		&standup.Report,
		&standup.CreatedAt,
		&standup.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standup: %w", err)
	}

	standup.Status = domain.StandupStatus(status)
	return standup, nil
}

func (r *standupRepository) GetByChannelAndDay(channelID int64, day string) ([]*entity.Standup, error) {
	query := `
		SELECT id, channel_id, user_id, day, status, seq_order, report, created_at, updated_at
		FROM standups
		WHERE channel_id = ? AND day = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, channelID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get standups: %w", err)
	}
	defer rows.Close()

	var standups []*entity.Standup
	for rows.Next() {
		standup := &entity.Standup{}
		var status string
		err := rows.Scan(
			&standup.ID,
			&standup.ChannelID,
			&standup.UserID,
			&standup.Day,
			&status,
			&standup.SeqOrder,
			&standup.Report,
			&standup.CreatedAt,
			&standup.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standup: %w", err)
		}
		standup.Status = domain.StandupStatus(status)
		standups = append(standups, standup)
	}

	return standups, nil
}

func (r *standupRepository) SetOrder(standupID int64, order int) error {
	query := `UPDATE standups SET seq_order = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, order, time.Now(), standupID)
	if err != nil {
		return fmt.Errorf("failed to set standup order: %w", err)
	}

	return nil
}

func (r *standupRepository) UpdateStatus(standupID int64, status domain.StandupStatus) error {
	query := `UPDATE standups SET status = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, string(status), time.Now(), standupID)
	if err != nil {
		return fmt.Errorf("failed to update standup status: %w", err)
	}

	return nil
}

func (r *standupRepository) UpdateReport(standupID int64, report string) error {
	query := `UPDATE standups SET report = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, report, time.Now(), standupID)
	if err != nil {
		return fmt.Errorf("failed to update standup report: %w", err)
	}

	return nil
}
