package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	channelRepo   contract.ChannelRepo
	userRepo      contract.UserRepo
	standupRepo   contract.StandupRepo
	schedulerRepo contract.SchedulerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}

	i.channelRepo = newChannelRepository(db.conn)
	i.userRepo = newUserRepository(db.conn)
	i.standupRepo = newStandupRepository(db.conn)
	i.schedulerRepo = newSchedulerRepository(db.conn)

	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:   newChannelRepository(db),
		userRepo:      newUserRepository(db),
		standupRepo:   newStandupRepository(db),
		schedulerRepo: newSchedulerRepository(db),
	}
}

// Channel returns the channel repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// User returns the user repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Standup returns the standup repository
func (i *instance) Standup() contract.StandupRepo {
	return i.standupRepo
}

// Scheduler returns the scheduler repository
func (i *instance) Scheduler() contract.SchedulerRepo {
	return i.schedulerRepo
}

// WithTransaction executes a function within a database transaction.
// Transactions do not nest: calling it on a transaction-scoped DataManager
// fails.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("transaction already in progress")
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
