package database

import (
	"testing"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	channel := createTestChannel(t, dm, "C001")

	scheduler := &entity.Scheduler{
		ChannelID:        channel.ID,
		NotificationTime: "09:30",
		ActiveDays:       []int{1, 3, 5},
		IsEnabled:        true,
	}
	require.NoError(t, dm.Scheduler().Create(scheduler))
	require.NotZero(t, scheduler.ID)

	t.Run("Should round-trip the config including active days", func(t *testing.T) {
		got, err := dm.Scheduler().GetByChannelID(channel.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "09:30", got.NotificationTime)
		assert.Equal(t, []int{1, 3, 5}, got.ActiveDays)
		assert.True(t, got.IsEnabled)
	})

	t.Run("Should return nil for a channel without config", func(t *testing.T) {
		got, err := dm.Scheduler().GetByChannelID(9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSchedulerRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	channel := createTestChannel(t, dm, "C001")

	scheduler := &entity.Scheduler{
		ChannelID:        channel.ID,
		NotificationTime: "09:00",
		ActiveDays:       []int{1, 2, 3, 4, 5},
		IsEnabled:        true,
	}
	require.NoError(t, dm.Scheduler().Create(scheduler))

	scheduler.NotificationTime = "10:15"
	scheduler.ActiveDays = []int{2, 4}
	require.NoError(t, dm.Scheduler().Update(scheduler))

	got, err := dm.Scheduler().GetByChannelID(channel.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "10:15", got.NotificationTime)
	assert.Equal(t, []int{2, 4}, got.ActiveDays)
}

func TestSchedulerRepository_GetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	enabled := createTestChannel(t, dm, "C001")
	paused := createTestChannel(t, dm, "C002")

	require.NoError(t, dm.Scheduler().Create(&entity.Scheduler{
		ChannelID:        enabled.ID,
		NotificationTime: "09:00",
		ActiveDays:       []int{1, 2, 3, 4, 5},
		IsEnabled:        true,
	}))
	require.NoError(t, dm.Scheduler().Create(&entity.Scheduler{
		ChannelID:        paused.ID,
		NotificationTime: "09:00",
		ActiveDays:       []int{1, 2, 3, 4, 5},
		IsEnabled:        true,
	}))

	require.NoError(t, dm.Scheduler().SetEnabled(paused.ID, false))

	configs, err := dm.Scheduler().GetEnabled()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, enabled.ID, configs[0].ChannelID)

	t.Run("Should list the config again once re-enabled", func(t *testing.T) {
		require.NoError(t, dm.Scheduler().SetEnabled(paused.ID, true))

		configs, err := dm.Scheduler().GetEnabled()
		require.NoError(t, err)
		assert.Len(t, configs, 2)
	})
}

func TestSchedulerRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	channel := createTestChannel(t, dm, "C001")

	require.NoError(t, dm.Scheduler().Create(&entity.Scheduler{
		ChannelID:        channel.ID,
		NotificationTime: "09:00",
		ActiveDays:       []int{1, 2, 3, 4, 5},
		IsEnabled:        true,
	}))

	require.NoError(t, dm.Scheduler().Delete(channel.ID))

	got, err := dm.Scheduler().GetByChannelID(channel.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
