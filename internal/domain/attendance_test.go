package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinCancellationWindow_Boundary(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// ровно за 24 часа отмена ещё разрешена
	assert.True(t, WithinCancellationWindow(now.Add(24*time.Hour), now))

	// на секунду позже — уже нет
	assert.False(t, WithinCancellationWindow(now.Add(24*time.Hour-time.Second), now))

	assert.True(t, WithinCancellationWindow(now.Add(48*time.Hour), now))
	assert.False(t, WithinCancellationWindow(now.Add(time.Hour), now))
	assert.False(t, WithinCancellationWindow(now.Add(-time.Hour), now))
}

func TestSameDriveDay(t *testing.T) {
	driveDate := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, SameDriveDay(driveDate, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, SameDriveDay(driveDate, time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC)))

	assert.False(t, SameDriveDay(driveDate, time.Date(2025, 6, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, SameDriveDay(driveDate, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)))

	// сравнение календарных дат идёт в UTC
	msk := time.FixedZone("MSK", 3*60*60)
	assert.True(t, SameDriveDay(driveDate, time.Date(2025, 6, 11, 1, 0, 0, 0, msk)))
}

func TestDrive_Bookable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	d := Drive{Status: DriveStatusPlanned, Date: now.Add(time.Hour)}
	assert.True(t, d.Bookable(now))

	d.Date = now.Add(-time.Hour)
	assert.False(t, d.Bookable(now))

	d.Date = now.Add(time.Hour)
	for _, status := range []DriveStatus{DriveStatusActive, DriveStatusCompleted, DriveStatusCancelled} {
		d.Status = status
		assert.False(t, d.Bookable(now), string(status))
	}
}

func TestDrive_HasRole(t *testing.T) {
	d := Drive{Roles: []RoleRequirement{
		{Role: "picker", Capacity: 10},
		{Role: "sorter", Capacity: 5},
	}}

	assert.True(t, d.HasRole("picker"))
	assert.True(t, d.HasRole("sorter"))
	assert.False(t, d.HasRole("driver"))
}
