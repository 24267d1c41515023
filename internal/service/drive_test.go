package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/stpnv0/CleanSweep/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type driveMocks struct {
	drives     *mocks.MockDriveRepo
	attendance *mocks.MockAttendanceRepo
	users      *mocks.MockUserRepo
	cache      *mocks.MockDriveCache
}

func newDriveService(t *testing.T) (*DriveService, driveMocks) {
	t.Helper()
	m := driveMocks{
		drives:     mocks.NewMockDriveRepo(t),
		attendance: mocks.NewMockAttendanceRepo(t),
		users:      mocks.NewMockUserRepo(t),
		cache:      mocks.NewMockDriveCache(t),
	}
	return NewDriveService(m.drives, m.attendance, m.users, m.cache), m
}

func validDriveInput() domain.CreateDriveInput {
	return domain.CreateDriveInput{
		Title:    "Riverbank cleanup",
		Location: "East riverbank",
		Date:     time.Now().UTC().Add(72 * time.Hour),
		Roles: []domain.RoleRequirement{
			{Role: "picker", Capacity: 10},
			{Role: "sorter", Capacity: 3},
		},
	}
}

func TestDriveService_CreateDrive_Success(t *testing.T) {
	svc, m := newDriveService(t)

	organizer := &domain.User{ID: "org1", Role: domain.UserRoleOrganizer}
	m.users.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	m.drives.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	drive, err := svc.CreateDrive(context.Background(), "org1", validDriveInput())

	require.NoError(t, err)
	assert.NotEmpty(t, drive.ID)
	assert.Equal(t, domain.DriveStatusPlanned, drive.Status)
	assert.Len(t, drive.Roles, 2)
}

func TestDriveService_CreateDrive_NotOrganizer(t *testing.T) {
	svc, m := newDriveService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Role: domain.UserRoleVolunteer}, nil)

	_, err := svc.CreateDrive(context.Background(), "u1", validDriveInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestDriveService_CreateDrive_Validation(t *testing.T) {
	organizer := &domain.User{ID: "org1", Role: domain.UserRoleAdmin}

	tests := []struct {
		name   string
		mutate func(*domain.CreateDriveInput)
	}{
		{"empty title", func(in *domain.CreateDriveInput) { in.Title = "" }},
		{"past date", func(in *domain.CreateDriveInput) { in.Date = time.Now().Add(-time.Hour) }},
		{"no roles", func(in *domain.CreateDriveInput) { in.Roles = nil }},
		{"empty role name", func(in *domain.CreateDriveInput) { in.Roles[0].Role = "" }},
		{"zero capacity", func(in *domain.CreateDriveInput) { in.Roles[0].Capacity = 0 }},
		{"duplicate role", func(in *domain.CreateDriveInput) { in.Roles[1].Role = in.Roles[0].Role }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newDriveService(t)
			m.users.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)

			input := validDriveInput()
			tt.mutate(&input)

			_, err := svc.CreateDrive(context.Background(), "org1", input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDriveService_CreateDrive_RepoError(t *testing.T) {
	svc, m := newDriveService(t)

	m.users.EXPECT().GetByID(mock.Anything, "org1").
		Return(&domain.User{ID: "org1", Role: domain.UserRoleOrganizer}, nil)

	repoErr := errors.New("db error")
	m.drives.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateDrive(context.Background(), "org1", validDriveInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestDriveService_GetDetails_CacheHit(t *testing.T) {
	svc, m := newDriveService(t)

	cached := &domain.DriveDetails{
		Drive: domain.Drive{ID: "d1", Title: "Park cleanup"},
	}
	m.cache.EXPECT().GetDetails(mock.Anything, "d1").Return(cached, true)

	details, err := svc.GetDetails(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "Park cleanup", details.Drive.Title)
	// репозиторий не трогаем
	m.drives.AssertNotCalled(t, "GetByID")
}

func TestDriveService_GetDetails_CacheMiss(t *testing.T) {
	svc, m := newDriveService(t)

	drive := &domain.Drive{ID: "d1", Title: "Park cleanup"}
	records := []*domain.AttendanceRecord{
		{ID: "a1", DriveID: "d1", UserID: "u1", Status: domain.AttendanceStatusBooked},
		{ID: "a2", DriveID: "d1", UserID: "u2", Status: domain.AttendanceStatusWaitlisted},
	}

	m.cache.EXPECT().GetDetails(mock.Anything, "d1").Return(nil, false)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().ListByDrive(mock.Anything, "d1").Return(records, nil)
	m.cache.EXPECT().SetDetails(mock.Anything, mock.Anything).Return()

	details, err := svc.GetDetails(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "d1", details.Drive.ID)
	assert.Len(t, details.Attendance, 2)
}

func TestDriveService_GetDetails_NotFound(t *testing.T) {
	svc, m := newDriveService(t)

	m.cache.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, false)
	m.drives.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrDriveNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriveNotFound)
}

func TestDriveService_List_Success(t *testing.T) {
	svc, m := newDriveService(t)

	drives := []*domain.Drive{{ID: "d1"}, {ID: "d2"}}
	m.drives.EXPECT().List(mock.Anything).Return(drives, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
