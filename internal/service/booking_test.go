package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/stpnv0/CleanSweep/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	attendance *mocks.MockAttendanceRepo
	drives     *mocks.MockDriveRepo
	users      *mocks.MockUserRepo
	notifier   *mocks.MockAttendanceNotifier
	cache      *mocks.MockDriveCache
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		attendance: mocks.NewMockAttendanceRepo(t),
		drives:     mocks.NewMockDriveRepo(t),
		users:      mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockAttendanceNotifier(t),
		cache:      mocks.NewMockDriveCache(t),
	}
	svc := NewBookingService(
		m.attendance, m.drives, m.users,
		m.notifier, m.cache,
		24*time.Hour,
		newTestLogger(t),
	)
	return svc, m
}

func plannedDrive(id string, date time.Time) *domain.Drive {
	return &domain.Drive{
		ID:     id,
		Title:  "Park cleanup",
		Date:   date,
		Status: domain.DriveStatusPlanned,
		Roles: []domain.RoleRequirement{
			{Role: "picker", Capacity: 2},
			{Role: "sorter", Capacity: 1},
		},
	}
}

func volunteer(id string) *domain.User {
	return &domain.User{ID: id, Username: "user-" + id, Role: domain.UserRoleVolunteer}
}

// --- Book ---

func TestBookingService_Book_Booked(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	user := volunteer("u1")

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			rec.Status = domain.AttendanceStatusBooked
			return nil
		})
	m.cache.EXPECT().Invalidate(mock.Anything, "d1").Return()
	m.notifier.EXPECT().NotifySlotBooked(mock.Anything, user, drive, mock.Anything).Return()

	rec, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusBooked, rec.Status)
	assert.Equal(t, "d1", rec.DriveID)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "picker", rec.Role)
	assert.NotEmpty(t, rec.ID)

	// QR-токен — случайный UUID
	_, err = uuid.Parse(rec.QRToken)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_Waitlisted(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	user := volunteer("u1")

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			rec.Status = domain.AttendanceStatusWaitlisted
			return nil
		})
	m.cache.EXPECT().Invalidate(mock.Anything, "d1").Return()
	m.notifier.EXPECT().NotifyWaitlisted(mock.Anything, user, drive, mock.Anything).Return()

	rec, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusWaitlisted, rec.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_NotVolunteer(t *testing.T) {
	svc, m := newBookingService(t)

	organizer := &domain.User{ID: "u1", Role: domain.UserRoleOrganizer}
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(organizer, nil)

	_, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotVolunteer)
}

func TestBookingService_Book_DriveNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(volunteer("u1"), nil)
	m.drives.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrDriveNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1", "picker")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriveNotFound)
}

func TestBookingService_Book_DriveNotBookable(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	drive.Status = domain.DriveStatusActive

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(volunteer("u1"), nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)

	_, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriveNotBookable)
}

func TestBookingService_Book_PastDrive(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(-time.Hour))

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(volunteer("u1"), nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)

	_, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriveNotBookable)
}

func TestBookingService_Book_UnknownRole(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(volunteer("u1"), nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)

	_, err := svc.Book(context.Background(), "d1", "u1", "driver")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(volunteer("u1"), nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().Book(mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), "d1", "u1", "picker")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

// --- Cancel ---

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	user := volunteer("u1")
	active := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1", Role: "picker",
		Status: domain.AttendanceStatusBooked,
	}
	cancelled := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1", Role: "picker",
		Status: domain.AttendanceStatusCancelled,
	}

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().GetByDriveAndUser(mock.Anything, "d1", "u1").Return(active, nil)
	m.attendance.EXPECT().Cancel(mock.Anything, "d1", "u1").Return(cancelled, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "d1").Return()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, drive).Return()

	rec, err := svc.Cancel(context.Background(), "d1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusCancelled, rec.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_RecordNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().GetByDriveAndUser(mock.Anything, "d1", "u1").
		Return(nil, domain.ErrAttendanceNotFound)

	_, err := svc.Cancel(context.Background(), "d1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceNotFound)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	rec := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1",
		Status: domain.AttendanceStatusCancelled,
	}

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().GetByDriveAndUser(mock.Anything, "d1", "u1").Return(rec, nil)

	_, err := svc.Cancel(context.Background(), "d1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceCancelled)
}

func TestBookingService_Cancel_CheckedInRejected(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	rec := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1",
		Status: domain.AttendanceStatusCheckedIn,
	}

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().GetByDriveAndUser(mock.Anything, "d1", "u1").Return(rec, nil)

	_, err := svc.Cancel(context.Background(), "d1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttendanceCheckedIn)
}

func TestBookingService_Cancel_WindowClosed(t *testing.T) {
	svc, m := newBookingService(t)

	// до начала меньше 24 часов
	drive := plannedDrive("d1", time.Now().UTC().Add(23*time.Hour))
	rec := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1",
		Status: domain.AttendanceStatusBooked,
	}

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().GetByDriveAndUser(mock.Anything, "d1", "u1").Return(rec, nil)

	_, err := svc.Cancel(context.Background(), "d1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelWindowClosed)
}

// --- CheckIn ---

func TestBookingService_CheckIn_Success(t *testing.T) {
	svc, m := newBookingService(t)

	now := time.Now().UTC()
	drive := plannedDrive("d1", now)
	checkedIn := &domain.AttendanceRecord{
		ID: "a1", DriveID: "d1", UserID: "u1", Role: "picker",
		Status: domain.AttendanceStatusCheckedIn, CheckedInAt: &now,
	}

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().CheckIn(mock.Anything, "d1", "qr-token", mock.Anything).
		Return(checkedIn, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "d1").Return()

	rec, err := svc.CheckIn(context.Background(), "d1", "qr-token", "admin1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusCheckedIn, rec.Status)
	assert.NotNil(t, rec.CheckedInAt)
}

func TestBookingService_CheckIn_WrongDay(t *testing.T) {
	svc, m := newBookingService(t)

	// уборка завтра, чек-ин сегодня не проходит независимо от токена
	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)

	_, err := svc.CheckIn(context.Background(), "d1", "qr-token", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotDriveDay)
}

func TestBookingService_CheckIn_TokenNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC())

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().CheckIn(mock.Anything, "d1", "foreign-token", mock.Anything).
		Return(nil, domain.ErrTokenNotFound)

	_, err := svc.CheckIn(context.Background(), "d1", "foreign-token", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestBookingService_CheckIn_ScannedTwice(t *testing.T) {
	svc, m := newBookingService(t)

	drive := plannedDrive("d1", time.Now().UTC())

	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.attendance.EXPECT().CheckIn(mock.Anything, "d1", "qr-token", mock.Anything).
		Return(nil, domain.ErrAlreadyCheckedIn)

	_, err := svc.CheckIn(context.Background(), "d1", "qr-token", "admin1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

// --- RemindUpcoming ---

func TestBookingService_RemindUpcoming_Success(t *testing.T) {
	svc, m := newBookingService(t)

	reminded := []*domain.AttendanceRecord{
		{ID: "a1", DriveID: "d1", UserID: "u1"},
		{ID: "a2", DriveID: "d1", UserID: "u2"},
	}
	user1 := volunteer("u1")
	user2 := volunteer("u2")
	drive := plannedDrive("d1", time.Now().UTC().Add(12*time.Hour))

	m.attendance.EXPECT().MarkReminded(mock.Anything, mock.Anything, mock.Anything).
		Return(reminded, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.drives.EXPECT().GetByID(mock.Anything, "d1").Return(drive, nil)
	m.notifier.EXPECT().NotifyDriveReminder(mock.Anything, user1, drive).Return()
	m.notifier.EXPECT().NotifyDriveReminder(mock.Anything, user2, drive).Return()

	result, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_RemindUpcoming_NothingDue(t *testing.T) {
	svc, m := newBookingService(t)

	m.attendance.EXPECT().MarkReminded(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	result, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_RemindUpcoming_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.attendance.EXPECT().MarkReminded(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.RemindUpcoming(context.Background())

	require.Error(t, err)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	svc, m := newBookingService(t)

	records := []*domain.AttendanceRecord{
		{ID: "a1", DriveID: "d1", UserID: "u1", Status: domain.AttendanceStatusBooked},
	}
	m.attendance.EXPECT().ListByUser(mock.Anything, "u1").Return(records, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// --- ledger semantics under contention ---

// fakeAttendanceRepo воспроизводит контракт хранилища: условный инкремент
// и запись меняются неделимо, одна строка на пару (drive, user).
type fakeAttendanceRepo struct {
	mu         sync.Mutex
	capacity   int
	booked     int
	waitlisted int
	records    map[string]*domain.AttendanceRecord
}

func newFakeAttendanceRepo(capacity int) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		capacity: capacity,
		records:  make(map[string]*domain.AttendanceRecord),
	}
}

func (f *fakeAttendanceRepo) Book(_ context.Context, rec *domain.AttendanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.records[rec.UserID]; ok && existing.Status != domain.AttendanceStatusCancelled {
		return domain.ErrAlreadyBooked
	}

	if f.booked < f.capacity {
		f.booked++
		rec.Status = domain.AttendanceStatusBooked
	} else {
		f.waitlisted++
		rec.Status = domain.AttendanceStatusWaitlisted
	}

	cp := *rec
	f.records[rec.UserID] = &cp
	return nil
}

func (f *fakeAttendanceRepo) Cancel(_ context.Context, _, userID string) (*domain.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[userID]
	if !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	switch rec.Status {
	case domain.AttendanceStatusCancelled:
		return nil, domain.ErrAttendanceCancelled
	case domain.AttendanceStatusCheckedIn:
		return nil, domain.ErrAttendanceCheckedIn
	}

	if rec.Status == domain.AttendanceStatusBooked {
		f.booked--
	} else {
		f.waitlisted--
	}
	rec.Status = domain.AttendanceStatusCancelled

	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) CheckIn(_ context.Context, _, _ string, _ time.Time) (*domain.AttendanceRecord, error) {
	return nil, domain.ErrTokenNotFound
}

func (f *fakeAttendanceRepo) GetByDriveAndUser(_ context.Context, _, userID string) (*domain.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[userID]
	if !ok {
		return nil, domain.ErrAttendanceNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) ListByDrive(_ context.Context, _ string) ([]*domain.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, _ string) ([]*domain.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) MarkReminded(_ context.Context, _, _ time.Time) ([]*domain.AttendanceRecord, error) {
	return nil, nil
}

func newContentionService(t *testing.T, fake *fakeAttendanceRepo, drive *domain.Drive) *BookingService {
	t.Helper()

	drives := mocks.NewMockDriveRepo(t)
	users := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockAttendanceNotifier(t)
	cache := mocks.NewMockDriveCache(t)

	drives.EXPECT().GetByID(mock.Anything, drive.ID).Return(drive, nil)
	users.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.User, error) {
			return volunteer(id), nil
		})
	cache.EXPECT().Invalidate(mock.Anything, drive.ID).Return()
	notifier.EXPECT().NotifySlotBooked(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyWaitlisted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return NewBookingService(fake, drives, users, notifier, cache, 24*time.Hour, newTestLogger(t))
}

func TestBookingService_Book_ConcurrentSingleSlot(t *testing.T) {
	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	drive.Roles = []domain.RoleRequirement{{Role: "picker", Capacity: 1}}

	fake := newFakeAttendanceRepo(1)
	svc := newContentionService(t, fake, drive)

	const attempts = 5
	results := make([]domain.AttendanceStatus, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := svc.Book(context.Background(), "d1", fmt.Sprintf("u%d", i), "picker")
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = rec.Status
		}(i)
	}
	wg.Wait()

	var booked, waitlisted int
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		switch results[i] {
		case domain.AttendanceStatusBooked:
			booked++
		case domain.AttendanceStatusWaitlisted:
			waitlisted++
		}
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, 4, waitlisted)
	assert.Equal(t, 1, fake.booked)
	assert.Equal(t, 4, fake.waitlisted)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_CapacityTwoThirdWaitlisted(t *testing.T) {
	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	drive.Roles = []domain.RoleRequirement{{Role: "picker", Capacity: 2}}

	fake := newFakeAttendanceRepo(2)
	svc := newContentionService(t, fake, drive)

	first, err := svc.Book(context.Background(), "d1", "u1", "picker")
	require.NoError(t, err)
	second, err := svc.Book(context.Background(), "d1", "u2", "picker")
	require.NoError(t, err)
	third, err := svc.Book(context.Background(), "d1", "u3", "picker")
	require.NoError(t, err)

	assert.Equal(t, domain.AttendanceStatusBooked, first.Status)
	assert.Equal(t, domain.AttendanceStatusBooked, second.Status)
	assert.Equal(t, domain.AttendanceStatusWaitlisted, third.Status)

	time.Sleep(100 * time.Millisecond)
}

func TestBookingService_CancelThenRebook(t *testing.T) {
	drive := plannedDrive("d1", time.Now().UTC().Add(48*time.Hour))
	drive.Roles = []domain.RoleRequirement{{Role: "picker", Capacity: 1}}

	fake := newFakeAttendanceRepo(1)
	svc := newContentionService(t, fake, drive)

	first, err := svc.Book(context.Background(), "d1", "u1", "picker")
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusBooked, first.Status)

	// повторная бронь активной записи отклоняется
	_, err = svc.Book(context.Background(), "d1", "u1", "picker")
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

	_, err = svc.Cancel(context.Background(), "d1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, fake.booked)

	// после отмены место свободно и тот же волонтёр может забронировать снова
	again, err := svc.Book(context.Background(), "d1", "u1", "picker")
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceStatusBooked, again.Status)
	assert.Equal(t, 1, fake.booked)

	time.Sleep(100 * time.Millisecond)
}
