package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Book атомарно занимает место и создаёт запись посещения в одной транзакции.
// Сначала условный инкремент booked (только пока booked < capacity), при промахе —
// условный инкремент waitlisted. Никакого read-then-write: ровно capacity
// конкурентных запросов получат booked. Откат транзакции гарантирует, что
// инкремент без записи (и наоборот) невозможен.
func (r *AttendanceRepository) Book(ctx context.Context, rec *domain.AttendanceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookQuery := `UPDATE drive_roles dr
				  SET booked = dr.booked + 1
				  FROM drives d
				  WHERE d.id = dr.drive_id
				    AND dr.drive_id = $1
				    AND dr.role = $2
				    AND dr.booked < dr.capacity
				    AND d.status = $3
				    AND d.drive_date > now()`
	res, err := tx.ExecContext(ctx, bookQuery, rec.DriveID, rec.Role, domain.DriveStatusPlanned)
	if err != nil {
		return fmt.Errorf("claim slot: %w", err)
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim rows affected: %w", err)
	}

	if claimed == 1 {
		rec.Status = domain.AttendanceStatusBooked
	} else {
		waitlistQuery := `UPDATE drive_roles dr
						  SET waitlisted = dr.waitlisted + 1
						  FROM drives d
						  WHERE d.id = dr.drive_id
						    AND dr.drive_id = $1
						    AND dr.role = $2
						    AND d.status = $3
						    AND d.drive_date > now()`
		res, err = tx.ExecContext(ctx, waitlistQuery, rec.DriveID, rec.Role, domain.DriveStatusPlanned)
		if err != nil {
			return fmt.Errorf("claim waitlist slot: %w", err)
		}
		waitlisted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("waitlist rows affected: %w", err)
		}
		if waitlisted == 0 {
			// оба инкремента промахнулись — читаем уборку только ради
			// точной причины, на корректность это чтение не влияет
			return r.classifyBookFailure(ctx, tx, rec.DriveID, rec.Role)
		}
		rec.Status = domain.AttendanceStatusWaitlisted
	}

	// одна запись на пару (drive, user) навсегда: отменённая строка
	// оживает с новым токеном, активная строка даёт конфликт
	insertQuery := `INSERT INTO attendance (id, drive_id, user_id, role, qr_token, status, reminder_sent, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, false, now(), now())
					ON CONFLICT (drive_id, user_id) DO UPDATE
					SET role = EXCLUDED.role,
					    qr_token = EXCLUDED.qr_token,
					    status = EXCLUDED.status,
					    checked_in_at = NULL,
					    reminder_sent = false,
					    updated_at = now()
					WHERE attendance.status = $7
					RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(
		ctx, insertQuery,
		rec.ID, rec.DriveID, rec.UserID, rec.Role, rec.QRToken, rec.Status,
		domain.AttendanceStatusCancelled,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// запись уже существует и не отменена
			return domain.ErrAlreadyBooked
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert attendance: %w", err)
	}

	return tx.Commit()
}

func (r *AttendanceRepository) classifyBookFailure(ctx context.Context, tx *sql.Tx, driveID, role string) error {
	query := `SELECT d.status, d.drive_date, dr.role IS NOT NULL
			  FROM drives d
			  LEFT JOIN drive_roles dr ON dr.drive_id = d.id AND dr.role = $2
			  WHERE d.id = $1`
	var status domain.DriveStatus
	var driveDate time.Time
	var roleDeclared bool
	err := tx.QueryRowContext(ctx, query, driveID, role).Scan(&status, &driveDate, &roleDeclared)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDriveNotFound
		}
		return fmt.Errorf("classify booking failure: %w", err)
	}
	if !roleDeclared {
		return domain.ErrUnknownRole
	}
	return domain.ErrDriveNotBookable
}

// Cancel снимает бронь: под блокировкой строки проверяет статус, уменьшает
// соответствующий счётчик и помечает запись отменённой — всё в одной транзакции,
// чтобы счётчики никогда не разошлись с записями.
func (r *AttendanceRepository) Cancel(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `SELECT id, drive_id, user_id, role, qr_token, status, checked_in_at, created_at, updated_at
					FROM attendance
					WHERE drive_id=$1 AND user_id=$2
					FOR UPDATE`
	var rec domain.AttendanceRecord
	err = tx.QueryRowContext(ctx, selectQuery, driveID, userID).Scan(
		&rec.ID, &rec.DriveID, &rec.UserID, &rec.Role, &rec.QRToken,
		&rec.Status, &rec.CheckedInAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("lock attendance: %w", err)
	}

	switch rec.Status {
	case domain.AttendanceStatusCancelled:
		return nil, domain.ErrAttendanceCancelled
	case domain.AttendanceStatusCheckedIn:
		return nil, domain.ErrAttendanceCheckedIn
	}

	counter := "booked"
	if rec.Status == domain.AttendanceStatusWaitlisted {
		counter = "waitlisted"
	}
	releaseQuery := fmt.Sprintf(`UPDATE drive_roles
								 SET %s = %s - 1
								 WHERE drive_id=$1 AND role=$2`, counter, counter)
	if _, err = tx.ExecContext(ctx, releaseQuery, rec.DriveID, rec.Role); err != nil {
		return nil, fmt.Errorf("release slot: %w", err)
	}

	updateQuery := `UPDATE attendance
					SET status=$2, updated_at=now()
					WHERE id=$1
					RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, updateQuery, rec.ID, domain.AttendanceStatusCancelled).Scan(&rec.UpdatedAt); err != nil {
		return nil, fmt.Errorf("cancel attendance: %w", err)
	}
	rec.Status = domain.AttendanceStatusCancelled

	return &rec, tx.Commit()
}

// CheckIn гасит QR-токен одним условным UPDATE; при нуле строк отдельным чтением
// определяем причину отказа.
func (r *AttendanceRepository) CheckIn(ctx context.Context, driveID, qrToken string, now time.Time) (*domain.AttendanceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `UPDATE attendance
					SET status=$4, checked_in_at=$3, updated_at=$3
					WHERE drive_id=$1 AND qr_token=$2 AND status = ANY($5)
					RETURNING id, drive_id, user_id, role, qr_token, status, checked_in_at, created_at, updated_at`
	var rec domain.AttendanceRecord
	err = tx.QueryRowContext(
		ctx, updateQuery,
		driveID, qrToken, now, domain.AttendanceStatusCheckedIn,
		pq.Array(domain.ActiveAttendanceStatuses),
	).Scan(
		&rec.ID, &rec.DriveID, &rec.UserID, &rec.Role, &rec.QRToken,
		&rec.Status, &rec.CheckedInAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == nil {
		return &rec, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check in: %w", err)
	}

	// определяем причину: токен не той уборки, повторный скан или отмена
	var status domain.AttendanceStatus
	checkQuery := `SELECT status FROM attendance WHERE drive_id=$1 AND qr_token=$2`
	if err = tx.QueryRowContext(ctx, checkQuery, driveID, qrToken).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("classify check-in failure: %w", err)
	}
	if status == domain.AttendanceStatusCheckedIn {
		return nil, domain.ErrAlreadyCheckedIn
	}
	return nil, domain.ErrAttendanceCancelled
}

func (r *AttendanceRepository) GetByDriveAndUser(ctx context.Context, driveID, userID string) (*domain.AttendanceRecord, error) {
	query := `SELECT id, drive_id, user_id, role, qr_token, status, checked_in_at, created_at, updated_at
			  FROM attendance
			  WHERE drive_id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, driveID, userID)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	var rec domain.AttendanceRecord
	if err = row.Scan(
		&rec.ID, &rec.DriveID, &rec.UserID, &rec.Role, &rec.QRToken,
		&rec.Status, &rec.CheckedInAt, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("scan attendance: %w", err)
	}

	return &rec, nil
}

func (r *AttendanceRepository) ListByDrive(ctx context.Context, driveID string) ([]*domain.AttendanceRecord, error) {
	query := `SELECT id, drive_id, user_id, role, qr_token, status, checked_in_at, created_at, updated_at
			  FROM attendance
			  WHERE drive_id=$1 AND status = ANY($2)
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, driveID, pq.Array(domain.ActiveAttendanceStatuses))
	if err != nil {
		return nil, fmt.Errorf("list attendance by drive: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	query := `SELECT id, drive_id, user_id, role, qr_token, status, checked_in_at, created_at, updated_at
			  FROM attendance
			  WHERE user_id=$1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by user: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

// MarkReminded помечает активные записи уборок, начинающихся в окне [from, to),
// и возвращает их для рассылки напоминаний.
func (r *AttendanceRepository) MarkReminded(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	query := `UPDATE attendance a
			  SET reminder_sent = true, updated_at = now()
			  FROM drives d
			  WHERE d.id = a.drive_id
			    AND a.reminder_sent = false
			    AND a.status = ANY($3)
			    AND d.status = $4
			    AND d.drive_date >= $1 AND d.drive_date < $2
			  RETURNING a.id, a.drive_id, a.user_id, a.role, a.qr_token, a.status, a.checked_in_at, a.created_at, a.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		from, to, pq.Array(domain.ActiveAttendanceStatuses), domain.DriveStatusPlanned,
	)
	if err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}
	defer rows.Close()

	return scanAttendance(rows)
}

func scanAttendance(rows *sql.Rows) ([]*domain.AttendanceRecord, error) {
	var res []*domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.DriveID, &rec.UserID, &rec.Role, &rec.QRToken,
			&rec.Status, &rec.CheckedInAt, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, &rec)
	}
	return res, rows.Err()
}
