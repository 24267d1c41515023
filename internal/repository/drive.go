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

type DriveRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDriveRepo(db *dbpg.DB) *DriveRepository {
	return &DriveRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *DriveRepository) Create(ctx context.Context, d *domain.Drive) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	driveQuery := `INSERT INTO drives (id, title, description, location, drive_date, status, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, driveQuery,
		d.ID, d.Title, d.Description, d.Location, d.Date, d.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert drive: %w", err)
	}

	roleQuery := `INSERT INTO drive_roles (drive_id, role, capacity, booked, waitlisted)
				  VALUES ($1, $2, $3, 0, 0)`
	for _, req := range d.Roles {
		if _, err = tx.ExecContext(ctx, roleQuery, d.ID, req.Role, req.Capacity); err != nil {
			return fmt.Errorf("insert drive role %q: %w", req.Role, err)
		}
	}

	return tx.Commit()
}

func (r *DriveRepository) GetByID(ctx context.Context, id string) (*domain.Drive, error) {
	query := `SELECT id, title, description, location, drive_date, status, created_at, updated_at
			  FROM drives
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get drive: %w", err)
	}

	var d domain.Drive
	if err = row.Scan(
		&d.ID, &d.Title, &d.Description, &d.Location,
		&d.Date, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDriveNotFound
		}
		return nil, fmt.Errorf("scan drive: %w", err)
	}

	if d.Roles, err = r.rolesFor(ctx, d.ID); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DriveRepository) List(ctx context.Context) ([]*domain.Drive, error) {
	query := `SELECT id, title, description, location, drive_date, status, created_at, updated_at
			  FROM drives
			  ORDER BY drive_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}
	defer rows.Close()

	var res []*domain.Drive
	var ids []string
	for rows.Next() {
		var d domain.Drive
		if err = rows.Scan(
			&d.ID, &d.Title, &d.Description, &d.Location,
			&d.Date, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan drive: %w", err)
		}
		res = append(res, &d)
		ids = append(ids, d.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}

	// одним запросом подтягиваем счётчики для всех уборок
	roleQuery := `SELECT drive_id, role, capacity, booked, waitlisted
				  FROM drive_roles
				  WHERE drive_id = ANY($1)
				  ORDER BY role`
	roleRows, err := r.db.QueryWithRetry(ctx, r.strategy, roleQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list drive roles: %w", err)
	}
	defer roleRows.Close()

	byID := make(map[string]*domain.Drive, len(res))
	for _, d := range res {
		byID[d.ID] = d
	}
	for roleRows.Next() {
		var driveID string
		var req domain.RoleRequirement
		if err = roleRows.Scan(&driveID, &req.Role, &req.Capacity, &req.Booked, &req.Waitlisted); err != nil {
			return nil, fmt.Errorf("scan drive role: %w", err)
		}
		if d, ok := byID[driveID]; ok {
			d.Roles = append(d.Roles, req)
		}
	}

	return res, roleRows.Err()
}

func (r *DriveRepository) rolesFor(ctx context.Context, driveID string) ([]domain.RoleRequirement, error) {
	query := `SELECT role, capacity, booked, waitlisted
			  FROM drive_roles
			  WHERE drive_id=$1
			  ORDER BY role`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("get drive roles: %w", err)
	}
	defer rows.Close()

	var res []domain.RoleRequirement
	for rows.Next() {
		var req domain.RoleRequirement
		if err = rows.Scan(&req.Role, &req.Capacity, &req.Booked, &req.Waitlisted); err != nil {
			return nil, fmt.Errorf("scan drive role: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}
