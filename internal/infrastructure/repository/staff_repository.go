package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
	domainRepo "github.com/tillworks/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByLoginID(ctx context.Context, loginID string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "login_id = ?", loginID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).Order("name ASC").Find(&employees).Error
	return employees, err
}

type workLogRepository struct {
	db *gorm.DB
}

// NewWorkLogRepository creates a new work log repository
func NewWorkLogRepository(db *gorm.DB) domainRepo.WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(ctx context.Context, log *entity.WorkLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *workLogRepository) GetOpenShift(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.WorkLog, error) {
	var log entity.WorkLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND work_date = ? AND time_out IS NULL",
			employeeID, date.Format("2006-01-02")).
		Order("time_in DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &log, err
}

func (r *workLogRepository) Update(ctx context.Context, log *entity.WorkLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *workLogRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.WorkLog, error) {
	var logs []entity.WorkLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("work_date DESC, time_in DESC").
		Find(&logs).Error
	return logs, err
}

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new dining table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByNumber(ctx context.Context, tableNo int) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := r.db.WithContext(ctx).First(&table, "table_no = ?", tableNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.DiningTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) List(ctx context.Context) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.db.WithContext(ctx).Order("table_no ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetVacant(ctx context.Context, seats int) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.db.WithContext(ctx).
		Where("status = ? AND seating_capacity >= ?", 0, seats).
		Order("seating_capacity ASC, table_no ASC").
		Find(&tables).Error
	return tables, err
}
