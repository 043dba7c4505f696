package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByLoginID(ctx context.Context, loginID string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Employee, error)
}

// WorkLogRepository defines the interface for shift tracking operations
type WorkLogRepository interface {
	Create(ctx context.Context, log *entity.WorkLog) error
	// GetOpenShift returns the employee's un-clocked-out log for the given
	// date, or nil if there is none.
	GetOpenShift(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.WorkLog, error)
	Update(ctx context.Context, log *entity.WorkLog) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.WorkLog, error)
}

// TableRepository defines the interface for dining table operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	GetByNumber(ctx context.Context, tableNo int) (*entity.DiningTable, error)
	Update(ctx context.Context, table *entity.DiningTable) error
	List(ctx context.Context) ([]entity.DiningTable, error)
	// GetVacant returns vacant tables with at least the given capacity,
	// smallest first.
	GetVacant(ctx context.Context, seats int) ([]entity.DiningTable, error)
}
