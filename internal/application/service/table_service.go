package service

import (
	"context"

	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
)

// TableService manages the dining floor: seating parties and freeing tables.
type TableService struct {
	tableRepo repository.TableRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// CreateTable registers a new dining table
func (s *TableService) CreateTable(ctx context.Context, tableNo, seatingCapacity int) (*entity.DiningTable, error) {
	if tableNo <= 0 {
		return nil, apperror.NewUnprocessableError("Table number must be positive")
	}
	if seatingCapacity <= 0 {
		return nil, apperror.NewUnprocessableError("Seating capacity must be positive")
	}

	existing, err := s.tableRepo.GetByNumber(ctx, tableNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Table already exists")
	}

	table := &entity.DiningTable{
		TableNo:         tableNo,
		SeatingCapacity: seatingCapacity,
		Status:          enum.TableStatusVacant,
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// ListTables lists all dining tables
func (s *TableService) ListTables(ctx context.Context) ([]entity.DiningTable, error) {
	return s.tableRepo.List(ctx)
}

// FindVacant returns vacant tables that seat at least the given party size,
// smallest table first.
func (s *TableService) FindVacant(ctx context.Context, seats int) ([]entity.DiningTable, error) {
	if seats <= 0 {
		return nil, apperror.NewUnprocessableError("Party size must be positive")
	}
	return s.tableRepo.GetVacant(ctx, seats)
}

// OccupyTable marks a table as serving an order. Occupying an already
// occupied table is a conflict.
func (s *TableService) OccupyTable(ctx context.Context, tableNo int, receiptNo string) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByNumber(ctx, tableNo)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	if table.Status == enum.TableStatusOccupied {
		return nil, apperror.NewConflictError("Table is already occupied")
	}

	table.Status = enum.TableStatusOccupied
	if receiptNo != "" {
		table.CurrentReceiptNo = &receiptNo
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

// FreeTable marks a table vacant. Freeing a vacant table is a no-op.
func (s *TableService) FreeTable(ctx context.Context, tableNo int) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByNumber(ctx, tableNo)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	table.Status = enum.TableStatusVacant
	table.CurrentReceiptNo = nil

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}
