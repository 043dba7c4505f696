package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/pos-api/internal/domain/enum"
)

func TestCreateTable(t *testing.T) {
	service := NewTableService(newFakeTableRepo())

	table, err := service.CreateTable(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, enum.TableStatusVacant, table.Status)

	_, err = service.CreateTable(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = service.CreateTable(context.Background(), 0, 4)
	assert.Error(t, err)

	_, err = service.CreateTable(context.Background(), 2, 0)
	assert.Error(t, err)
}

func TestOccupyAndFreeTable(t *testing.T) {
	repo := newFakeTableRepo()
	service := NewTableService(repo)

	_, err := service.CreateTable(context.Background(), 4, 4)
	require.NoError(t, err)

	table, err := service.OccupyTable(context.Background(), 4, "R20250315183000-AAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, enum.TableStatusOccupied, table.Status)
	require.NotNil(t, table.CurrentReceiptNo)
	assert.Equal(t, "R20250315183000-AAAAAAAA", *table.CurrentReceiptNo)

	// Seating a second party at the same table is a conflict.
	_, err = service.OccupyTable(context.Background(), 4, "R20250315190000-BBBBBBBB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already occupied")

	freed, err := service.FreeTable(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, enum.TableStatusVacant, freed.Status)
	assert.Nil(t, freed.CurrentReceiptNo)

	// Freeing a vacant table is a no-op, not an error.
	_, err = service.FreeTable(context.Background(), 4)
	assert.NoError(t, err)

	_, err = service.OccupyTable(context.Background(), 99, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindVacant(t *testing.T) {
	repo := newFakeTableRepo()
	service := NewTableService(repo)

	for tableNo, seats := range map[int]int{1: 2, 2: 4, 3: 6} {
		_, err := service.CreateTable(context.Background(), tableNo, seats)
		require.NoError(t, err)
	}
	_, err := service.OccupyTable(context.Background(), 2, "")
	require.NoError(t, err)

	vacant, err := service.FindVacant(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, vacant, 1)
	assert.Equal(t, 3, vacant[0].TableNo)

	_, err = service.FindVacant(context.Background(), 0)
	assert.Error(t, err)
}
