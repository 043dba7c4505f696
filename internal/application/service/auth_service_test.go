package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/utils"
)

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[uuid.UUID]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[uuid.UUID]*entity.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	copied := *employee
	f.employees[employee.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if employee, ok := f.employees[id]; ok {
		copied := *employee
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByLoginID(_ context.Context, loginID string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, employee := range f.employees {
		if employee.LoginID == loginID {
			copied := *employee
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, employee *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *employee
	f.employees[employee.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Employee
	for _, employee := range f.employees {
		out = append(out, *employee)
	}
	return out, nil
}

type fakeWorkLogRepo struct {
	mu   sync.Mutex
	logs []*entity.WorkLog
}

func newFakeWorkLogRepo() *fakeWorkLogRepo {
	return &fakeWorkLogRepo{}
}

func (f *fakeWorkLogRepo) Create(_ context.Context, log *entity.WorkLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	copied := *log
	f.logs = append(f.logs, &copied)
	return nil
}

func (f *fakeWorkLogRepo) GetOpenShift(_ context.Context, employeeID uuid.UUID, date time.Time) (*entity.WorkLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, log := range f.logs {
		if log.EmployeeID == employeeID && log.WorkDate.Equal(date) && log.TimeOut == nil {
			copied := *log
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkLogRepo) Update(_ context.Context, log *entity.WorkLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.logs {
		if existing.ID == log.ID {
			copied := *log
			f.logs[i] = &copied
			return nil
		}
	}
	return nil
}

func (f *fakeWorkLogRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]entity.WorkLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.WorkLog
	for _, log := range f.logs {
		if log.EmployeeID == employeeID {
			out = append(out, *log)
		}
	}
	return out, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeEmployeeRepo, *fakeWorkLogRepo) {
	t.Helper()
	employeeRepo := newFakeEmployeeRepo()
	workLogRepo := newFakeWorkLogRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(employeeRepo, workLogRepo, jwtManager), employeeRepo, workLogRepo
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, loginID, password, role string) *entity.Employee {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	employee := &entity.Employee{
		LoginID:      loginID,
		PasswordHash: hash,
		Name:         "Test Operator",
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), employee))
	return employee
}

func TestLogin(t *testing.T) {
	service, employeeRepo, workLogRepo := newAuthFixture(t)
	seedEmployee(t, employeeRepo, "cashier1", "secret123", "cashier")

	at := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	pinClock(t, at)

	out, err := service.Login(context.Background(), &LoginInput{LoginID: "cashier1", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.True(t, out.ClockedIn)

	logs, err := workLogRepo.ListByEmployee(context.Background(), out.Employee.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, at.Truncate(24*time.Hour), logs[0].WorkDate)
	assert.Nil(t, logs[0].TimeOut)

	// A second login the same day does not open a second shift.
	again, err := service.Login(context.Background(), &LoginInput{LoginID: "cashier1", Password: "secret123"})
	require.NoError(t, err)
	assert.False(t, again.ClockedIn)

	logs, err = workLogRepo.ListByEmployee(context.Background(), out.Employee.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestLoginBadCredentials(t *testing.T) {
	service, employeeRepo, _ := newAuthFixture(t)
	seedEmployee(t, employeeRepo, "cashier1", "secret123", "cashier")

	_, err := service.Login(context.Background(), &LoginInput{LoginID: "cashier1", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &LoginInput{LoginID: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLogoutClosesShift(t *testing.T) {
	service, employeeRepo, workLogRepo := newAuthFixture(t)
	employee := seedEmployee(t, employeeRepo, "cashier1", "secret123", "cashier")

	loginAt := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	pinClock(t, loginAt)
	_, err := service.Login(context.Background(), &LoginInput{LoginID: "cashier1", Password: "secret123"})
	require.NoError(t, err)

	pinClock(t, loginAt.Add(7*time.Hour+30*time.Minute))
	require.NoError(t, service.Logout(context.Background(), employee.ID))

	logs, err := workLogRepo.ListByEmployee(context.Background(), employee.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].TimeOut)
	assert.Equal(t, 450, logs[0].Minutes)

	// Logging out again is a no-op.
	assert.NoError(t, service.Logout(context.Background(), employee.ID))
}

func TestCreateEmployee(t *testing.T) {
	service, _, _ := newAuthFixture(t)

	employee, err := service.CreateEmployee(context.Background(), &CreateEmployeeInput{
		LoginID:  "newhire",
		Password: "secret123",
		Name:     "New Hire",
	})
	require.NoError(t, err)
	assert.Equal(t, "cashier", employee.Role) // default role
	assert.NotEqual(t, "secret123", employee.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", employee.PasswordHash))

	_, err = service.CreateEmployee(context.Background(), &CreateEmployeeInput{
		LoginID:  "newhire",
		Password: "other",
		Name:     "Duplicate",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestUpdateEmployeePatchesOnlyGivenFields(t *testing.T) {
	service, employeeRepo, _ := newAuthFixture(t)
	employee := seedEmployee(t, employeeRepo, "cashier1", "secret123", "cashier")

	role := "manager"
	updated, err := service.UpdateEmployee(context.Background(), employee.ID, &UpdateEmployeeInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "manager", updated.Role)
	assert.Equal(t, "Test Operator", updated.Name)
	assert.True(t, utils.CheckPasswordHash("secret123", updated.PasswordHash))
}

func TestLoginWorkDateIsLocalCalendarDay(t *testing.T) {
	service, employeeRepo, workLogRepo := newAuthFixture(t)
	seedEmployee(t, employeeRepo, "cashier1", "secret123", "cashier")

	// Just past midnight east of Greenwich: in UTC it is still the 15th,
	// but the shift belongs to the 16th on the terminal's calendar.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	pinClock(t, time.Date(2025, 3, 16, 1, 0, 0, 0, tokyo))

	out, err := service.Login(context.Background(), &LoginInput{LoginID: "cashier1", Password: "secret123"})
	require.NoError(t, err)
	require.True(t, out.ClockedIn)

	logs, err := workLogRepo.ListByEmployee(context.Background(), out.Employee.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	y, m, d := logs[0].WorkDate.Date()
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 16, d)

	// Logout on the same local day closes that shift.
	pinClock(t, time.Date(2025, 3, 16, 9, 0, 0, 0, tokyo))
	require.NoError(t, service.Logout(context.Background(), out.Employee.ID))
	logs, err = workLogRepo.ListByEmployee(context.Background(), out.Employee.ID)
	require.NoError(t, err)
	require.NotNil(t, logs[0].TimeOut)
	assert.Equal(t, 480, logs[0].Minutes)
}
