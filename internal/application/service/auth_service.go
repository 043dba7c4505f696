package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/utils"
)

// AuthService handles terminal sign-in and shift tracking. Logging in opens
// a work log for the day; logging out closes it and records the minutes.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	workLogRepo  repository.WorkLogRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repository.EmployeeRepository,
	workLogRepo repository.WorkLogRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		workLogRepo:  workLogRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	LoginID  string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Employee    *entity.Employee
	AccessToken string
	ClockedIn   bool
}

// Login authenticates an employee, returns an access token, and clocks in a
// shift unless one is already open for today.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	employee, err := s.employeeRepo.GetByLoginID(ctx, input.LoginID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, employee.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.LoginID, employee.Role)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	today := startOfDay(now)
	clockedIn := false

	open, err := s.workLogRepo.GetOpenShift(ctx, employee.ID, today)
	if err != nil {
		return nil, err
	}
	if open == nil {
		log := &entity.WorkLog{
			EmployeeID: employee.ID,
			WorkDate:   today,
			TimeIn:     now,
		}
		if err := s.workLogRepo.Create(ctx, log); err != nil {
			return nil, err
		}
		clockedIn = true
	}

	return &LoginOutput{
		Employee:    employee,
		AccessToken: accessToken,
		ClockedIn:   clockedIn,
	}, nil
}

// Logout closes the employee's open shift for today, if any. Logging out
// without an open shift is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, employeeID uuid.UUID) error {
	now := timeNow()
	today := startOfDay(now)

	open, err := s.workLogRepo.GetOpenShift(ctx, employeeID, today)
	if err != nil {
		return err
	}
	if open == nil {
		return nil
	}

	out := now
	open.TimeOut = &out
	open.Minutes = int(now.Sub(open.TimeIn).Minutes())
	return s.workLogRepo.Update(ctx, open)
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	LoginID   string
	Password  string
	Name      string
	Role      string
	ContactNo *string
	Address   *string
}

// CreateEmployee registers a new terminal operator account.
func (s *AuthService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	existing, err := s.employeeRepo.GetByLoginID(ctx, input.LoginID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Login ID already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "cashier"
	}

	employee := &entity.Employee{
		LoginID:      input.LoginID,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         role,
		ContactNo:    input.ContactNo,
		Address:      input.Address,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *AuthService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists all employees
func (s *AuthService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// UpdateEmployeeInput represents the update employee input. Nil fields are
// left unchanged.
type UpdateEmployeeInput struct {
	Name      *string
	Role      *string
	Password  *string
	ContactNo *string
	Address   *string
}

// UpdateEmployee updates an employee's profile
func (s *AuthService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hashed
	}
	if input.ContactNo != nil {
		employee.ContactNo = input.ContactNo
	}
	if input.Address != nil {
		employee.Address = input.Address
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee removes an employee account
func (s *AuthService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListWorkLogs lists an employee's shift history
func (s *AuthService) ListWorkLogs(ctx context.Context, employeeID uuid.UUID) ([]entity.WorkLog, error) {
	return s.workLogRepo.ListByEmployee(ctx, employeeID)
}
