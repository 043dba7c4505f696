package request

// LoginRequest represents a login request
type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	LoginID   string  `json:"login_id" binding:"required,min=2,max=100"`
	Password  string  `json:"password" binding:"required,min=6"`
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	Role      string  `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	ContactNo *string `json:"contact_no"`
	Address   *string `json:"address"`
}

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	ContactNo *string `json:"contact_no"`
	Address   *string `json:"address"`
}
