package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/request"
	"github.com/tillworks/pos-api/internal/presentation/http/dto/response"
	"github.com/tillworks/pos-api/pkg/utils"
)

// AuthHandler handles authentication and staff HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles employee sign-in
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"employee":     output.Employee,
		"access_token": output.AccessToken,
		"clocked_in":   output.ClockedIn,
	})
}

// Logout handles employee sign-out and clock-out
func (h *AuthHandler) Logout(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), *employeeID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logout successful", nil)
}

// Me returns the authenticated employee's profile
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	employee, err := h.authService.GetEmployee(c.Request.Context(), *employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// CreateEmployee handles registering a new employee (admin only)
func (h *AuthHandler) CreateEmployee(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employee, err := h.authService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		LoginID:   req.LoginID,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		ContactNo: req.ContactNo,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// ListEmployees handles listing all employees
func (h *AuthHandler) ListEmployees(c *gin.Context) {
	employees, err := h.authService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employees retrieved successfully", employees)
}

// GetEmployee handles retrieving one employee
func (h *AuthHandler) GetEmployee(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.authService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// UpdateEmployee handles updating an employee
func (h *AuthHandler) UpdateEmployee(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employee, err := h.authService.UpdateEmployee(c.Request.Context(), id, &service.UpdateEmployeeInput{
		Name:      req.Name,
		Role:      req.Role,
		Password:  req.Password,
		ContactNo: req.ContactNo,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// DeleteEmployee handles removing an employee
func (h *AuthHandler) DeleteEmployee(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.authService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListWorkLogs handles listing an employee's shift history
func (h *AuthHandler) ListWorkLogs(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	logs, err := h.authService.ListWorkLogs(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Work logs retrieved successfully", logs)
}
