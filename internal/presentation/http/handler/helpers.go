package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetEmployeeID extracts the employee ID from the Gin context
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	employeeIDVal, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	employeeID, ok := employeeIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &employeeID
}

// GetLoginID extracts the login ID from the Gin context
func GetLoginID(c *gin.Context) string {
	loginID, exists := c.Get("login_id")
	if !exists {
		return ""
	}
	return loginID.(string)
}

// GetRole extracts the employee role from the Gin context
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the employee has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == "admin"
}
