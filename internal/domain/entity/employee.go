package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a terminal operator account. Passwords are bcrypt hashes;
// the hash never leaves the service layer.
type Employee struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	LoginID      string         `gorm:"size:100;uniqueIndex;not null" json:"login_id"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Role         string         `gorm:"size:50;default:'cashier'" json:"role"`
	ContactNo    *string        `gorm:"size:50" json:"contact_no,omitempty"`
	Address      *string        `gorm:"size:255" json:"address,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// WorkLog records one clock-in/clock-out pair per employee per day.
// An open shift has a nil TimeOut.
type WorkLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	WorkDate   time.Time  `gorm:"type:date;not null;index" json:"work_date"`
	TimeIn     time.Time  `gorm:"not null" json:"time_in"`
	TimeOut    *time.Time `json:"time_out,omitempty"`
	Minutes    int        `gorm:"default:0" json:"minutes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new work log
func (w *WorkLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkLog model
func (WorkLog) TableName() string {
	return "work_logs"
}

// IsOpen reports whether the shift has not been clocked out yet.
func (w *WorkLog) IsOpen() bool {
	return w.TimeOut == nil
}
