package request

// CreateTableRequest represents a dining table creation request
type CreateTableRequest struct {
	TableNo         int `json:"table_no" binding:"required,min=1"`
	SeatingCapacity int `json:"seating_capacity" binding:"required,min=1"`
}

// OccupyTableRequest seats a party at a table
type OccupyTableRequest struct {
	ReceiptNo string `json:"receipt_no" binding:"omitempty,max=100"`
}
