package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TableStatus represents the occupancy state of a dining table
type TableStatus int

const (
	TableStatusVacant   TableStatus = 0
	TableStatusOccupied TableStatus = 1
)

func (s TableStatus) String() string {
	return [...]string{"Vacant", "Occupied"}[s]
}

func (s TableStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TableStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TableStatus(i)
		return nil
	}
	switch str {
	case "Vacant":
		*s = TableStatusVacant
	case "Occupied":
		*s = TableStatusOccupied
	}
	return nil
}

func (s TableStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TableStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TableStatusVacant
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TableStatus(v)
	case int:
		*s = TableStatus(v)
	}
	return nil
}
