// File: /models/types.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OpeningHours maps a weekday key ("monday".."sunday") to a free-text hours
// string. A missing key means the place is closed that day.
type OpeningHours map[string]string

// Value implements driver.Valuer interface for database storage
func (oh OpeningHours) Value() (driver.Value, error) {
	if oh == nil {
		return nil, nil
	}
	return json.Marshal(oh)
}

// Scan implements sql.Scanner interface for database retrieval
func (oh *OpeningHours) Scan(value interface{}) error {
	if value == nil {
		*oh = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, oh)
	case string:
		return json.Unmarshal([]byte(v), oh)
	default:
		return fmt.Errorf("cannot scan %T into OpeningHours", value)
	}
}

// GormDataType returns the data type for GORM
func (OpeningHours) GormDataType() string {
	return "jsonb"
}

// MarshalJSON implements json.Marshaler interface
func (oh OpeningHours) MarshalJSON() ([]byte, error) {
	if oh == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(oh))
}
