package cas

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the sql.Scanner interface for reading from the database.
// Stored text goes through Parse, so a corrupt column value is reported
// as an *InvalidNumberError rather than silently accepted.
func (n *Number) Scan(value interface{}) error {
	if value == nil {
		*n = Number{}
		return nil
	}

	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("cas.Number: unsupported scan type %T", value)
	}

	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Value implements the driver.Valuer interface for writing to the database.
// The zero Number is written as NULL.
func (n Number) Value() (driver.Value, error) {
	if n.IsZero() {
		return nil, nil
	}
	return n.text, nil
}

// GormDataType returns the GORM data type hint. Canonical text never
// exceeds MaxLength bytes, and the column's byte ordering matches Compare.
func (Number) GormDataType() string {
	return fmt.Sprintf("varchar(%d)", MaxLength)
}
