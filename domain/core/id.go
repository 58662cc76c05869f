package core

import (
	"github.com/google/uuid"
)

// ID identifies one loaded table for log correlation
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RowKey is the value of the index column for one row. Keys are kept as the
// raw text from the source and are not required to be unique.
type RowKey string

// String returns the string representation
func (k RowKey) String() string {
	return string(k)
}

// RowKeys converts raw strings into row keys, preserving order.
func RowKeys(values ...string) []RowKey {
	keys := make([]RowKey, len(values))
	for i, v := range values {
		keys[i] = RowKey(v)
	}
	return keys
}
