package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// listSeparator is the storage-edge encoding for StringList columns. In
// memory the value is always an ordered slice; the joined form exists only
// in the database.
const listSeparator = ", "

// StringList is an ordered list of strings persisted as a single delimited
// text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	return strings.Join(l, listSeparator), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported StringList source %T", src)
	}

	*l = ParseStringList(raw)
	return nil
}

// ParseStringList splits a delimited column value back into its elements,
// dropping empty entries.
func ParseStringList(raw string) StringList {
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Normalize trims each element and drops blanks while preserving order.
// Elements containing the delimiter are split into separate entries, so a
// normalized list always survives the Value/Scan round trip unchanged.
func (l StringList) Normalize() StringList {
	out := make(StringList, 0, len(l))
	for _, item := range l {
		out = append(out, ParseStringList(item)...)
	}
	return out
}

// GormDataType tells GORM to store the list as text.
func (StringList) GormDataType() string {
	return "text"
}
