package helper_util

import (
	"fmt"
	"time"
)

// ParseNullableTime accepts the shapes a graph driver hands back for a
// temporal property.
func ParseNullableTime(value any) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case time.Time:
		return &v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("unsupported type for time parsing: %T", value)
	}
}
