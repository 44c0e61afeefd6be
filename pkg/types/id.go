package types

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidID возвращается, когда значение не удаётся привести к числовому ID
var ErrInvalidID = errors.New("invalid numeric id")

// NumericID is an identifier that external APIs deliver inconsistently:
// as a JSON number, a numeric string, or null. All id comparisons in the
// core go through this type so that "5" and 5 always match.
type NumericID int64

// ParseNumericID приводит произвольное значение к NumericID.
// Поддерживает int64, int, float64, string и *варианты. nil и пустая строка
// дают невалидный (нулевой) ID без ошибки - отсутствие ссылки это норма.
func ParseNumericID(v interface{}) (NumericID, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case NumericID:
		return val, nil
	case int64:
		return NumericID(val), nil
	case int:
		return NumericID(val), nil
	case float64:
		return NumericID(int64(val)), nil
	case string:
		if val == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidID, val)
		}
		return NumericID(n), nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, v)
	}
}

// IsZero returns true if the id carries no reference.
func (id NumericID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw value.
func (id NumericID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation.
func (id NumericID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON принимает число, числовую строку или null
func (id *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	// Строковый вариант: "123"
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	if len(data) == 0 {
		*id = 0
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}

	*id = NumericID(n)
	return nil
}

// MarshalJSON сериализует ID как число
func (id NumericID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}
