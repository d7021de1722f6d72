package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hibiken/asynq"
)

// GetEnvVariable trả về giá trị env hoặc default nếu rỗng
func GetEnvVariable(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseID parses a positive integer path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// UnmarshalTask decodes an asynq task payload. An empty payload leaves v untouched.
func UnmarshalTask(t *asynq.Task, v interface{}) error {
	if len(t.Payload()) == 0 {
		return nil
	}
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	return nil
}

// MarshalTask encodes a task payload
func MarshalTask(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal task payload: %w", err)
	}
	return data, nil
}

// FlexibleInt nhận cả JSON number lẫn chuỗi số ("12"), vì form HTML gửi value dạng string
type FlexibleInt struct {
	Value int64
	Set   bool
}

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = FlexibleInt{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = FlexibleInt{}
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", string(data))
	}

	*f = FlexibleInt{Value: n, Set: true}
	return nil
}

func (f FlexibleInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// Ptr returns nil when the field was absent.
func (f FlexibleInt) Ptr() *int64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// FirstNonNil returns the first non-nil pointer, used to merge canonical and legacy JSON keys.
func FirstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
