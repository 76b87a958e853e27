package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire layouts for timestamps, tried in order. The API emits millisecond
// precision; whole seconds are accepted as a fallback. Both are UTC
// regardless of the local timezone.
const (
	timeLayoutFrac  = "2006-01-02T15:04:05.000Z"
	timeLayoutWhole = "2006-01-02T15:04:05Z"
)

// APITime is a timestamp in the API's wire format. A string matching neither
// accepted layout fails the decode of the containing value.
type APITime struct {
	time.Time
}

// NewAPITime wraps t, normalized to UTC.
func NewAPITime(t time.Time) APITime {
	return APITime{Time: t.UTC()}
}

func (t *APITime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{timeLayoutFrac, timeLayoutWhole} {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot decode timestamp %q", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(timeLayoutFrac))
}
