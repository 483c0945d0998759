package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrMissingID is returned when a request names no record id.
var ErrMissingID = errors.New("missing id")

// ParseID parses a positive record id.
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingID
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// QueryID returns the ?id= parameter. ok is false when the parameter is absent.
func QueryID(r *http.Request) (id int64, ok bool, err error) {
	if !r.URL.Query().Has("id") {
		return 0, false, nil
	}
	id, err = ParseID(r.URL.Query().Get("id"))
	return id, true, err
}

// FlexibleID accepts a JSON number or a numeric string, as sent by browser forms.
type FlexibleID int64

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n = json.Number(s)
	} else if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number")
	}
	if n == "" {
		*f = 0
		return nil
	}
	id, err := ParseID(n.String())
	if err != nil {
		return err
	}
	*f = FlexibleID(id)
	return nil
}
