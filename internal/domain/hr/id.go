package hr

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an upstream record identifier. The REST API is inconsistent about
// foreign keys: depending on the endpoint the same employee id arrives as a
// JSON number or a JSON string. ID keeps the raw text and compares values
// after normalizing both sides, so "1" and 1 are the same identity.
type ID string

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id carries no value.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Key returns the normalized form, suitable for map keys.
func (id ID) Key() string {
	return id.canonical()
}

// canonical strips surrounding whitespace and, for numeric ids, leading
// zeros so "007" and 7 compare equal.
func (id ID) canonical() string {
	s := strings.TrimSpace(string(id))
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return strconv.FormatUint(n, 10)
	}
	return s
}

// Equal compares two ids after normalization. Two zero ids are never
// considered equal: an absent foreign key must not match anything.
func (id ID) Equal(other ID) bool {
	if id.IsZero() || other.IsZero() {
		return false
	}
	return id.canonical() == other.canonical()
}

// UnmarshalJSON accepts a string, a number, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always emits the string form so downstream consumers get a
// single representation regardless of what the upstream sent.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
