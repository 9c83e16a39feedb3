package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewLeadID generates a collision-resistant, lexicographically sortable lead
// identifier.
func NewLeadID() string {
	return ulid.Make().String()
}

// NewEventID generates a unique ID for one analytics event record.
func NewEventID() string {
	return uuid.New().String()
}

// CoerceTravelers normalizes the traveler-count form value, which may arrive
// as a number or a string. It returns the count and whether the input was a
// usable value >= 1; anything else normalizes to 1.
func CoerceTravelers(v any) (int, bool) {
	var n int
	switch t := v.(type) {
	case nil:
		return 1, false
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		n = int(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 1, false
		}
		n = int(f)
	case string:
		trimmed := strings.TrimSpace(t)
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			f, ferr := strconv.ParseFloat(trimmed, 64)
			if ferr != nil {
				return 1, false
			}
			parsed = int(f)
		}
		n = parsed
	default:
		return 1, false
	}
	if n < 1 {
		return 1, false
	}
	return n, true
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
