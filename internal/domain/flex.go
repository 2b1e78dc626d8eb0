package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat accepts JSON numbers that may arrive as raw numbers, numeric
// strings, blanks, or null. Anything unparseable coerces to 0 instead of
// failing the decode, matching how the intake form treats its inputs.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(coerceNumber(data))
	return nil
}

// Float64 returns the coerced value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt decodes like FlexFloat and truncates toward zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt(coerceNumber(data))
	return nil
}

// Int returns the coerced value.
func (i FlexInt) Int() int {
	return int(i)
}

func coerceNumber(data []byte) float64 {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return 0
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return v
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0
	}
	return v
}
