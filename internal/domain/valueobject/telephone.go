package valueobject

import (
	"encoding/json"
	"math"
	"strconv"
)

// Telephone is a validated pair of phone number and area code.
// The number must render as exactly 8 or 9 decimal digits, the area code
// as exactly 2.
type Telephone struct {
	number   int64
	areaCode int64
}

// NewTelephone validates the raw pair. The inputs are untyped because a
// JSON body may carry them as numbers, numeric strings, or omit them
// entirely; anything that does not coerce to a number counts as absent.
func NewTelephone(number, areaCode any) (Telephone, error) {
	num, ok := toNumber(number)
	if !ok {
		return Telephone{}, newValidationError("Phone number is required")
	}
	area, ok := toNumber(areaCode)
	if !ok {
		return Telephone{}, newValidationError("Area code is required")
	}

	if !isPositiveInteger(num) {
		return Telephone{}, newValidationError("Phone number must be a positive integer")
	}
	if !isPositiveInteger(area) {
		return Telephone{}, newValidationError("Area code must be a positive integer")
	}

	n := int64(num)
	a := int64(area)

	digits := len(strconv.FormatInt(n, 10))
	if digits < 8 || digits > 9 {
		return Telephone{}, newValidationError("Phone number must have exactly 8 or 9 digits")
	}
	if len(strconv.FormatInt(a, 10)) != 2 {
		return Telephone{}, newValidationError("Area code must have exactly 2 digits")
	}

	return Telephone{number: n, areaCode: a}, nil
}

func (t Telephone) Number() int64 {
	return t.number
}

func (t Telephone) AreaCode() int64 {
	return t.areaCode
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isPositiveInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f > 0 && f == math.Trunc(f)
}
