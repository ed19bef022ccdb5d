package utils

import "errors"

// ErrInvalidEnum is returned when a value is outside its allowed set.
var ErrInvalidEnum = errors.New("value not in allowed set")

// EnumValidator builds an ent field validator restricting a string field
// to the given values.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return ErrInvalidEnum
	}
}
