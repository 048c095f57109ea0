// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps standards like [strconv] to provide fault-tolerant conversions
(e.g., returning 0 instead of an error when parsing fails). This is useful
when reading loosely-typed widget configuration and client-supplied names.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// SuffixInt strips prefix from s and parses the remainder as an integer.
// It returns 0 when the remainder is not a number.
//
// Example:
//
//	convert.SuffixInt("cmp12", "cmp") // 12
func SuffixInt(s, prefix string) int {
	return ToInt(strings.TrimPrefix(s, prefix))
}

// ToString renders a loosely-typed config value as a string.
// It returns "" for nil and for values that are not strings, numbers or [fmt.Stringer].
func ToString(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case fmt.Stringer:
		return typed.String()
	default:
		return ""
	}
}

// ToBool reads a loosely-typed config flag. Strings are parsed with
// [strconv.ParseBool]; anything else that is not a bool yields false.
func ToBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		v, _ := strconv.ParseBool(typed)
		return v
	default:
		return false
	}
}
