package sweep

import (
	"github.com/tidwall/gjson"
)

const (
	fallbackID = "1"
	fallbackWA = "+6281234567890"
)

// firstItem returns data[0] of a {"data": [...]} body, or an empty result
// when the body is not an object or the list is missing or empty.
func firstItem(body []byte) gjson.Result {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}
	}
	data := root.Get("data")
	if !data.IsArray() {
		return gjson.Result{}
	}
	return data.Get("0")
}

// field returns the first usable value among paths. Null, empty strings,
// false and zero count as absent. Numbers and strings are both accepted.
func field(item gjson.Result, paths ...string) string {
	if !item.Exists() {
		return ""
	}
	for _, p := range paths {
		v := item.Get(p)
		switch v.Type {
		case gjson.String:
			if v.Str != "" {
				return v.Str
			}
		case gjson.Number:
			if v.Num != 0 {
				return v.Raw
			}
		}
	}
	return ""
}

// orFallback substitutes fallback for a missing value and returns the note
// that marks the record.
func orFallback(value, fallback, name string) (string, string) {
	if value != "" {
		return value, ""
	}
	return fallback, "Fallback " + name + " used"
}
