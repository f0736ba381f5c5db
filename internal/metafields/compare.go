package metafields

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StoredValue is a previously fetched attribute, key and value only.
type StoredValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Equal reports whether the desired attributes already match what the
// platform stores, so redundant writes can be skipped. Any desired key
// missing from current, or any value mismatch, fails equality. An empty
// desired list is vacuously equal.
func Equal(desired []Metafield, current []StoredValue) bool {
	if len(desired) == 0 {
		return true
	}
	currentByKey := make(map[string]string, len(current))
	for _, m := range current {
		currentByKey[m.Key] = m.Value
	}
	for _, m := range desired {
		stored, ok := currentByKey[m.Key]
		if !ok {
			return false
		}
		if normalizeValue(m.Value, m.Type) != normalizeValue(stored, m.Type) {
			return false
		}
	}
	return true
}

// normalizeValue puts a metafield value in canonical form for
// comparison: numeric values compare as parsed floats so "52" and
// "52.0" agree, list values compare after a JSON round trip.
func normalizeValue(value, fieldType string) string {
	if fieldType == TypeNumberDecimal {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return value
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if strings.HasPrefix(fieldType, "list.") {
		var parsed interface{}
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			return value
		}
		encoded, err := json.Marshal(parsed)
		if err != nil {
			return value
		}
		return string(encoded)
	}
	return value
}
