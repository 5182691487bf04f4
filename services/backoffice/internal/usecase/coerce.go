package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoerceList normalizes a submitted list field to a list of strings. It
// accepts a single scalar, a list, a JSON array, or a JSON string holding a
// JSON array. Blank entries are dropped and absent input yields an empty
// list.
func CoerceList(raw any) []string {
	out := []string{}
	appendValue(&out, raw)
	return out
}

func appendValue(out *[]string, raw any) {
	switch v := raw.(type) {
	case nil:
	case string:
		appendString(out, v)
	case []string:
		for _, s := range v {
			appendString(out, s)
		}
	case []any:
		for _, item := range v {
			appendValue(out, item)
		}
	case json.RawMessage:
		appendJSON(out, v)
	case []byte:
		appendJSON(out, v)
	case float64, bool, int:
		*out = append(*out, fmt.Sprint(v))
	}
}

func appendString(out *[]string, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if strings.HasPrefix(s, "[") {
		var items []any
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			appendValue(out, items)
			return
		}
	}
	*out = append(*out, s)
}

func appendJSON(out *[]string, data []byte) {
	if len(data) == 0 {
		return
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		appendString(out, string(data))
		return
	}
	appendValue(out, decoded)
}
