package format

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// AddSearchParams appends the non-empty params to rawURL as a query string.
// Keys are emitted in sorted order and values are query-escaped. Params with
// a nil, empty-string, zero or false value are skipped.
func AddSearchParams(rawURL string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for key, value := range params {
		if isEmptyParam(value) {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return rawURL
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(rawURL)
	if strings.Contains(rawURL, "?") {
		if !strings.HasSuffix(rawURL, "?") && !strings.HasSuffix(rawURL, "&") {
			b.WriteByte('&')
		}
	} else {
		b.WriteByte('?')
	}
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fmt.Sprint(params[key])))
	}
	return b.String()
}

func isEmptyParam(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}
