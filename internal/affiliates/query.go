package affiliates

import (
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
}

// query keeps parameters in their original order; url.Values sorts on Encode.
type query []param

func parseQuery(raw string) query {
	var q query
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		q = append(q, param{key: key, value: value})
	}
	return q
}

// set overwrites the first occurrence of key in place and drops any others,
// or appends it when absent.
func (q query) set(key, value string) query {
	out := make(query, 0, len(q)+1)
	found := false
	for _, p := range q {
		if p.key == key {
			if found {
				continue
			}
			p.value = value
			found = true
		}
		out = append(out, p)
	}
	if !found {
		out = append(out, param{key: key, value: value})
	}
	return out
}

func (q query) encode() string {
	parts := make([]string, len(q))
	for i, p := range q {
		parts[i] = url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
	}
	return strings.Join(parts, "&")
}
