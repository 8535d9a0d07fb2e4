package harrier

import "strings"

// Params holds the named segments the matching pattern extracted from the
// request path. Values are path unescaped. Params change each time Next moves
// to another handler node.
type Params map[string]string

// Get returns the value of a parameter by key. The lookup is case
// insensitive. Returns an empty string if the key doesn't exist.
func (p Params) Get(key string) string {
	if v, ok := p[key]; ok {
		return v
	}
	for k, v := range p {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
