// Package auth decides who may use the administrator operations.
package auth

import "strings"

type Authorizer interface {
	IsAdmin(identity string) bool
}

type staticAllowList struct {
	identities map[string]struct{}
}

// NewStaticAllowList admits exactly the given identities, compared
// case-insensitively after trimming. There is no password or session expiry.
func NewStaticAllowList(identities ...string) Authorizer {
	allowed := make(map[string]struct{}, len(identities))
	for _, id := range identities {
		id = normalize(id)
		if id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &staticAllowList{identities: allowed}
}

func (a *staticAllowList) IsAdmin(identity string) bool {
	identity = normalize(identity)
	if identity == "" {
		return false
	}
	_, ok := a.identities[identity]
	return ok
}

func normalize(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}
