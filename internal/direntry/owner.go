package direntry

import (
	"fmt"
	"os/user"
)

// OwnerLookup resolves the principal name that owns path, for the
// picture engine's on-demand Owner field (spec.md §3: "owner principal
// name, optional, only populated on demand"). It is deliberately a
// var-of-func rather than a fixed call so platform build tags and tests
// can swap it out without an interface.
var OwnerLookup = defaultOwnerLookup

func defaultOwnerLookup(uid string) (string, error) {
	if uid == "" {
		return "", nil
	}
	u, err := user.LookupId(uid)
	if err != nil {
		return "", fmt.Errorf("direntry: owner lookup for uid %s: %w", uid, err)
	}
	if u.Username != "" {
		return u.Username, nil
	}
	return u.Uid, nil
}
