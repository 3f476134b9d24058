package roles

import "github.com/google/uuid"

// NamespaceRoleIDs is the UUID namespace used to derive stable role IDs from slugs.
//
// Role IDs are computed as UUIDv5(namespace, "role:"+slug). Slugs are treated as immutable identity,
// so the same slug always maps to the same ID regardless of which host installation created it.
var NamespaceRoleIDs = uuid.MustParse("3b1c4f82-9d4e-5aa1-8c37-f20d91e64b05")

func IDFromSlug(slug string) uuid.UUID {
	return uuid.NewSHA1(NamespaceRoleIDs, []byte("role:"+slug))
}

// DefaultEligibleSlugs are the role slugs eligible for inactivity deletion when the
// administrator has never saved settings. Administrative roles are deliberately absent.
func DefaultEligibleSlugs() []string {
	return []string{"author", "contributor", "subscriber"}
}
