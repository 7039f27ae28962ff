package plugin_interface

import "context"

// OwnershipRepository answers which plugins a user owns. Candidate swap
// targets are restricted to this set.
type OwnershipRepository interface {
	OwnedPluginIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}
