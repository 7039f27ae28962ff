package repository_plugin

import (
	"context"
	"fmt"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

// ownershipDocument is one {user, plugin} ownership record written by
// the catalog side of the system.
type ownershipDocument struct {
	UserID   string `bson:"user_id"`
	PluginID string `bson:"plugin_id"`
}

type ownershipRepository struct {
	db         mongo.Database
	collection string
}

func NewOwnershipRepository(db mongo.Database, collection string) plugin_interface.OwnershipRepository {
	return &ownershipRepository{
		db:         db,
		collection: collection,
	}
}

func (r *ownershipRepository) OwnedPluginIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("ownership query failed: %w", err)
	}
	defer cursor.Close(ctx)

	owned := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc ownershipDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("ownership decode failed: %w", err)
		}
		owned[doc.PluginID] = struct{}{}
	}
	return owned, nil
}
