package repository_plugin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/chainswap/chainswap-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type parameterMapRepository struct {
	db         mongo.Database
	collection string
}

func NewParameterMapRepository(db mongo.Database, collection string) plugin_interface.ParameterMapRepository {
	return &parameterMapRepository{
		db:         db,
		collection: collection,
	}
}

func (r *parameterMapRepository) EnsureIndexes(ctx context.Context) error {
	coll := r.db.Collection(r.collection)

	// plugin_id is the upsert key: one map per plugin.
	_, err := coll.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "plugin_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("parameter map index creation failed: %w", err)
	}

	_, err = coll.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("parameter map category index creation failed: %w", err)
	}
	return nil
}

// GetByPluginID returns (nil, nil) when no map is stored for the
// plugin; a missing map is a normal degraded-translation input, not an
// error.
func (r *parameterMapRepository) GetByPluginID(ctx context.Context, pluginID string) (*plugin_models.ParameterMap, error) {
	coll := r.db.Collection(r.collection)

	var m plugin_models.ParameterMap
	err := coll.FindOne(ctx, bson.M{"plugin_id": pluginID}).Decode(&m)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("parameter map query failed: %w", err)
	}
	return &m, nil
}

func (r *parameterMapRepository) GetByCategory(ctx context.Context, category string) ([]*plugin_models.ParameterMap, error) {
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("parameter map category query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*plugin_models.ParameterMap
	for cursor.Next(ctx) {
		var m plugin_models.ParameterMap
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("parameter map decode failed: %w", err)
		}
		results = append(results, &m)
	}
	return results, nil
}

func (r *parameterMapRepository) Upsert(ctx context.Context, m *plugin_models.ParameterMap) (string, error) {
	if m == nil {
		return "", errors.New("parameter map cannot be nil")
	}
	if m.PluginID == "" {
		return "", errors.New("parameter map plugin id cannot be empty")
	}

	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	coll := r.db.Collection(r.collection)

	// Single UpdateOne with upsert keeps concurrent writes for the same
	// plugin atomic (last writer wins). _id and created_at are only set
	// on insert so a racing update cannot re-identify the document.
	update := bson.M{
		"$set": bson.M{
			"plugin_id":     m.PluginID,
			"plugin_name":   m.PluginName,
			"manufacturer":  m.Manufacturer,
			"category":      m.Category,
			"parameters":    m.Parameters,
			"eq":            m.Eq,
			"compressor":    m.Compressor,
			"confidence":    m.Confidence,
			"matched_count": m.MatchedCount,
			"total_count":   m.TotalCount,
			"source":        m.Source,
			"updated_at":    m.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        m.ID,
			"created_at": m.CreatedAt,
		},
	}

	res, err := coll.UpdateOne(ctx, bson.M{"plugin_id": m.PluginID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("parameter map upsert failed: %w", err)
	}
	if res.UpsertedID != nil {
		if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
			return oid.Hex(), nil
		}
	}

	existing, err := r.GetByPluginID(ctx, m.PluginID)
	if err != nil || existing == nil {
		return m.ID.Hex(), nil
	}
	return existing.ID.Hex(), nil
}

func (r *parameterMapRepository) DeleteByPluginID(ctx context.Context, pluginID string) error {
	coll := r.db.Collection(r.collection)
	if _, err := coll.DeleteOne(ctx, bson.M{"plugin_id": pluginID}); err != nil {
		return fmt.Errorf("parameter map delete failed: %w", err)
	}
	return nil
}
