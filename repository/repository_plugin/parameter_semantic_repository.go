package repository_plugin

import (
	"context"
	"fmt"

	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_interface"
	"github.com/chainswap/chainswap-backend/domain/domain_plugin/plugin_models"
	"github.com/chainswap/chainswap-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type parameterSemanticRepository struct {
	db         mongo.Database
	collection string
}

func NewParameterSemanticRepository(db mongo.Database, collection string) plugin_interface.ParameterSemanticRepository {
	return &parameterSemanticRepository{
		db:         db,
		collection: collection,
	}
}

func (r *parameterSemanticRepository) EnsureIndexes(ctx context.Context) error {
	coll := r.db.Collection(r.collection)
	_, err := coll.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "semantic_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("semantic index creation failed: %w", err)
	}
	return nil
}

func (r *parameterSemanticRepository) BulkUpsert(ctx context.Context, semantics []*plugin_models.ParameterSemantic) (int, error) {
	if len(semantics) == 0 {
		return 0, nil
	}

	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	for _, s := range semantics {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		model := driver.NewUpdateOneModel().
			SetFilter(bson.M{"semantic_id": s.SemanticID}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"display_name":    s.DisplayName,
					"category":        s.Category,
					"physical_unit":   s.PhysicalUnit,
					"typical_min":     s.TypicalMin,
					"typical_max":     s.TypicalMax,
					"typical_default": s.TypicalDef,
					"mapping_curve":   s.MappingCurve,
					"priority":        s.Priority,
				},
				"$setOnInsert": bson.M{"_id": s.ID},
			}).
			SetUpsert(true)
		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("semantic bulk upsert failed: %w", err)
	}
	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}

func (r *parameterSemanticRepository) GetByCategory(ctx context.Context, category string) ([]*plugin_models.ParameterSemantic, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "priority", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("semantic query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*plugin_models.ParameterSemantic
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("semantic decode failed: %w", err)
	}
	return results, nil
}
