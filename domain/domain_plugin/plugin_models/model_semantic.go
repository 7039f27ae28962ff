package plugin_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParameterSemantic is one entry of a category's canonical parameter
// vocabulary ("what controls can mean"). Seed data for the enrichment
// side; the translation algorithm itself never reads it.
type ParameterSemantic struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	SemanticID   string             `bson:"semantic_id" json:"semanticId"` // unique, e.g. "comp_attack"
	DisplayName  string             `bson:"display_name" json:"displayName"`
	Category     string             `bson:"category" json:"category"`
	PhysicalUnit string             `bson:"physical_unit" json:"physicalUnit"`
	TypicalMin   float64            `bson:"typical_min" json:"typicalMin"`
	TypicalMax   float64            `bson:"typical_max" json:"typicalMax"`
	TypicalDef   float64            `bson:"typical_default" json:"typicalDefault"`
	MappingCurve string             `bson:"mapping_curve" json:"mappingCurve"`
	Priority     int                `bson:"priority" json:"priority"` // 越小越核心
}
