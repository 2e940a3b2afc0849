package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/schema"
)

// Capability names one of the content capabilities a topic can enable.
type Capability string

const (
	CapabilityImage Capability = "image"
	CapabilityVideo Capability = "video"
	CapabilityText  Capability = "text"
)

// Permission holds the capability flags of a topic.
type Permission struct {
	Image bool `bson:"image" json:"image"`
	Video bool `bson:"video" json:"video"`
	Text  bool `bson:"text" json:"text"`
}

// Topic is a named permission profile. Topics are seeded once and read-only
// from the identity service's perspective.
type Topic struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Permission Permission         `bson:"permission" json:"permission"`
}

// TopicSchema declares the persisted shape of Topic for the generic repository.
var TopicSchema = schema.Descriptor{
	Collection: "topics",
	Fields: []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "permission.image", Kind: schema.KindBool},
		{Name: "permission.video", Kind: schema.KindBool},
		{Name: "permission.text", Kind: schema.KindBool},
	},
}
