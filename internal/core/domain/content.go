package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/schema"
)

// ContentKind identifies the payload shape of a content record.
type ContentKind string

const (
	KindImage ContentKind = "image"
	KindVideo ContentKind = "video"
	KindText  ContentKind = "text"
)

// Content is a published record. URL carries the payload location for image
// and video kinds; Text carries the inline body for the text kind.
type Content struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Kind        ContentKind          `bson:"kind" json:"kind"`
	Theme       string               `bson:"theme" json:"theme"`
	CreatorID   primitive.ObjectID   `bson:"creator,omitempty" json:"-"`
	Creator     *User                `bson:"creator_doc,omitempty" json:"creator,omitempty"`
	URL         string               `bson:"url,omitempty" json:"url,omitempty"`
	Text        string               `bson:"text,omitempty" json:"text,omitempty"`
	CategoryIDs []primitive.ObjectID `bson:"categories,omitempty" json:"-"`
	Categories  []Category           `bson:"categories_doc,omitempty" json:"categories,omitempty"`
}

// ContentSchema declares the persisted shape of Content for the generic
// repository. Creator and categories are reference fields and get expanded
// on every read.
var ContentSchema = schema.Descriptor{
	Collection: "contents",
	Fields: []schema.Field{
		{Name: "title", Kind: schema.KindString},
		{Name: "kind", Kind: schema.KindString},
		{Name: "theme", Kind: schema.KindString},
		{Name: "creator", Kind: schema.KindRef, Ref: "users"},
		{Name: "url", Kind: schema.KindString},
		{Name: "text", Kind: schema.KindString},
		{Name: "categories", Kind: schema.KindRefList, Ref: "categories"},
	},
}

// Category groups content records by payload kind.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Kind ContentKind        `bson:"kind" json:"kind"`
}

// CategorySchema declares the persisted shape of Category.
var CategorySchema = schema.Descriptor{
	Collection: "categories",
	Fields: []schema.Field{
		{Name: "name", Kind: schema.KindString},
		{Name: "kind", Kind: schema.KindString},
	},
}
