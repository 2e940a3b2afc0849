package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/disruptive-studio/content-platform/internal/core/schema"
)

// Role classifies what a user is allowed to do on the platform.
type Role string

const (
	RoleReader  Role = "reader"
	RoleCreator Role = "creator"
	RoleAdmin   Role = "admin"
)

// DefaultCapability returns the topic capability used to pick a default
// permission topic for the role at registration time. Unrecognized roles
// fall back to the text capability.
func (r Role) DefaultCapability() Capability {
	switch r {
	case RoleAdmin:
		return CapabilityImage
	case RoleCreator:
		return CapabilityVideo
	default:
		return CapabilityText
	}
}

// User models a platform account. The password hash and session token are
// never serialized in outward-facing representations.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Role         Role               `bson:"role" json:"role"`
	PasswordHash string             `bson:"password" json:"-"`
	Token        string             `bson:"token,omitempty" json:"-"`
	TopicID      primitive.ObjectID `bson:"topic,omitempty" json:"-"`
	Topic        *Topic             `bson:"topic_doc,omitempty" json:"topic,omitempty"`
}

// UserSchema declares the persisted shape of User for the generic repository.
var UserSchema = schema.Descriptor{
	Collection: "users",
	Fields: []schema.Field{
		{Name: "username", Kind: schema.KindString},
		{Name: "email", Kind: schema.KindString},
		{Name: "role", Kind: schema.KindString},
		{Name: "password", Kind: schema.KindString},
		{Name: "token", Kind: schema.KindString},
		{Name: "topic", Kind: schema.KindRef, Ref: "topics"},
	},
}
