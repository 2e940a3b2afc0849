package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/disruptive-studio/content-platform/internal/api/metrics"
	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/core/ports"
	"github.com/disruptive-studio/content-platform/internal/core/schema"
)

// Repository is the generic MongoDB-backed implementation of
// ports.Repository. One instance serves one entity type; specialization
// happens by constructing it with a different schema descriptor, never by
// duplicating CRUD code.
//
// Reads run as an aggregation pipeline that expands every reference field
// declared in the descriptor: a $lookup per reference, plus a $unwind for
// single references so the expanded document lands as a sub-document rather
// than a one-element array. The reference set is resolved once at
// construction; descriptors are static configuration.
type Repository[T any] struct {
	coll *mongo.Collection
	desc schema.Descriptor
	refs []schema.Field
	log  zerolog.Logger
}

// NewRepository builds a repository for the entity described by desc,
// bound to the matching collection of db.
func NewRepository[T any](db *mongo.Database, desc schema.Descriptor, log zerolog.Logger) *Repository[T] {
	return &Repository[T]{
		coll: db.Collection(desc.Collection),
		desc: desc,
		refs: desc.References(),
		log:  log.With().Str("collection", desc.Collection).Logger(),
	}
}

// Create persists doc and returns the stored, populated representation.
func (r *Repository[T]) Create(ctx context.Context, doc *T) (*T, error) {
	defer r.observe("create")()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("%s insert: %w: %w", r.desc.Collection, domain.ErrStore, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s insert: %w: unexpected id type %T", r.desc.Collection, domain.ErrStore, res.InsertedID)
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

// Find returns all entities matching filter, reference fields expanded.
func (r *Repository[T]) Find(ctx context.Context, filter ports.Filter) ([]*T, error) {
	defer r.observe("find")()
	return r.aggregate(ctx, toBSON(filter), 0)
}

// FindOne returns the first match or domain.ErrNotFound.
func (r *Repository[T]) FindOne(ctx context.Context, filter ports.Filter) (*T, error) {
	defer r.observe("find_one")()
	return r.findOne(ctx, toBSON(filter))
}

// Update applies patch as a $set to the entity with the given hex id and
// returns the entity after mutation.
func (r *Repository[T]) Update(ctx context.Context, id string, patch ports.Filter) (*T, error) {
	defer r.observe("update")()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s update: %w: %q is not a valid id", r.desc.Collection, domain.ErrInvalidInput, id)
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": toBSON(patch)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("%s update: %w: %w", r.desc.Collection, domain.ErrStore, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// Delete removes the entity by hex id. Idempotent: deleting an id that does
// not exist is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	defer r.observe("delete")()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s delete: %w: %q is not a valid id", r.desc.Collection, domain.ErrInvalidInput, id)
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("%s delete: %w: %w", r.desc.Collection, domain.ErrStore, err)
	}
	return nil
}

func (r *Repository[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	docs, err := r.aggregate(ctx, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	return docs[0], nil
}

func (r *Repository[T]) aggregate(ctx context.Context, filter bson.M, limit int) ([]*T, error) {
	cur, err := r.coll.Aggregate(ctx, r.pipeline(filter, limit))
	if err != nil {
		return nil, fmt.Errorf("%s find: %w: %w", r.desc.Collection, domain.ErrStore, err)
	}

	var out []*T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s decode: %w: %w", r.desc.Collection, domain.ErrStore, err)
	}
	return out, nil
}

// pipeline builds $match (+ optional $limit) followed by one $lookup per
// reference field. Expanded documents land under schema.PopulatedName.
func (r *Repository[T]) pipeline(filter bson.M, limit int) mongo.Pipeline {
	p := mongo.Pipeline{bson.D{{Key: "$match", Value: filter}}}
	if limit > 0 {
		p = append(p, bson.D{{Key: "$limit", Value: limit}})
	}

	for _, f := range r.refs {
		populated := schema.PopulatedName(f.Name)
		p = append(p, bson.D{{Key: "$lookup", Value: bson.M{
			"from":         f.Ref,
			"localField":   f.Name,
			"foreignField": "_id",
			"as":           populated,
		}}})
		if f.Kind == schema.KindRef {
			// $lookup always yields an array; unwind single references so
			// they decode into a plain sub-document. Rows without the
			// reference are preserved with the field absent.
			p = append(p, bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + populated,
				"preserveNullAndEmptyArrays": true,
			}}})
		}
	}
	return p
}

func (r *Repository[T]) observe(op string) func() {
	start := time.Now()
	return func() {
		metrics.QueryDuration.WithLabelValues(r.desc.Collection, op).Observe(time.Since(start).Seconds())
	}
}

func toBSON(filter ports.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
