// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertByEmail only ever writes name and email; an existing record, and its
// role in particular, is left untouched.
func (r *MongoUserRepo) UpsertByEmail(ctx context.Context, user *models.User) (interface{}, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	// email comes from the filter on insert.
	update := bson.M{"$setOnInsert": bson.M{"name": user.Name}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1})

	var stored models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": user.Email}, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", user.Email, err)
	}
	return stored.ID, nil
}

// SetRole updates the role of the user with the given id. A missing user is
// created holding only the role, as the admin console has always done.
func (r *MongoUserRepo) SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &models.UpdateResult{Acknowledged: true}, nil
	}

	ctx, cancel := newContext(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
