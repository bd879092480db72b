package doctorRepo

import (
	"context"
	"fmt"

	"medicare/database"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Delete returns the number of removed records; a malformed id removes nothing.
	Delete(ctx context.Context, id string) (int64, error)
}

type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(store *database.Store) *MongoDoctorRepo {
	return &MongoDoctorRepo{coll: store.Collection(database.DoctorsCollection)}
}

func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor with id %s: %w", id, err)
	}
	return res.DeletedCount, nil
}
