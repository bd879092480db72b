package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names of the medicare database.
const (
	SlotsCollection    = "slots"
	BookingsCollection = "bookings"
	ClaimsCollection   = "slot_claims"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
	PaymentsCollection = "payment"
)

// Store is the process-wide MongoDB handle. It is opened once at start-up and
// handed to every repository explicitly.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zap.Logger
}

// Connect opens the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	logger.Info("Connected to MongoDB successfully", zap.String("database", dbName))
	return &Store{Client: client, DB: client.Database(dbName), log: logger}, nil
}

// Collection returns a handle to the named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

// Ping checks the connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	s.log.Info("Disconnected from MongoDB")
	return nil
}
