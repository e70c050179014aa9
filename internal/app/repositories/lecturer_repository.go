package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emurray/registrar/internal/app/models"
)

// lecturersCollection is the document store collection holding lecturers
const lecturersCollection = "lecturers"

// LecturerRepository handles document store operations for lecturers
type LecturerRepository struct {
	collection *mongo.Collection
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(database *mongo.Database) *LecturerRepository {
	return &LecturerRepository{
		collection: database.Collection(lecturersCollection),
	}
}

// GetAll retrieves all lecturers sorted by identifier
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}
	defer cursor.Close(ctx)

	var lecturers []*models.Lecturer
	if err := cursor.All(ctx, &lecturers); err != nil {
		return nil, fmt.Errorf("error decoding lecturers: %w", err)
	}

	return lecturers, nil
}

// GetByID retrieves a lecturer by identifier. Returns (nil, nil) when no
// document has that identifier so callers can tell absence from failure.
func (r *LecturerRepository) GetByID(ctx context.Context, id string) (*models.Lecturer, error) {
	var lecturer models.Lecturer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lecturer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}

	return &lecturer, nil
}

// DeleteByID removes the lecturer document with the given identifier and
// reports how many documents were removed. Deleting an absent document is
// not an error; the count is simply zero.
func (r *LecturerRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting lecturer: %w", err)
	}

	return result.DeletedCount, nil
}

// Count returns the total number of lecturer documents
func (r *LecturerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error counting lecturers: %w", err)
	}

	return count, nil
}
