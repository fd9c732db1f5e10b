package questions

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickq-backend/internal/storage/mongodb"
)

const defaultCollection = "questions"

// MongoRepo is the Repo implementation backed by the questions database.
type MongoRepo struct {
	Store *mongodb.Store
	// Database names the logical questions database, e.g. software_questions_db.
	Database string
	// Collection defaults to "questions" when empty.
	Collection string
}

// Search runs a single $text search sorted by descending text score. The
// collection needs a text index over Question/Answer/Category.
func (r *MongoRepo) Search(ctx context.Context, phrase string, limit int64) ([]StoredQuestion, error) {
	db, err := r.Store.Database(ctx, r.Database)
	if err != nil {
		return nil, err
	}
	name := r.Collection
	if name == "" {
		name = defaultCollection
	}

	filter := bson.M{"$text": bson.M{"$search": phrase}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(limit)

	cursor, err := db.Collection(name).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("question search: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []StoredQuestion
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode question search results: %w", err)
	}
	return docs, nil
}
