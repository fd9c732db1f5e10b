package jobs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quickq-backend/internal/storage/mongodb"
)

const defaultCollection = "linkedin_jobs"

// MongoRepo is the Repo implementation backed by the document store.
type MongoRepo struct {
	Store *mongodb.Store
	// Database overrides the store's default logical database when set.
	Database string
	// Collection defaults to "linkedin_jobs" when empty.
	Collection string
}

// TextSearch executes the compound filter sorted by descending text score.
// The collection must carry a pre-existing text index.
func (r *MongoRepo) TextSearch(ctx context.Context, query string, techSkills []string, jobLevel string, limit int64) ([]StoredJob, error) {
	db, err := r.Store.Database(ctx, r.Database)
	if err != nil {
		return nil, err
	}
	name := r.Collection
	if name == "" {
		name = defaultCollection
	}

	filter := BuildSearchFilter(query, techSkills, jobLevel)
	opts := options.Find().
		SetProjection(bson.M{
			"job_title": 1, "company": 1, "job_location": 1,
			"job_summary": 1, "job_skills": 1, "job level": 1,
			"job_type": 1, "job_link": 1, "first_seen": 1, "_id": 0,
		}).
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(limit)

	cursor, err := db.Collection(name).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("job search: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []StoredJob
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode job search results: %w", err)
	}
	return docs, nil
}
