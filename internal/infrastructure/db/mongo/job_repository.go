package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

const jobsCollection = "jobs"

// JobRepository reads the job-postings catalog. The role scope is folded
// into every query filter so rows outside the caller's scope never cross
// the wire.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
	Org   string             `bson:"org"`
	Link  string             `bson:"link"`
}

func (mj mongoJob) toDomain() domain.Job {
	return domain.Job{
		ID:    mj.ID.Hex(),
		Title: mj.Title,
		Org:   mj.Org,
		Link:  mj.Link,
	}
}

func (r *JobRepository) List(ctx context.Context, scope domain.Scope) ([]domain.Job, error) {
	return r.find(ctx, scopeFilter(scope))
}

// Search matches keyword case-insensitively against title or org, ANDed
// with the scope filter.
func (r *JobRepository) Search(ctx context.Context, scope domain.Scope, keyword string) ([]domain.Job, error) {
	filter := scopeFilter(scope)
	re := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	filter["$or"] = []bson.M{
		{"title": re},
		{"org": re},
	}
	return r.find(ctx, filter)
}

func scopeFilter(scope domain.Scope) bson.M {
	filter := bson.M{}
	if !scope.Unrestricted() {
		filter["org"] = scope.Org
	}
	return filter
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]domain.Job, 0)
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	return jobs, nil
}
