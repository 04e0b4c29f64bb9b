package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

const collectionJobs = "jobs"

// JobRepository implements ports.JobRepository backed by MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(collectionJobs)}
}

type mongoJob struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	Requirements    []string           `bson:"requirements,omitempty"`
	Salary          int64              `bson:"salary"`
	ExperienceLevel int                `bson:"experience_level"`
	Location        string             `bson:"location"`
	JobType         string             `bson:"job_type"`
	Positions       int                `bson:"positions"`
	CompanyID       string             `bson:"company_id"`
	CreatedBy       string             `bson:"created_by"`
	CreatedAt       int64              `bson:"created_at"`
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Title:           job.Title,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Salary:          job.Salary,
		ExperienceLevel: job.ExperienceLevel,
		Location:        job.Location,
		JobType:         job.JobType,
		Positions:       job.Positions,
		CompanyID:       job.CompanyID,
		CreatedBy:       job.CreatedBy,
		CreatedAt:       job.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

// List returns jobs matching the filter, newest first. Keyword filtering is
// a case-insensitive regex match on title or description, mirroring the
// portal's search box semantics.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CreatedBy != "" {
		query["created_by"] = filter.CreatedBy
	}
	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexEscape(filter.Keyword), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	return jobs, cur.Err()
}

// EnsureIndexes creates the lookup indexes used by search and the
// recruiter's own-postings listing.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// regexEscape neutralises regex metacharacters in user-supplied keywords so
// the search is a literal substring match.
func regexEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func (mj mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:              mj.ID.Hex(),
		Title:           mj.Title,
		Description:     mj.Description,
		Requirements:    mj.Requirements,
		Salary:          mj.Salary,
		ExperienceLevel: mj.ExperienceLevel,
		Location:        mj.Location,
		JobType:         mj.JobType,
		Positions:       mj.Positions,
		CompanyID:       mj.CompanyID,
		CreatedBy:       mj.CreatedBy,
		CreatedAt:       unixToTime(mj.CreatedAt),
	}
}
