package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

const collectionCompanies = "companies"

// CompanyRepository implements ports.CompanyRepository backed by MongoDB.
type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(collectionCompanies)}
}

type mongoCompany struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Website     string             `bson:"website,omitempty"`
	Location    string             `bson:"location,omitempty"`
	LogoURL     string             `bson:"logo_url,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCompany{
		Name:      company.Name,
		OwnerID:   company.OwnerID,
		CreatedAt: company.CreatedAt.Unix(),
		UpdatedAt: company.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company by name: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CompanyRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cur.Close(ctx)

	var companies []*domain.Company
	for cur.Next(ctx) {
		var mc mongoCompany
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, mc.toDomain())
	}
	return companies, cur.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        company.Name,
		"description": company.Description,
		"website":     company.Website,
		"location":    company.Location,
		"logo_url":    company.LogoURL,
		"updated_at":  company.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// EnsureIndexes creates the unique name index and the owner lookup index.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: indexUnique()},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mc mongoCompany) toDomain() *domain.Company {
	return &domain.Company{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		Website:     mc.Website,
		Location:    mc.Location,
		LogoURL:     mc.LogoURL,
		OwnerID:     mc.OwnerID,
		CreatedAt:   unixToTime(mc.CreatedAt),
		UpdatedAt:   unixToTime(mc.UpdatedAt),
	}
}
