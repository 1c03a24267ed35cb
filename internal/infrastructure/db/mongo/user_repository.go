package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoProfile struct {
	FirstName         string            `bson:"first_name,omitempty"`
	LastName          string            `bson:"last_name,omitempty"`
	Headline          string            `bson:"headline,omitempty"`
	Bio               string            `bson:"bio,omitempty"`
	Location          string            `bson:"location,omitempty"`
	ProfilePictureURL string            `bson:"profile_picture_url,omitempty"`
	Skills            []string          `bson:"skills,omitempty"`
	PortfolioLinks    []string          `bson:"portfolio_links,omitempty"`
	HourlyRate        float64           `bson:"hourly_rate,omitempty"`
	Availability      string            `bson:"availability,omitempty"`
	CompanyName       string            `bson:"company_name,omitempty"`
	CompanyWebsite    string            `bson:"company_website,omitempty"`
	SocialLinks       map[string]string `bson:"social_links,omitempty"`
}

type mongoUser struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Username             string             `bson:"username"`
	Email                string             `bson:"email"`
	PasswordHash         string             `bson:"password_hash"`
	Role                 string             `bson:"role"`
	ProfileSetupComplete bool               `bson:"profile_setup_complete"`
	Profile              mongoProfile       `bson:"profile,omitempty"`
	CreatedAt            int64              `bson:"created_at"`
	UpdatedAt            int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Username:             user.Username,
		Email:                user.Email,
		PasswordHash:         user.PasswordHash,
		Role:                 user.Role,
		ProfileSetupComplete: user.ProfileSetupComplete,
		Profile:              toMongoProfile(user.Profile),
		CreatedAt:            user.CreatedAt.Unix(),
		UpdatedAt:            user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(mu), nil
}

// UpdateProfile applies a partial profile edit to one document and marks
// profile setup complete in the same atomic update.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{
		"profile_setup_complete": true,
		"updated_at":             time.Now().UTC().Unix(),
	}
	setProfileField(set, "first_name", update.FirstName)
	setProfileField(set, "last_name", update.LastName)
	setProfileField(set, "headline", update.Headline)
	setProfileField(set, "bio", update.Bio)
	setProfileField(set, "location", update.Location)
	setProfileField(set, "profile_picture_url", update.ProfilePictureURL)
	setProfileField(set, "skills", update.Skills)
	setProfileField(set, "portfolio_links", update.PortfolioLinks)
	setProfileField(set, "hourly_rate", update.HourlyRate)
	setProfileField(set, "availability", update.Availability)
	setProfileField(set, "company_name", update.CompanyName)
	setProfileField(set, "company_website", update.CompanyWebsite)
	setProfileField(set, "social_links", update.SocialLinks)

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return toDomainUser(mu), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]*domain.User, 0)
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, toDomainUser(mu))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// setProfileField adds the nested profile key only when the edit provided it.
func setProfileField[T any](set bson.M, key string, value *T) {
	if value != nil {
		set["profile."+key] = *value
	}
}

func toMongoProfile(p domain.Profile) mongoProfile {
	return mongoProfile{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Headline:          p.Headline,
		Bio:               p.Bio,
		Location:          p.Location,
		ProfilePictureURL: p.ProfilePictureURL,
		Skills:            p.Skills,
		PortfolioLinks:    p.PortfolioLinks,
		HourlyRate:        p.HourlyRate,
		Availability:      p.Availability,
		CompanyName:       p.CompanyName,
		CompanyWebsite:    p.CompanyWebsite,
		SocialLinks:       p.SocialLinks,
	}
}

func toDomainUser(mu mongoUser) *domain.User {
	return &domain.User{
		ID:                   mu.ID.Hex(),
		Username:             mu.Username,
		Email:                mu.Email,
		PasswordHash:         mu.PasswordHash,
		Role:                 mu.Role,
		ProfileSetupComplete: mu.ProfileSetupComplete,
		Profile: domain.Profile{
			FirstName:         mu.Profile.FirstName,
			LastName:          mu.Profile.LastName,
			Headline:          mu.Profile.Headline,
			Bio:               mu.Profile.Bio,
			Location:          mu.Profile.Location,
			ProfilePictureURL: mu.Profile.ProfilePictureURL,
			Skills:            mu.Profile.Skills,
			PortfolioLinks:    mu.Profile.PortfolioLinks,
			HourlyRate:        mu.Profile.HourlyRate,
			Availability:      mu.Profile.Availability,
			CompanyName:       mu.Profile.CompanyName,
			CompanyWebsite:    mu.Profile.CompanyWebsite,
			SocialLinks:       mu.Profile.SocialLinks,
		},
		CreatedAt: unixToTime(mu.CreatedAt),
		UpdatedAt: unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
