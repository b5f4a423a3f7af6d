package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AstroBookings/api-system/internal/model"
	"github.com/AstroBookings/api-system/internal/pkg/apperr"
)

type userDocument struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash"`
}

// MongoUserRepository stores user records in a mongo collection. Email
// uniqueness rides on a unique index, so Save detects a racing
// duplicate at insert time instead of relying on a prior read.
type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(ctx context.Context, uri, database string) (*MongoUserRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	users := client.Database(database).Collection("users")
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := users.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, err
	}
	return &MongoUserRepository{users: users}, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) Save(ctx context.Context, user *model.User) error {
	doc := userDocument{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		PasswordHash: user.PasswordHash,
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &model.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		Role:         doc.Role,
		PasswordHash: doc.PasswordHash,
	}, nil
}
