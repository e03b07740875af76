package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/userform/internal/common"
	"github.com/dmitrijs2005/userform/internal/server/models"
)

// CollectionName is the MongoDB collection holding user profiles.
const CollectionName = "users"

// userDoc is the BSON shape of a user; ids are ObjectIDs exposed as hex.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	PhoneNumber  string             `bson:"phoneNumber"`
	Birthday     string             `bson:"birthday"`
	Gender       string             `bson:"gender"`
	Image        string             `bson:"image"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func toDoc(u *models.User, id primitive.ObjectID) userDoc {
	return userDoc{
		ID:           id,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  u.PhoneNumber,
		Birthday:     u.Birthday,
		Gender:       u.Gender,
		Image:        u.Image,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		PhoneNumber:  d.PhoneNumber,
		Birthday:     d.Birthday,
		Gender:       d.Gender,
		Image:        d.Image,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type MongoRepository struct {
	c *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(CollectionName)}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.User, error) {
	// ObjectIDs grow with insertion time
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0)
	for cur.Next(ctx) {
		var d userDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("mongo error: %w", err)
		}
		users = append(users, *d.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	return users, nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	doc := toDoc(user, primitive.NewObjectID())
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}

	user.ID = doc.ID.Hex()
	return user, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var d userDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	return d.toModel(), nil
}

// GetForUpdate is a plain Get; Update replaces the whole document in one
// operation.
func (r *MongoRepository) GetForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.Get(ctx, id)
}

func (r *MongoRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	user.UpdatedAt = time.Now().UTC()
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": oid}, toDoc(user, oid))
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrorNotFound
	}

	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
