package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/authgate/authentication-gateway/internal/core/domain"
)

const accountCollection = "accounts"

// AccountRepository is the MongoDB-backed credential store. It owns
// password hashing (bcrypt) and is the enforcement point for username
// and email uniqueness via unique indexes, so a racing duplicate fails
// at insert time rather than silently succeeding.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type accountDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Username      string             `bson:"username"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Provider      string             `bson:"provider"`
	SecurityStamp string             `bson:"security_stamp"`
	Roles         []string           `bson:"roles,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique indexes on username and email.
// Idempotent; call once at startup.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create account indexes: %w", err)
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account, password string) (*domain.Account, error) {
	if !domain.ValidPassword(password) {
		return nil, fmt.Errorf("password must have %d-%d characters with at least one uppercase, one lowercase, one digit and one special character", domain.PasswordMinLength, domain.PasswordMaxLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	doc := accountDoc{
		Username:      account.Username,
		Email:         account.Email,
		PasswordHash:  string(hash),
		Provider:      account.Provider,
		SecurityStamp: account.SecurityStamp,
		Roles:         account.Roles,
		CreatedAt:     now.Unix(),
		UpdatedAt:     now.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	// fetch back to get ID
	return r.FindByUsername(ctx, account.Username)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(), nil
}

// VerifyPassword compares password against the stored bcrypt hash.
func (r *AccountRepository) VerifyPassword(_ context.Context, account *domain.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

func (r *AccountRepository) Roles(ctx context.Context, account *domain.Account) ([]string, error) {
	found, err := r.FindByUsername(ctx, account.Username)
	if err != nil {
		return nil, err
	}
	return found.Roles, nil
}

func (r *AccountRepository) AddRole(ctx context.Context, account *domain.Account, role string) error {
	update := bson.M{
		"$addToSet": bson.M{"roles": role},
		"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"username": account.Username}, update)
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (d *accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:            d.ID.Hex(),
		Username:      d.Username,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		Provider:      d.Provider,
		SecurityStamp: d.SecurityStamp,
		Roles:         d.Roles,
		CreatedAt:     unixToTime(d.CreatedAt),
		UpdatedAt:     unixToTime(d.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
