package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tictacnext/tictacnext/internal/db"
	"github.com/tictacnext/tictacnext/internal/model/game"
)

// collectionName is the single collection holding session records.
const collectionName = "gameSessions"

// sessionDoc is the store-native representation: the same fields as the wire
// record but keyed by ObjectID.
type sessionDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	game.Session `bson:",inline"`
	CreatedAt    string `bson:"createdAt"`
	UpdatedAt    string `bson:"updatedAt"`
}

func (d sessionDoc) toStored() game.StoredSession {
	return game.StoredSession{
		ID:        d.ID.Hex(),
		Session:   d.Session,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// SessionRepo implements game.Store over the gameSessions collection.
type SessionRepo struct {
	sessions *mongo.Collection
}

// New returns a repository bound to the supplied database handle.
func New(handle *db.Mongo) *SessionRepo {
	return &SessionRepo{sessions: handle.Collection(collectionName)}
}

// Create assigns an identifier and equal creation/update timestamps, stores
// the record, and returns the identifier in hex form.
func (r *SessionRepo) Create(ctx context.Context, session game.Session) (string, error) {
	now := game.Now()
	doc := sessionDoc{
		ID:        primitive.NewObjectID(),
		Session:   session,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.sessions.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert game session: %w", err)
	}
	return doc.ID.Hex(), nil
}

// FindAll returns every stored session in store-native order.
func (r *SessionRepo) FindAll(ctx context.Context) ([]game.StoredSession, error) {
	cursor, err := r.sessions.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find game sessions: %w", err)
	}

	var docs []sessionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode game sessions: %w", err)
	}

	sessions := make([]game.StoredSession, 0, len(docs))
	for _, doc := range docs {
		sessions = append(sessions, doc.toStored())
	}
	return sessions, nil
}

// FindByID returns the matching record. A malformed identifier is reported
// as game.ErrNotFound, the same as an absent one.
func (r *SessionRepo) FindByID(ctx context.Context, id string) (game.StoredSession, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return game.StoredSession{}, game.ErrNotFound
	}

	var doc sessionDoc
	err = r.sessions.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return game.StoredSession{}, game.ErrNotFound
	}
	if err != nil {
		return game.StoredSession{}, fmt.Errorf("find game session %s: %w", id, err)
	}
	return doc.toStored(), nil
}

// DeleteByID removes the record, reporting whether one was actually removed.
// A malformed or absent identifier yields (false, nil); only store failures
// return an error.
func (r *SessionRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.sessions.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		return false, fmt.Errorf("delete game session %s: %w", id, err)
	}
	return res.DeletedCount == 1, nil
}
