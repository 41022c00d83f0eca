package realtime

import (
	"context"

	"ecommerce-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoMessageStore persists chat messages in the messages collection
type MongoMessageStore struct {
	collection *mongo.Collection
}

// NewMessageStore creates a message store over the given client and database
func NewMessageStore(client *mongo.Client, database string) *MongoMessageStore {
	return &MongoMessageStore{
		collection: client.Database(database).Collection("messages"),
	}
}

// SaveMessage inserts a chat message; the store assigns the identifier
func (s *MongoMessageStore) SaveMessage(ctx context.Context, msg models.ChatMessage) error {
	_, err := s.collection.InsertOne(ctx, msg)
	return err
}

// GetMessages returns the full chat history in the store's natural order
func (s *MongoMessageStore) GetMessages(ctx context.Context) ([]models.ChatMessage, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
