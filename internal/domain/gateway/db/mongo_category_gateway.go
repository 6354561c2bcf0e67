package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-api/internal/domain/entity"
)

const categoriesCollection = "categories"

// MongoCategoryGateway reads categories in whatever shape they were stored;
// only name, description and the timestamps are lifted onto the entity.
type MongoCategoryGateway struct {
	Collection *mongo.Collection
}

var _ CategoryGateway = (*MongoCategoryGateway)(nil)

func NewMongoCategoryGateway(database *mongo.Database) *MongoCategoryGateway {
	return &MongoCategoryGateway{Collection: database.Collection(categoriesCollection)}
}

func (gateway *MongoCategoryGateway) FindAll(ctx context.Context) ([]entity.Category, error) {
	cursor, err := gateway.Collection.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, categoryFromDocument(doc))
	}
	return categories, nil
}

func (gateway *MongoCategoryGateway) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return decodeCategory(gateway.Collection.FindOne(ctx, bson.M{"_id": objectID}))
}

func (gateway *MongoCategoryGateway) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	return decodeCategory(gateway.Collection.FindOne(ctx, bson.M{"name": name}))
}

func (gateway *MongoCategoryGateway) Create(ctx context.Context, category entity.Category) (*entity.Category, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := bson.M{
		"_id":         primitive.NewObjectID(),
		"name":        category.Name,
		"description": category.Description,
		"createdAt":   now,
		"updatedAt":   now,
	}

	if _, err := gateway.Collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	created := categoryFromDocument(doc)
	return &created, nil
}

func decodeCategory(result *mongo.SingleResult) (*entity.Category, error) {
	var doc bson.M
	err := result.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	category := categoryFromDocument(doc)
	return &category, nil
}

// categoryFromDocument keeps every stored field for the JSON view and maps _id to id
func categoryFromDocument(doc bson.M) entity.Category {
	category := entity.Category{Document: make(map[string]any, len(doc))}
	for key, value := range doc {
		if key == "_id" {
			category.ID = documentID(value)
			continue
		}
		category.Document[key] = plainValue(value)
	}

	category.Name, _ = doc["name"].(string)
	category.Description, _ = doc["description"].(string)
	category.CreatedAt, _ = timeValue(doc["createdAt"])
	category.UpdatedAt, _ = timeValue(doc["updatedAt"])
	return category
}

func documentID(value any) string {
	switch id := value.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func timeValue(value any) (time.Time, bool) {
	switch t := value.(type) {
	case primitive.DateTime:
		return t.Time().UTC(), true
	case time.Time:
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}

// plainValue turns driver types into values encoding/json renders naturally
func plainValue(value any) any {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime, time.Time:
		t, _ := timeValue(v)
		return t
	case bson.M:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = plainValue(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(v))
		for _, element := range v {
			out[element.Key] = plainValue(element.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
