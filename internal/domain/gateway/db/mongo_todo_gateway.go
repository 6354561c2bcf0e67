package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

const todosCollection = "todos"

type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	Done        bool               `bson:"done"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (doc todoDocument) toEntity() entity.Todo {
	return entity.Todo{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		Image:       doc.Image,
		Done:        doc.Done,
		CreatedAt:   doc.CreatedAt.UTC(),
		UpdatedAt:   doc.UpdatedAt.UTC(),
	}
}

type MongoTodoGateway struct {
	Collection *mongo.Collection
}

var _ TodoGateway = (*MongoTodoGateway)(nil)

func NewMongoTodoGateway(database *mongo.Database) *MongoTodoGateway {
	return &MongoTodoGateway{Collection: database.Collection(todosCollection)}
}

func (gateway *MongoTodoGateway) FindAll(ctx context.Context, filter model.TodoFilter) ([]entity.Todo, error) {
	cursor, err := gateway.Collection.Find(ctx, buildTodoFilter(filter),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0, len(docs))
	for _, doc := range docs {
		todos = append(todos, doc.toEntity())
	}
	return todos, nil
}

func (gateway *MongoTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return decodeTodo(gateway.Collection.FindOne(ctx, bson.M{"_id": objectID}))
}

func (gateway *MongoTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := todoDocument{
		ID:          primitive.NewObjectID(),
		Title:       todo.Title,
		Description: todo.Description,
		Category:    todo.Category,
		Image:       todo.Image,
		Done:        todo.Done,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := gateway.Collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	created := doc.toEntity()
	return &created, nil
}

func (gateway *MongoTodoGateway) UpdateByID(ctx context.Context, id string, changes model.TodoChanges) (*entity.Todo, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": changes.Fields(time.Now().UTC().Truncate(time.Millisecond))}
	result := gateway.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	return decodeTodo(result)
}

func (gateway *MongoTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return decodeTodo(gateway.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}))
}

// buildTodoFilter ANDs the provided predicates; an empty filter matches every document
func buildTodoFilter(filter model.TodoFilter) bson.D {
	query := bson.D{}
	if filter.Done != nil {
		query = append(query, bson.E{Key: "done", Value: *filter.Done})
	}
	if filter.Category != nil {
		query = append(query, bson.E{Key: "category", Value: *filter.Category})
	}
	return query
}

func decodeTodo(result *mongo.SingleResult) (*entity.Todo, error) {
	var doc todoDocument
	err := result.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	todo := doc.toEntity()
	return &todo, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &model.InvalidIDError{ID: id}
	}
	return objectID, nil
}
