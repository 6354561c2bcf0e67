package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/msg"
)

// TodoFilter holds the optional list predicates; nil means "not filtered"
type TodoFilter struct {
	Done     *bool
	Category *string
}

// TodoInput is the set of todo fields a client may send
type TodoInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Done        *bool   `json:"done"`
}

// TodoInputFromForm reads todo fields from urlencoded or multipart form values.
// Absent keys stay nil.
func TodoInputFromForm(values url.Values) (TodoInput, error) {
	var input TodoInput

	input.Title = formValue(values, "title")
	input.Description = formValue(values, "description")
	input.Category = formValue(values, "category")
	input.Image = formValue(values, "image")

	if raw := formValue(values, "done"); raw != nil {
		done, err := strconv.ParseBool(strings.TrimSpace(*raw))
		if err != nil {
			return input, &ValidationError{Field: "done", Message: msg.GetMessage("todo.error.invalid-done", *raw)}
		}
		input.Done = &done
	}

	return input, nil
}

func formValue(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	value := values.Get(key)
	return &value
}

type CreateTodoDTO struct {
	TodoInput
}

// Validate checks that a title is present and not blank
func (dto CreateTodoDTO) Validate() error {
	if dto.Title == nil || strings.TrimSpace(*dto.Title) == "" {
		return &ValidationError{Field: "title", Message: msg.GetMessage("todo.error.title-required")}
	}
	return nil
}

// ToEntity applies defaults and attaches the stored image reference.
// The image always comes from the upload, never from the body.
func (dto CreateTodoDTO) ToEntity(image string) entity.Todo {
	todo := entity.Todo{
		Title:    *dto.Title,
		Category: entity.DefaultCategory,
		Image:    image,
	}
	if dto.Description != nil {
		todo.Description = *dto.Description
	}
	if dto.Category != nil && strings.TrimSpace(*dto.Category) != "" {
		todo.Category = *dto.Category
	}
	if dto.Done != nil {
		todo.Done = *dto.Done
	}
	return todo
}

type UpdateTodoDTO struct {
	TodoInput
}

// Validate rejects a title that is provided but blank
func (dto UpdateTodoDTO) Validate() error {
	if dto.Title != nil && strings.TrimSpace(*dto.Title) == "" {
		return &ValidationError{Field: "title", Message: msg.GetMessage("todo.error.title-required")}
	}
	return nil
}

// ToChanges converts the provided fields into a partial update.
// A non-empty image reference from an upload replaces the body value.
func (dto UpdateTodoDTO) ToChanges(image string) TodoChanges {
	changes := TodoChanges{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Image:       dto.Image,
		Done:        dto.Done,
	}
	if image != "" {
		changes.Image = &image
	}
	return changes
}

// TodoChanges is a partial update; only non-nil fields are written
type TodoChanges struct {
	Title       *string
	Description *string
	Category    *string
	Image       *string
	Done        *bool
}

// Fields returns the provided fields keyed by their stored name, plus updatedAt
func (c TodoChanges) Fields(now time.Time) map[string]any {
	fields := map[string]any{}
	if c.Title != nil {
		fields["title"] = *c.Title
	}
	if c.Description != nil {
		fields["description"] = *c.Description
	}
	if c.Category != nil {
		fields["category"] = *c.Category
	}
	if c.Image != nil {
		fields["image"] = *c.Image
	}
	if c.Done != nil {
		fields["done"] = *c.Done
	}
	fields["updatedAt"] = now
	return fields
}
