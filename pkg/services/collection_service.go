package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/ent/doccollection"
	"github.com/yaronha/demo-llm-agent/ent/predicate"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// CollectionService manages document collection records.
type CollectionService struct {
	client *ent.Client
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(client *ent.Client) *CollectionService {
	return &CollectionService{client: client}
}

// Get retrieves a collection by name.
func (s *CollectionService) Get(ctx context.Context, name string) (*ent.DocCollection, error) {
	col, err := s.client.DocCollection.Get(ctx, name)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return col, nil
}

// Create creates a new document collection.
func (s *CollectionService) Create(ctx context.Context, spec models.CollectionSpec) (*ent.DocCollection, error) {
	if spec.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.DocCollection.Create().
		SetID(spec.Name).
		SetDescription(spec.Description)
	if spec.OwnerName != "" {
		builder.SetOwnerName(spec.OwnerName)
	}
	if spec.Meta != nil {
		builder.SetMeta(spec.Meta)
	}
	if spec.DBArgs != nil {
		builder.SetDbArgs(spec.DBArgs)
	}
	if spec.DBCategory != "" {
		builder.SetDbCategory(spec.DBCategory)
	}

	col, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return col, nil
}

// Update applies the non-empty fields of spec to an existing collection.
func (s *CollectionService) Update(ctx context.Context, spec models.CollectionSpec) (*ent.DocCollection, error) {
	if spec.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	update := s.client.DocCollection.UpdateOneID(spec.Name)
	if spec.Description != "" {
		update.SetDescription(spec.Description)
	}
	if spec.Meta != nil {
		update.SetMeta(spec.Meta)
	}
	if spec.DBArgs != nil {
		update.SetDbArgs(spec.DBArgs)
	}
	if spec.DBCategory != "" {
		update.SetDbCategory(spec.DBCategory)
	}

	col, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return col, nil
}

// CreateOrUpdate creates the collection if missing; otherwise it updates it,
// merging the new metadata over the stored metadata.
func (s *CollectionService) CreateOrUpdate(ctx context.Context, spec models.CollectionSpec) (*ent.DocCollection, error) {
	existing, err := s.Get(ctx, spec.Name)
	if err != nil {
		if err == ErrNotFound {
			return s.Create(ctx, spec)
		}
		return nil, err
	}

	if existing.Meta != nil {
		merged := make(map[string]any, len(existing.Meta)+len(spec.Meta))
		for k, v := range existing.Meta {
			merged[k] = v
		}
		for k, v := range spec.Meta {
			merged[k] = v
		}
		spec.Meta = merged
	}
	return s.Update(ctx, spec)
}

// Delete removes a collection by name.
func (s *CollectionService) Delete(ctx context.Context, name string) error {
	err := s.client.DocCollection.DeleteOneID(name).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// List returns collections matching the filters. Metadata filters match
// against the JSON meta column, key by key.
func (s *CollectionService) List(ctx context.Context, filters models.CollectionFilters) ([]*ent.DocCollection, error) {
	query := s.client.DocCollection.Query()
	if filters.Owner != "" {
		query = query.Where(doccollection.OwnerNameEQ(filters.Owner))
	}
	for key, value := range filters.Metadata {
		query = query.Where(predicate.DocCollection(func(s *sql.Selector) {
			s.Where(sqljson.ValueEQ(doccollection.FieldMeta, value, sqljson.Path(key)))
		}))
	}

	collections, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}
