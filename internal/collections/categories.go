package collections

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/model"
)

// Categories is the global, tenant-independent taxonomy. Services reference
// category ids but no tenant owns a category.
type Categories struct {
	store docstore.Store
}

func NewCategories(store docstore.Store) *Categories {
	return &Categories{store: store}
}

// SubscribeAll delivers categories ordered by display order ascending.
func (a *Categories) SubscribeAll(fn func([]model.ServiceCategory)) func() {
	return a.store.Subscribe(model.CategoriesCollection, docstore.Query{OrderBy: "order"}, func(docs []docstore.Document) {
		categories := make([]model.ServiceCategory, 0, len(docs))
		for _, doc := range docs {
			categories = append(categories, docToCategory(doc))
		}
		fn(categories)
	})
}

// List returns all categories ordered by display order ascending.
func (a *Categories) List(ctx context.Context) ([]model.ServiceCategory, error) {
	docs, err := a.store.List(ctx, model.CategoriesCollection, docstore.Query{OrderBy: "order"})
	if err != nil {
		return nil, fmt.Errorf("categories: list: %w", err)
	}
	categories := make([]model.ServiceCategory, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, docToCategory(doc))
	}
	return categories, nil
}

type CreateCategoryParams struct {
	Name        model.LocalizedText
	Description *model.LocalizedText
	Icon        string
	Order       int
	Active      bool
}

func (a *Categories) Create(ctx context.Context, params CreateCategoryParams) (*model.ServiceCategory, error) {
	category := model.ServiceCategory{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		Icon:        params.Icon,
		Order:       params.Order,
		Active:      params.Active,
	}
	if err := a.store.Create(ctx, model.CategoriesCollection, category.ID, categoryToDoc(category)); err != nil {
		return nil, fmt.Errorf("categories: create: %w", err)
	}
	return &category, nil
}

type CategoryUpdate struct {
	Name        *model.LocalizedText
	Description *model.LocalizedText
	Icon        *string
	Order       *int
	Active      *bool
}

func (a *Categories) Update(ctx context.Context, id string, upd CategoryUpdate) error {
	doc := docstore.Document{}
	if upd.Name != nil {
		doc["name"] = localizedDoc(*upd.Name)
	}
	if upd.Description != nil {
		doc["description"] = localizedDoc(*upd.Description)
	}
	if upd.Icon != nil {
		doc["icon"] = *upd.Icon
	}
	if upd.Order != nil {
		doc["order"] = *upd.Order
	}
	if upd.Active != nil {
		doc["active"] = *upd.Active
	}
	if len(doc) == 0 {
		return nil
	}
	if err := a.store.Update(ctx, model.CategoriesCollection, id, doc); err != nil {
		return fmt.Errorf("categories: update %s: %w", id, err)
	}
	return nil
}

func (a *Categories) Delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, model.CategoriesCollection, id); err != nil {
		return fmt.Errorf("categories: delete %s: %w", id, err)
	}
	return nil
}

func categoryToDoc(c model.ServiceCategory) docstore.Document {
	return docstore.Document{
		"id":          c.ID,
		"name":        localizedDoc(c.Name),
		"description": localizedDocPtr(c.Description),
		"icon":        c.Icon,
		"order":       c.Order,
		"active":      c.Active,
	}
}

func docToCategory(doc docstore.Document) model.ServiceCategory {
	return model.ServiceCategory{
		ID:          getString(doc, "id"),
		Name:        getLocalized(doc, "name"),
		Description: getLocalizedPtr(doc, "description"),
		Icon:        getString(doc, "icon"),
		Order:       getInt(doc, "order"),
		Active:      getBool(doc, "active"),
	}
}
