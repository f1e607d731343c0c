package console

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

// DefaultAuthor seeds the author field of a new post draft.
const DefaultAuthor = models.DefaultAuthor

// nullable converts a form field to its stored representation: empty string
// means absent.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// PostDraft mirrors the post modal's field set. Optionals are plain strings;
// empty means absent.
type PostDraft struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	Author    string
	Published bool
	ImageURL  string
}

func (d PostDraft) slug() string {
	if d.Slug != "" {
		return d.Slug
	}
	return models.DeriveSlug(d.Title)
}

func (d PostDraft) fields() map[string]any {
	return map[string]any{
		"title":     d.Title,
		"slug":      d.slug(),
		"excerpt":   nullable(d.Excerpt),
		"content":   d.Content,
		"author":    d.Author,
		"published": d.Published,
		"image_url": nullable(d.ImageURL),
	}
}

func newPostTab(store entityStore[models.BlogPost]) *Tab[models.BlogPost, PostDraft] {
	return newTab("blog post", store, FormSpec[models.BlogPost, PostDraft]{
		NewDraft: func(int) PostDraft {
			return PostDraft{Author: DefaultAuthor}
		},
		DraftFrom: func(p *models.BlogPost) PostDraft {
			return PostDraft{
				Title:     p.Title,
				Slug:      p.Slug,
				Excerpt:   orEmpty(p.Excerpt),
				Content:   p.Content,
				Author:    p.Author,
				Published: p.Published,
				ImageURL:  orEmpty(p.ImageURL),
			}
		},
		Validate: func(d PostDraft) error {
			if d.Title == "" {
				return errs.NewMissingRequiredFieldError("title")
			}
			if d.Content == "" {
				return errs.NewMissingRequiredFieldError("content")
			}
			return nil
		},
		Create: func(d PostDraft) error {
			post := models.BlogPost{
				Title:     d.Title,
				Slug:      d.slug(),
				Excerpt:   nullable(d.Excerpt),
				Content:   d.Content,
				Author:    d.Author,
				Published: d.Published,
				ImageURL:  nullable(d.ImageURL),
			}
			if err := store.Add(&post); err != nil {
				return errs.NewDatabaseError("create", "blog post", err)
			}
			return nil
		},
		Update: func(id uuid.UUID, d PostDraft) error {
			if err := store.UpdateFields(id, d.fields()); err != nil {
				return errs.NewDatabaseError("update", "blog post", err)
			}
			return nil
		},
	})
}

type FAQDraft struct {
	Question  string
	Answer    string
	SortOrder int
}

func (d FAQDraft) fields() map[string]any {
	return map[string]any{
		"question":   d.Question,
		"answer":     d.Answer,
		"sort_order": d.SortOrder,
	}
}

func newFAQTab(store entityStore[models.FAQ]) *Tab[models.FAQ, FAQDraft] {
	return newTab("faq", store, FormSpec[models.FAQ, FAQDraft]{
		NewDraft: func(listLen int) FAQDraft {
			return FAQDraft{SortOrder: listLen}
		},
		DraftFrom: func(f *models.FAQ) FAQDraft {
			return FAQDraft{Question: f.Question, Answer: f.Answer, SortOrder: f.SortOrder}
		},
		Validate: func(d FAQDraft) error {
			if d.Question == "" {
				return errs.NewMissingRequiredFieldError("question")
			}
			if d.Answer == "" {
				return errs.NewMissingRequiredFieldError("answer")
			}
			return nil
		},
		Create: func(d FAQDraft) error {
			faq := models.FAQ{Question: d.Question, Answer: d.Answer, SortOrder: d.SortOrder}
			if err := store.Add(&faq); err != nil {
				return errs.NewDatabaseError("create", "faq", err)
			}
			return nil
		},
		Update: func(id uuid.UUID, d FAQDraft) error {
			if err := store.UpdateFields(id, d.fields()); err != nil {
				return errs.NewDatabaseError("update", "faq", err)
			}
			return nil
		},
	})
}

// CategoryDraft edits features as one comma-joined string; SplitFeatures
// turns it back into the stored list.
type CategoryDraft struct {
	Name            string
	Slug            string
	Description     string
	LongDescription string
	ImageURL        string
	Features        string
}

// SplitFeatures parses the comma-joined features field, trimming whitespace
// and dropping empty items.
func SplitFeatures(s string) []string {
	if s == "" {
		return nil
	}
	var features []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return features
}

func (d CategoryDraft) slug() string {
	if d.Slug != "" {
		return d.Slug
	}
	return models.DeriveSlug(d.Name)
}

func (d CategoryDraft) fields() map[string]any {
	return map[string]any{
		"name":             d.Name,
		"slug":             d.slug(),
		"description":      nullable(d.Description),
		"long_description": nullable(d.LongDescription),
		"image_url":        nullable(d.ImageURL),
		"features":         datatypes.NewJSONSlice(SplitFeatures(d.Features)),
	}
}

func newCategoryTab(store entityStore[models.Category]) *Tab[models.Category, CategoryDraft] {
	return newTab("category", store, FormSpec[models.Category, CategoryDraft]{
		NewDraft: func(int) CategoryDraft {
			return CategoryDraft{}
		},
		DraftFrom: func(c *models.Category) CategoryDraft {
			return CategoryDraft{
				Name:            c.Name,
				Slug:            c.Slug,
				Description:     orEmpty(c.Description),
				LongDescription: orEmpty(c.LongDescription),
				ImageURL:        orEmpty(c.ImageURL),
				Features:        strings.Join(c.Features, ", "),
			}
		},
		Validate: func(d CategoryDraft) error {
			if d.Name == "" {
				return errs.NewMissingRequiredFieldError("name")
			}
			return nil
		},
		Create: func(d CategoryDraft) error {
			category := models.Category{
				Name:            d.Name,
				Slug:            d.slug(),
				Description:     nullable(d.Description),
				LongDescription: nullable(d.LongDescription),
				ImageURL:        nullable(d.ImageURL),
				Features:        datatypes.NewJSONSlice(SplitFeatures(d.Features)),
			}
			if err := store.Add(&category); err != nil {
				return errs.NewDatabaseError("create", "category", err)
			}
			return nil
		},
		Update: func(id uuid.UUID, d CategoryDraft) error {
			if err := store.UpdateFields(id, d.fields()); err != nil {
				return errs.NewDatabaseError("update", "category", err)
			}
			return nil
		},
	})
}

// ProductDraft keeps CategoryID as the raw form value; empty means unlinked.
type ProductDraft struct {
	Name        string
	Price       string
	ImageURL    string
	Description string
	CategoryID  string
	SortOrder   int
}

func (d ProductDraft) categoryID() *uuid.UUID {
	if d.CategoryID == "" {
		return nil
	}
	id, err := uuid.Parse(d.CategoryID)
	if err != nil {
		return nil
	}
	return &id
}

func (d ProductDraft) fields() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"price":       d.Price,
		"image_url":   nullable(d.ImageURL),
		"description": nullable(d.Description),
		"category_id": d.categoryID(),
		"sort_order":  d.SortOrder,
	}
}

func newProductTab(store entityStore[models.Product]) *Tab[models.Product, ProductDraft] {
	return newTab("product", store, FormSpec[models.Product, ProductDraft]{
		NewDraft: func(listLen int) ProductDraft {
			return ProductDraft{SortOrder: listLen}
		},
		DraftFrom: func(p *models.Product) ProductDraft {
			categoryID := ""
			if p.CategoryID != nil {
				categoryID = p.CategoryID.String()
			}
			return ProductDraft{
				Name:        p.Name,
				Price:       p.Price,
				ImageURL:    orEmpty(p.ImageURL),
				Description: orEmpty(p.Description),
				CategoryID:  categoryID,
				SortOrder:   p.SortOrder,
			}
		},
		Validate: func(d ProductDraft) error {
			if d.Name == "" {
				return errs.NewMissingRequiredFieldError("name")
			}
			if d.Price == "" {
				return errs.NewMissingRequiredFieldError("price")
			}
			if d.CategoryID != "" {
				if _, err := uuid.Parse(d.CategoryID); err != nil {
					return errs.NewInvalidFieldError("category_id", "not a valid id")
				}
			}
			return nil
		},
		Create: func(d ProductDraft) error {
			product := models.Product{
				Name:        d.Name,
				Price:       d.Price,
				ImageURL:    nullable(d.ImageURL),
				Description: nullable(d.Description),
				CategoryID:  d.categoryID(),
				SortOrder:   d.SortOrder,
			}
			if err := store.Add(&product); err != nil {
				return errs.NewDatabaseError("create", "product", err)
			}
			return nil
		},
		Update: func(id uuid.UUID, d ProductDraft) error {
			if err := store.UpdateFields(id, d.fields()); err != nil {
				return errs.NewDatabaseError("update", "product", err)
			}
			return nil
		},
	})
}

type ModelDraft struct {
	Name        string
	Designation string
	Quote       string
	ImageURL    string
	SortOrder   int
}

func (d ModelDraft) fields() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"designation": d.Designation,
		"quote":       d.Quote,
		"image_url":   d.ImageURL,
		"sort_order":  d.SortOrder,
	}
}

func newModelTab(store entityStore[models.Model]) *Tab[models.Model, ModelDraft] {
	return newTab("model", store, FormSpec[models.Model, ModelDraft]{
		NewDraft: func(listLen int) ModelDraft {
			return ModelDraft{SortOrder: listLen}
		},
		DraftFrom: func(m *models.Model) ModelDraft {
			return ModelDraft{
				Name:        m.Name,
				Designation: m.Designation,
				Quote:       m.Quote,
				ImageURL:    m.ImageURL,
				SortOrder:   m.SortOrder,
			}
		},
		Validate: func(d ModelDraft) error {
			if d.Name == "" {
				return errs.NewMissingRequiredFieldError("name")
			}
			if d.Quote == "" {
				return errs.NewMissingRequiredFieldError("quote")
			}
			if d.ImageURL == "" {
				return errs.NewMissingRequiredFieldError("image_url")
			}
			return nil
		},
		Create: func(d ModelDraft) error {
			model := models.Model{
				Name:        d.Name,
				Designation: d.Designation,
				Quote:       d.Quote,
				ImageURL:    d.ImageURL,
				SortOrder:   d.SortOrder,
			}
			if err := store.Add(&model); err != nil {
				return errs.NewDatabaseError("create", "model", err)
			}
			return nil
		},
		Update: func(id uuid.UUID, d ModelDraft) error {
			if err := store.UpdateFields(id, d.fields()); err != nil {
				return errs.NewDatabaseError("update", "model", err)
			}
			return nil
		},
	})
}
