package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/errs"
	"github.com/stride-footwear/site-backend/models"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// blogPostPayload is the editable field set of a post. Pointers distinguish
// "absent" from "set to zero" so updates stay partial: columns whose field is
// absent are left unmodified.
type blogPostPayload struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
	ImageURL  *string `json:"image_url"`
}

// getAllBlogPosts retrieves every post, drafts included, newest first.
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}
		h.responder.WriteJSON(w, posts)
	}
}

// createBlogPost creates a new post. Title and content are required; the slug
// is derived from the title when absent.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blogPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		if payload.Title == nil || *payload.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if payload.Content == nil || *payload.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		post := models.BlogPost{
			Title:   *payload.Title,
			Content: *payload.Content,
			Author:  models.DefaultAuthor,
		}
		if payload.Author != nil && *payload.Author != "" {
			post.Author = *payload.Author
		}
		if payload.Slug != nil && *payload.Slug != "" {
			post.Slug = *payload.Slug
		} else {
			post.Slug = models.DeriveSlug(post.Title)
		}
		if payload.Excerpt != nil {
			post.Excerpt = nullable(*payload.Excerpt)
		}
		if payload.ImageURL != nil {
			post.ImageURL = nullable(*payload.ImageURL)
		}
		if payload.Published != nil {
			post.Published = *payload.Published
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		h.responder.WriteCreated(w, post)
	}
}

// updateBlogPost applies a partial update to an existing post.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var payload blogPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError(err))
			return
		}

		fields := map[string]any{}
		if payload.Title != nil {
			if *payload.Title == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
				return
			}
			fields["title"] = *payload.Title
		}
		if payload.Content != nil {
			if *payload.Content == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
				return
			}
			fields["content"] = *payload.Content
		}
		if payload.Slug != nil {
			slug := *payload.Slug
			if slug == "" {
				title := existing.Title
				if payload.Title != nil {
					title = *payload.Title
				}
				slug = models.DeriveSlug(title)
			}
			fields["slug"] = slug
		}
		if payload.Author != nil {
			fields["author"] = *payload.Author
		}
		if payload.Published != nil {
			fields["published"] = *payload.Published
		}
		if payload.Excerpt != nil {
			fields["excerpt"] = nullable(*payload.Excerpt)
		}
		if payload.ImageURL != nil {
			fields["image_url"] = nullable(*payload.ImageURL)
		}

		if len(fields) > 0 {
			if err := h.blogPostRepo.UpdateFields(blogPostID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
				return
			}
		}

		updated, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog post", "blog_post", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlogPost deletes a post by id. The confirmation step happens in the
// console before this endpoint is ever called; there is no undo.
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
