package console

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/stride-footwear/site-backend/database"
	"github.com/stride-footwear/site-backend/models"
)

type TabID string

const (
	TabDashboard  TabID = "dashboard"
	TabPosts      TabID = "posts"
	TabMessages   TabID = "messages"
	TabFaqs       TabID = "faqs"
	TabCategories TabID = "categories"
	TabProducts   TabID = "products"
	TabModels     TabID = "models"
)

// Authorizer gates entry into the console.
type Authorizer interface {
	Authorize(token string) (*models.Session, error)
}

// Console composes the session guard, the six entity tabs and the dashboard.
// All state is explicit on this struct; there is no process-wide singleton.
type Console struct {
	guard  Authorizer
	logger zerolog.Logger

	Posts      *Tab[models.BlogPost, PostDraft]
	Faqs       *Tab[models.FAQ, FAQDraft]
	Categories *Tab[models.Category, CategoryDraft]
	Products   *Tab[models.Product, ProductDraft]
	Models     *Tab[models.Model, ModelDraft]
	Messages   *MessageList

	mu      sync.Mutex
	active  TabID
	session *models.Session
}

// New wires a console onto the shared database.
func New(db database.Database, guard Authorizer) *Console {
	return &Console{
		guard:      guard,
		logger:     log.With().Str("handlerName", "adminConsole").Logger(),
		Posts:      newPostTab(db.BlogPostRepo()),
		Faqs:       newFAQTab(db.FAQRepo()),
		Categories: newCategoryTab(db.CategoryRepo()),
		Products:   newProductTab(db.ProductRepo()),
		Models:     newModelTab(db.ModelRepo()),
		Messages:   newMessageList(db.ContactSubmissionRepo()),
		active:     TabDashboard,
	}
}

// Enter runs the session guard. Nothing in the console may be used before
// Enter succeeds.
func (c *Console) Enter(token string) error {
	session, err := c.guard.Authorize(token)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	return nil
}

// Session returns the admin session established by Enter, or nil.
func (c *Console) Session() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Load issues the six list queries concurrently and waits for all to settle.
// The queries do not share state and a failure of one does not cancel the
// others: a failed list simply renders as an empty tab. The returned error is
// the first failure, for reporting only; succeeded tabs are populated either
// way.
func (c *Console) Load() error {
	var g errgroup.Group
	g.Go(c.Posts.Refresh)
	g.Go(c.Messages.Refresh)
	g.Go(c.Faqs.Refresh)
	g.Go(c.Categories.Refresh)
	g.Go(c.Products.Refresh)
	g.Go(c.Models.Refresh)

	if err := g.Wait(); err != nil {
		c.logger.Error().Err(err).Msg("partial console load")
		return err
	}
	return nil
}

func (c *Console) ActiveTab() TabID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Console) SetActiveTab(tab TabID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = tab
}

// DashboardCounts is the dashboard summary.
type DashboardCounts struct {
	Posts          int `json:"posts"`
	PublishedPosts int `json:"published_posts"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unread_messages"`
	Faqs           int `json:"faqs"`
	Categories     int `json:"categories"`
	Products       int `json:"products"`
	Models         int `json:"models"`
}

// Dashboard measures the already-fetched lists; it performs no query of its
// own.
func (c *Console) Dashboard() DashboardCounts {
	counts := DashboardCounts{
		Posts:      len(c.Posts.Records()),
		Faqs:       len(c.Faqs.Records()),
		Categories: len(c.Categories.Records()),
		Products:   len(c.Products.Records()),
		Models:     len(c.Models.Records()),
	}
	for _, post := range c.Posts.Records() {
		if post.Published {
			counts.PublishedPosts++
		}
	}
	for _, message := range c.Messages.Records() {
		counts.Messages++
		if !message.IsRead {
			counts.UnreadMessages++
		}
	}
	return counts
}
