package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkravtsov/content-portal/internal/db"
)

// ArticleStore is the subset of the repository the article manager needs.
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *db.Article) error
	ArticleByID(ctx context.Context, id uuid.UUID) (*db.Article, error)
	PublishedArticles(ctx context.Context) ([]db.Article, error)
	ActiveArticles(ctx context.Context) ([]db.Article, error)
	DeletedArticles(ctx context.Context) ([]db.Article, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, patch db.ArticlePatch) (int, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) (int, error)
	SoftDeleteArticle(ctx context.Context, id uuid.UUID, deletedAt time.Time) (int, error)
}

type ArticleManager struct {
	db ArticleStore
}

func NewArticleManager(store ArticleStore) *ArticleManager {
	return &ArticleManager{
		db: store,
	}
}

// CreateArticle inserts a new article with a generated identifier and
// the current time as publication timestamp, and returns the identifier.
func (m *ArticleManager) CreateArticle(ctx context.Context, title, content string, isPublished bool) (uuid.UUID, error) {
	article := &db.Article{
		ID:          uuid.New(),
		Title:       title,
		Content:     content,
		PublishedAt: time.Now(),
		IsPublished: isPublished,
		IsDeleted:   false,
	}

	if err := m.db.CreateArticle(ctx, article); err != nil {
		return uuid.Nil, fmt.Errorf("db create article: %w", err)
	}

	return article.ID, nil
}

func (m *ArticleManager) ArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	dbArticle, err := m.db.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// PublishedArticles returns articles visible to readers: published and
// not soft-deleted.
func (m *ArticleManager) PublishedArticles(ctx context.Context) ([]Article, error) {
	list, err := m.db.PublishedArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get published articles: %w", err)
	}

	return NewArticleList(list), nil
}

// ActiveArticles returns every article that is not soft-deleted,
// including drafts.
func (m *ArticleManager) ActiveArticles(ctx context.Context) ([]Article, error) {
	list, err := m.db.ActiveArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get active articles: %w", err)
	}

	return NewArticleList(list), nil
}

func (m *ArticleManager) DeletedArticles(ctx context.Context) ([]Article, error) {
	list, err := m.db.DeletedArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get deleted articles: %w", err)
	}

	return NewArticleList(list), nil
}

// UpdateArticle applies the patch and reports whether the article exists.
func (m *ArticleManager) UpdateArticle(ctx context.Context, id uuid.UUID, patch db.ArticlePatch) (bool, error) {
	affected, err := m.db.UpdateArticle(ctx, id, patch)
	if err != nil {
		return false, fmt.Errorf("db update article: %w", err)
	}

	return affected > 0, nil
}

// DeleteArticle permanently removes the article. This is the hard
// delete path; see RemoveArticle for the soft delete.
func (m *ArticleManager) DeleteArticle(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := m.db.DeleteArticle(ctx, id)
	if err != nil {
		return false, fmt.Errorf("db delete article: %w", err)
	}

	return affected > 0, nil
}

// RemoveArticle soft-deletes the article, setting the deletion flag and
// timestamp together.
func (m *ArticleManager) RemoveArticle(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := m.db.SoftDeleteArticle(ctx, id, time.Now())
	if err != nil {
		return false, fmt.Errorf("db remove article: %w", err)
	}

	return affected > 0, nil
}
