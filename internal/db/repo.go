package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// ArticlePatch carries the optional fields of a partial article update.
// A nil field is left unchanged.
type ArticlePatch struct {
	Title       *string
	Content     *string
	IsPublished *bool
	PublishedAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.IsPublished == nil && p.PublishedAt == nil
}

func (r *Repository) CreateArticle(ctx context.Context, article *Article) error {
	_, err := r.db.ModelContext(ctx, article).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

func (r *Repository) ArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

// PublishedArticles returns articles that are published and not soft-deleted.
func (r *Repository) PublishedArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Where(`"t"."is_deleted" = ?`, false).
		Where(`"t"."is_published" = ?`, true).
		OrderExpr(`"t"."published_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query published articles: %w", err)
	}

	return articles, nil
}

// ActiveArticles returns all articles that are not soft-deleted,
// published or not.
func (r *Repository) ActiveArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Where(`"t"."is_deleted" = ?`, false).
		OrderExpr(`"t"."published_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query active articles: %w", err)
	}

	return articles, nil
}

// DeletedArticles returns the soft-deleted articles.
func (r *Repository) DeletedArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Where(`"t"."is_deleted" = ?`, true).
		OrderExpr(`"t"."published_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query deleted articles: %w", err)
	}

	return articles, nil
}

// UpdateArticle applies the non-nil patch fields to the article and
// returns the number of affected rows. An empty patch degrades to an
// existence check so the caller can still distinguish 200 from 404.
func (r *Repository) UpdateArticle(ctx context.Context, id uuid.UUID, patch ArticlePatch) (int, error) {
	if patch.IsEmpty() {
		count, err := r.db.ModelContext(ctx, (*Article)(nil)).
			Where(`"t"."id" = ?`, id).
			Count()
		if err != nil {
			return 0, fmt.Errorf("failed to check article exists: %w", err)
		}
		return count, nil
	}

	query := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."id" = ?`, id)

	if patch.Title != nil {
		query = query.Set(`"title" = ?`, *patch.Title)
	}
	if patch.Content != nil {
		query = query.Set(`"content" = ?`, *patch.Content)
	}
	if patch.IsPublished != nil {
		query = query.Set(`"is_published" = ?`, *patch.IsPublished)
	}
	if patch.PublishedAt != nil {
		query = query.Set(`"published_at" = ?`, *patch.PublishedAt)
	}

	res, err := query.Update()
	if err != nil {
		return 0, fmt.Errorf("failed to update article: %w", err)
	}

	return res.RowsAffected(), nil
}

// DeleteArticle permanently removes the article row.
func (r *Repository) DeleteArticle(ctx context.Context, id uuid.UUID) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete article: %w", err)
	}

	return res.RowsAffected(), nil
}

// SoftDeleteArticle marks the article deleted, stamping both the flag
// and the timestamp in one statement.
func (r *Repository) SoftDeleteArticle(ctx context.Context, id uuid.UUID, deletedAt time.Time) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."id" = ?`, id).
		Set(`"is_deleted" = ?`, true).
		Set(`"deleted_at" = ?`, deletedAt).
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to mark article deleted: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.db.ModelContext(ctx, &events).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}

func (r *Repository) EventByID(ctx context.Context, id int) (*Event, error) {
	event := &Event{}
	err := r.db.ModelContext(ctx, event).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return event, nil
}

// CreateEvent inserts the event and fills the database-assigned id.
func (r *Repository) CreateEvent(ctx context.Context, event *Event) error {
	_, err := r.db.ModelContext(ctx, event).
		Returning("*").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// UpdateEvent replaces all mutable columns of the event row identified
// by event.ID and returns the number of affected rows.
func (r *Repository) UpdateEvent(ctx context.Context, event *Event) (int, error) {
	res, err := r.db.ModelContext(ctx, event).
		Column(
			Columns.Event.Name,
			Columns.Event.Description,
			Columns.Event.Location,
			Columns.Event.StartsAt,
			Columns.Event.UpdatedAt,
		).
		WherePK().
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to update event: %w", err)
	}

	return res.RowsAffected(), nil
}

// DeleteEvent removes the event row and returns the record as it was
// before deletion, or nil when no such row exists. The read and the
// delete are two statements; the API offers no cross-statement
// consistency guarantee here.
func (r *Repository) DeleteEvent(ctx context.Context, id int) (*Event, error) {
	event, err := r.EventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	res, err := r.db.ModelContext(ctx, (*Event)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return event, nil
}
