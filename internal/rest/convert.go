package rest

import "github.com/mkravtsov/content-portal/internal/content"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a content.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		IsPublished: a.IsPublished,
		IsDeleted:   a.IsDeleted,
		DeletedAt:   a.DeletedAt,
	}
}

func NewArticles(list []content.Article) []Article {
	return Map(list, NewArticle)
}

func NewEvent(e content.Event) Event {
	return Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func NewEvents(list []content.Event) []Event {
	return Map(list, NewEvent)
}
