package content

import "github.com/mkravtsov/content-portal/internal/db"

func NewArticle(a *db.Article) Article {
	return Article{Article: *a}
}

func NewArticleList(list []db.Article) []Article {
	articles := make([]Article, len(list))
	for i := range list {
		articles[i] = NewArticle(&list[i])
	}
	return articles
}

func NewEventModel(e *db.Event) Event {
	return Event{Event: *e}
}

func NewEventList(list []db.Event) []Event {
	events := make([]Event, len(list))
	for i := range list {
		events[i] = NewEventModel(&list[i])
	}
	return events
}
