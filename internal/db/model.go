// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/google/uuid"
)

var Columns = struct {
	Article struct {
		ID, Title, Content, PublishedAt, IsPublished, IsDeleted, DeletedAt string
	}
	Event struct {
		ID, Name, Description, Location, StartsAt, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Article: struct {
		ID, Title, Content, PublishedAt, IsPublished, IsDeleted, DeletedAt string
	}{
		ID:          "id",
		Title:       "title",
		Content:     "content",
		PublishedAt: "published_at",
		IsPublished: "is_published",
		IsDeleted:   "is_deleted",
		DeletedAt:   "deleted_at",
	},
	Event: struct {
		ID, Name, Description, Location, StartsAt, CreatedAt, UpdatedAt string
	}{
		ID:          "id",
		Name:        "name",
		Description: "description",
		Location:    "location",
		StartsAt:    "starts_at",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	Event struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	Event: struct {
		Name, Alias string
	}{
		Name:  "events",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          uuid.UUID  `pg:"id,pk,type:uuid"`
	Title       string     `pg:"title,use_zero"`
	Content     string     `pg:"content,use_zero"`
	PublishedAt time.Time  `pg:"published_at,use_zero"`
	IsPublished bool       `pg:"is_published,use_zero"`
	IsDeleted   bool       `pg:"is_deleted,use_zero"`
	DeletedAt   *time.Time `pg:"deleted_at"`
}

type Event struct {
	tableName struct{} `pg:"events,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Name        string    `pg:"name,use_zero"`
	Description string    `pg:"description,use_zero"`
	Location    string    `pg:"location,use_zero"`
	StartsAt    time.Time `pg:"starts_at,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
	UpdatedAt   time.Time `pg:"updated_at,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
