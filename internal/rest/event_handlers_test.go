package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
)

func createTestEvent(t *testing.T, name string) Event {
	t.Helper()

	body := fmt.Sprintf(`{"name": %q, "description": "a gathering", "location": "Berlin", "starts_at": "2025-06-01T18:00:00Z"}`, name)
	rec := doRequest(t, http.MethodPost, "/api/event", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var event Event
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}
	if event.ID == 0 {
		t.Fatal("expected database-assigned id")
	}

	t.Cleanup(func() {
		_ = doRequest(t, http.MethodDelete, "/api/event/"+strconv.Itoa(event.ID), "")
	})

	return event
}

func TestEventHandler_CreateAndGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		created := createTestEvent(t, "launch party")

		rec := doRequest(t, http.MethodGet, "/api/event/"+strconv.Itoa(created.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var got Event
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}

		if got.ID != created.ID {
			t.Errorf("expected id %d, got %d", created.ID, got.ID)
		}
		if got.Name != "launch party" {
			t.Errorf("expected name 'launch party', got %q", got.Name)
		}
		if got.Description != "a gathering" || got.Location != "Berlin" {
			t.Errorf("unexpected event payload: %+v", got)
		}
		if !got.StartsAt.Equal(created.StartsAt) {
			t.Errorf("expected starts_at %v, got %v", created.StartsAt, got.StartsAt)
		}
		if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/event/99999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
		if rec.Body.String() != "event not found" {
			t.Errorf("expected 'event not found', got %q", rec.Body.String())
		}
	})

	t.Run("InvalidId", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/event/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestEventHandler_Events(t *testing.T) {
	created := createTestEvent(t, "collection entry")

	rec := doRequest(t, http.MethodGet, "/api/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var events []Event
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("failed to unmarshal events: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events, got empty result")
	}

	found := false
	for _, e := range events {
		if e.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("created event missing from collection")
	}
}

func TestEventHandler_UpdateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		created := createTestEvent(t, "before rename")

		body := fmt.Sprintf(
			`{"id": %d, "name": "after rename", "description": "updated", "location": "Online", "starts_at": "2025-07-01T10:00:00Z"}`,
			created.ID,
		)
		rec := doRequest(t, http.MethodPut, "/api/event", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var updated Event
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}
		if updated.Name != "after rename" || updated.Location != "Online" {
			t.Errorf("unexpected event after update: %+v", updated)
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Errorf("expected updated_at to advance, got %v", updated.UpdatedAt)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("created_at changed unexpectedly: %v", updated.CreatedAt)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodPut, "/api/event", `{"id": 99999, "name": "ghost", "starts_at": "2025-07-01T10:00:00Z"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	t.Run("ReturnsPreDeletionRecord", func(t *testing.T) {
		created := createTestEvent(t, "short-lived")

		rec := doRequest(t, http.MethodDelete, "/api/event/"+strconv.Itoa(created.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var deleted Event
		if err := json.Unmarshal(rec.Body.Bytes(), &deleted); err != nil {
			t.Fatalf("failed to unmarshal event: %v", err)
		}
		if deleted.ID != created.ID || deleted.Name != "short-lived" {
			t.Errorf("unexpected pre-deletion record: %+v", deleted)
		}

		rec = doRequest(t, http.MethodGet, "/api/event/"+strconv.Itoa(created.ID), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, http.MethodDelete, "/api/event/99999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}
