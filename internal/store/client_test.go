package store_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/baalimago/dbai/internal/mockstore"
	"github.com/baalimago/dbai/internal/store"
)

func testClient(t *testing.T) *store.Client {
	t.Helper()
	srv := httptest.NewServer(mockstore.New())
	t.Cleanup(srv.Close)
	return store.New(srv.URL, "test-key", false)
}

func TestCreateThenRetrieve_RoundTrip(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.Create(ctx, "a@x.com", "A", "B")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned creation timestamp")
	}

	got, found, err := c.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if !found {
		t.Fatal("expected created customer to be retrievable")
	}
	if got.Email != "a@x.com" || got.FullName != "A" || got.Bio != "B" {
		t.Errorf("retrieved fields don't match created record: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	if _, err := c.Create(ctx, "a@x.com", "First", "original bio"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := c.Create(ctx, "a@x.com", "Second", "other bio")
	var dup store.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got: %v", err)
	}
	if dup.Email != "a@x.com" {
		t.Errorf("expected duplicate error to name the email, got %q", dup.Email)
	}

	// The first record must be untouched by the failed attempt
	got, found, err := c.GetByEmail(ctx, "a@x.com")
	if err != nil || !found {
		t.Fatalf("retrieve after duplicate failed: %v, found: %v", err, found)
	}
	if got.FullName != "First" || got.Bio != "original bio" {
		t.Errorf("first record altered by duplicate create: %+v", got)
	}
}

func TestGetByEmail_NotFoundIsNormal(t *testing.T) {
	c := testClient(t)
	_, found, err := c.GetByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("expected no error for missing record, got: %v", err)
	}
	if found {
		t.Error("expected found == false")
	}
}

func TestUpdateByEmail(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()
	if _, err := c.Create(ctx, "a@x.com", "A", "old bio"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newBio := "new bio"
	updated, err := c.UpdateByEmail(ctx, "a@x.com", nil, &newBio)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Bio != "new bio" {
		t.Errorf("expected bio updated, got %q", updated.Bio)
	}
	if updated.FullName != "A" {
		t.Errorf("expected untouched full name, got %q", updated.FullName)
	}
}

func TestUpdateByEmail_NotFound(t *testing.T) {
	c := testClient(t)
	name := "Someone"
	_, err := c.UpdateByEmail(context.Background(), "nobody@x.com", &name, nil)
	var notFound store.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got: %v", err)
	}
}

func TestDeleteByEmail(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()
	if _, err := c.Create(ctx, "a@x.com", "A", "B"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	removed, err := c.DeleteByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed.Email != "a@x.com" {
		t.Errorf("expected confirmation of removed record, got: %+v", removed)
	}

	_, found, err := c.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("retrieve after delete failed: %v", err)
	}
	if found {
		t.Error("expected record to be gone after delete")
	}
}

func TestDeleteByEmail_NotFound(t *testing.T) {
	c := testClient(t)
	_, err := c.DeleteByEmail(context.Background(), "nobody@x.com")
	var notFound store.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got: %v", err)
	}
}

func TestTransportError_IsNotDomainError(t *testing.T) {
	srv := httptest.NewServer(mockstore.New())
	c := store.New(srv.URL, "test-key", false)
	srv.Close()

	_, _, err := c.GetByEmail(context.Background(), "a@x.com")
	if err == nil {
		t.Fatal("expected transport error from closed server")
	}
	var notFound store.NotFoundError
	var dup store.DuplicateError
	if errors.As(err, &notFound) || errors.As(err, &dup) {
		t.Errorf("transport failure misclassified as domain error: %v", err)
	}
}
