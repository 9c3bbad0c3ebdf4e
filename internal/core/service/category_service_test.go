package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
)

func categoryFixture(t *testing.T) (*CategoryService, *stubUserRepo) {
	t.Helper()
	users := newStubUserRepo()
	for _, name := range []string{"alice", "bob"} {
		if _, err := users.Create(context.Background(), &domain.User{Username: name, Email: name + "@example.com"}); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
	}
	return NewCategoryService(newStubCategoryRepo(), users, zerolog.Nop()), users
}

func TestCategoryService_CreateAndList(t *testing.T) {
	svc, _ := categoryFixture(t)

	created, err := svc.Create(context.Background(), "alice", "  Groceries  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Groceries" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}

	list, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	svc, _ := categoryFixture(t)

	if _, err := svc.Create(context.Background(), "alice", "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCategoryService_Create_DuplicatePerUser(t *testing.T) {
	svc, _ := categoryFixture(t)

	if _, err := svc.Create(context.Background(), "alice", "Groceries"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "alice", "Groceries"); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	// The same name is free for another user.
	if _, err := svc.Create(context.Background(), "bob", "Groceries"); err != nil {
		t.Fatalf("other user's create: %v", err)
	}
}

func TestCategoryService_List_ScopedToUser(t *testing.T) {
	svc, _ := categoryFixture(t)

	if _, err := svc.Create(context.Background(), "alice", "Groceries"); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob must not see alice's categories: %+v", list)
	}
}
