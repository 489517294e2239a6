package store

import (
	"context"
	"errors"
	"testing"
)

func TestVoteToggleStateMachine(t *testing.T) {
	db := testOpen(t, "store_vote_toggle")
	posts := NewPostStore(db)
	votes := NewVoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", "alice")
	post, err := posts.Create(ctx, "Hello", "World", true, alice.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	// Absent -> Present.
	if err := votes.Add(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	count, err := votes.Count(ctx, post.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 vote, got %d", count)
	}

	// Present + add = conflict, not a no-op.
	if err := votes.Add(ctx, alice.ID, post.ID); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}

	// Present -> Absent.
	if err := votes.Remove(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	count, err = votes.Count(ctx, post.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 votes, got %d", count)
	}

	// Absent + remove = not found.
	if err := votes.Remove(ctx, alice.ID, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVoteOnMissingPost(t *testing.T) {
	db := testOpen(t, "store_vote_missing_post")
	votes := NewVoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", "alice")

	if err := votes.Add(ctx, alice.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing post, got %v", err)
	}
}

func TestVotesAreIndependentPerUser(t *testing.T) {
	db := testOpen(t, "store_vote_per_user")
	posts := NewPostStore(db)
	votes := NewVoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", "alice")
	bob := seedUser(t, db, "bob@example.com", "bob")
	post, err := posts.Create(ctx, "Hello", "World", true, alice.ID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := votes.Add(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("alice add: %v", err)
	}
	if err := votes.Add(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("bob add: %v", err)
	}

	count, err := votes.Count(ctx, post.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 votes, got %d", count)
	}

	// Removing alice's vote leaves bob's intact.
	if err := votes.Remove(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	count, err = votes.Count(ctx, post.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 vote, got %d", count)
	}
}
