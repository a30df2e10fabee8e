package forum_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/burundanga/burundanga-api/internal/db"
	"github.com/burundanga/burundanga-api/internal/forum"
)

func openTestStore(t *testing.T) *forum.SQLStore {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// One shared in-memory DB per test: the name keeps parallel tests apart,
	// cache=shared keeps the pool's connections on the same DB.
	dbh, err := db.Open(ctx, db.DriverSQLite,
		"file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })

	// Seed two users.
	for _, u := range [][3]string{
		{"u1", "alice", "member"},
		{"u2", "bob", "moderator"},
	} {
		if _, err := dbh.Exec(
			`INSERT INTO users (id,username,email,password_hash,role,avatar_url,created_at)
			 VALUES ($1,$2,$3,'x',$4,'',$5)`,
			u[0], u[1], u[1]+"@example.test", u[2], time.Now().Unix()); err != nil {
			t.Fatalf("seed user %s: %v", u[1], err)
		}
	}
	return forum.NewSQLStore(dbh)
}

func TestCreateAndGetPost(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	p, err := store.CreatePost(ctx, "First post", "hello", "general", "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Author.Username != "alice" {
		t.Fatalf("author = %+v", p.Author)
	}
	got, err := store.GetPost(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "First post" || got.Category != "general" || got.Pinned {
		t.Fatalf("post = %+v", got)
	}
	if len(got.Replies) != 0 {
		t.Fatalf("fresh post has %d replies", len(got.Replies))
	}
}

func TestListPostsPinnedFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	older, _ := store.CreatePost(ctx, "older", "c", "general", "u1")
	newer, _ := store.CreatePost(ctx, "newer", "c", "general", "u1")
	if _, err := store.SetPinned(ctx, older.ID, true); err != nil {
		t.Fatalf("pin: %v", err)
	}

	posts, err := store.ListPosts(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts", len(posts))
	}
	if posts[0].ID != older.ID || !posts[0].Pinned {
		t.Fatalf("pinned post not first: %+v", posts[0])
	}
	if posts[1].ID != newer.ID {
		t.Fatalf("unexpected order: %+v", posts)
	}
}

func TestListPostsByCategory(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	store.CreatePost(ctx, "a", "c", "schemas", "u1")
	store.CreatePost(ctx, "b", "c", "general", "u1")

	posts, err := store.ListPosts(ctx, "schemas")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 1 || posts[0].Category != "schemas" {
		t.Fatalf("filtered list = %+v", posts)
	}
}

func TestRepliesAndCascadeDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	p, _ := store.CreatePost(ctx, "t", "c", "general", "u1")
	r1, err := store.CreateReply(ctx, p.ID, "first", "u2")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if _, err := store.CreateReply(ctx, p.ID, "second", "u1"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	got, _ := store.GetPost(ctx, p.ID)
	if len(got.Replies) != 2 {
		t.Fatalf("replies = %+v", got.Replies)
	}
	found := false
	for _, r := range got.Replies {
		if r.ID == r1.ID && r.Author.Username == "bob" {
			found = true
		}
	}
	if !found {
		t.Fatalf("first reply missing or mis-attributed: %+v", got.Replies)
	}

	if err := store.DeletePost(ctx, p.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if _, err := store.GetReply(ctx, r1.ID); !errors.Is(err, forum.ErrReplyNotFound) {
		t.Fatalf("reply survived post delete: err = %v", err)
	}
}

func TestUpvotes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	p, _ := store.CreatePost(ctx, "t", "c", "general", "u1")
	for i := 0; i < 3; i++ {
		if _, err := store.UpvotePost(ctx, p.ID); err != nil {
			t.Fatalf("upvote: %v", err)
		}
	}
	got, _ := store.GetPost(ctx, p.ID)
	if got.Upvotes != 3 {
		t.Fatalf("upvotes = %d, want 3", got.Upvotes)
	}

	r, _ := store.CreateReply(ctx, p.ID, "r", "u2")
	up, err := store.UpvoteReply(ctx, r.ID)
	if err != nil || up.Upvotes != 1 {
		t.Fatalf("reply upvotes = %+v, %v", up, err)
	}
}

func TestMissingRows(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.GetPost(ctx, "nope"); !errors.Is(err, forum.ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	if err := store.DeletePost(ctx, "nope"); !errors.Is(err, forum.ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	if _, err := store.CreateReply(ctx, "nope", "c", "u1"); !errors.Is(err, forum.ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	if err := store.DeleteReply(ctx, "nope"); !errors.Is(err, forum.ErrReplyNotFound) {
		t.Fatalf("err = %v, want ErrReplyNotFound", err)
	}
}
