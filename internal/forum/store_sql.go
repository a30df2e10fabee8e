package forum

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrReplyNotFound = errors.New("reply not found")
)

// SQLStore backs the forum with the shared users/posts/replies tables.
// Works against both sqlite and postgres (positional $n placeholders).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// ListPosts returns posts with their replies, pinned first, then newest.
// category filters when non-empty.
func (s *SQLStore) ListPosts(ctx context.Context, category string) ([]Post, error) {
	const base = `SELECT p.id, p.title, p.content, p.category, p.pinned, p.upvotes, p.created_at, p.updated_at,
		u.id, u.username, u.avatar_url
		FROM posts p JOIN users u ON u.id = p.author_id`
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = s.db.QueryContext(ctx, base+` ORDER BY p.pinned DESC, p.created_at DESC`)
	} else {
		rows, err = s.db.QueryContext(ctx, base+` WHERE p.category=$1 ORDER BY p.pinned DESC, p.created_at DESC`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		replies, err := s.listReplies(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Replies = replies
	}
	return posts, nil
}

func (s *SQLStore) GetPost(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT p.id, p.title, p.content, p.category, p.pinned, p.upvotes, p.created_at, p.updated_at,
		u.id, u.username, u.avatar_url
		FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id=$1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, err
	}
	p.Replies, err = s.listReplies(ctx, p.ID)
	if err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *SQLStore) CreatePost(ctx context.Context, title, content, category, authorID string) (Post, error) {
	id := uuid.NewString()
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx, `INSERT INTO posts (id,title,content,category,author_id,pinned,upvotes,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,0,0,$6,$6)`,
		id, title, content, category, authorID, now)
	if err != nil {
		return Post{}, err
	}
	return s.GetPost(ctx, id)
}

func (s *SQLStore) SetPinned(ctx context.Context, id string, pinned bool) (Post, error) {
	v := 0
	if pinned {
		v = 1
	}
	res, err := s.db.ExecContext(ctx, `UPDATE posts SET pinned=$1, updated_at=$2 WHERE id=$3`,
		v, time.Now().Unix(), id)
	if err != nil {
		return Post{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Post{}, ErrPostNotFound
	}
	return s.GetPost(ctx, id)
}

func (s *SQLStore) DeletePost(ctx context.Context, id string) error {
	// Replies cascade via the FK.
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *SQLStore) UpvotePost(ctx context.Context, id string) (Post, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE posts SET upvotes=upvotes+1 WHERE id=$1`, id)
	if err != nil {
		return Post{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Post{}, ErrPostNotFound
	}
	return s.GetPost(ctx, id)
}

func (s *SQLStore) CreateReply(ctx context.Context, postID, content, authorID string) (Reply, error) {
	// Ensure the post exists so the caller gets a clean 404 rather than an
	// FK violation message.
	var exist int
	if err := s.db.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE id=$1`, postID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reply{}, ErrPostNotFound
		}
		return Reply{}, err
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO replies (id,post_id,content,author_id,upvotes,created_at)
		VALUES ($1,$2,$3,$4,0,$5)`,
		id, postID, content, authorID, time.Now().Unix())
	if err != nil {
		return Reply{}, err
	}
	return s.getReply(ctx, id)
}

func (s *SQLStore) DeleteReply(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM replies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReplyNotFound
	}
	return nil
}

func (s *SQLStore) UpvoteReply(ctx context.Context, id string) (Reply, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE replies SET upvotes=upvotes+1 WHERE id=$1`, id)
	if err != nil {
		return Reply{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Reply{}, ErrReplyNotFound
	}
	return s.getReply(ctx, id)
}

// GetReply exposes a single reply, mainly for ownership checks.
func (s *SQLStore) GetReply(ctx context.Context, id string) (Reply, error) {
	return s.getReply(ctx, id)
}

func (s *SQLStore) listReplies(ctx context.Context, postID string) ([]Reply, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT r.id, r.post_id, r.content, r.upvotes, r.created_at,
		u.id, u.username, u.avatar_url
		FROM replies r JOIN users u ON u.id = r.author_id
		WHERE r.post_id=$1 ORDER BY r.created_at ASC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []Reply{}
	for rows.Next() {
		var r Reply
		if err := rows.Scan(&r.ID, &r.PostID, &r.Content, &r.Upvotes, &r.CreatedAt,
			&r.Author.ID, &r.Author.Username, &r.Author.AvatarURL); err != nil {
			return nil, err
		}
		replies = append(replies, r)
	}
	return replies, rows.Err()
}

func (s *SQLStore) getReply(ctx context.Context, id string) (Reply, error) {
	row := s.db.QueryRowContext(ctx, `SELECT r.id, r.post_id, r.content, r.upvotes, r.created_at,
		u.id, u.username, u.avatar_url
		FROM replies r JOIN users u ON u.id = r.author_id WHERE r.id=$1`, id)
	var r Reply
	if err := row.Scan(&r.ID, &r.PostID, &r.Content, &r.Upvotes, &r.CreatedAt,
		&r.Author.ID, &r.Author.Username, &r.Author.AvatarURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reply{}, ErrReplyNotFound
		}
		return Reply{}, err
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var p Post
	var pinned int
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &pinned, &p.Upvotes, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.AvatarURL); err != nil {
		return Post{}, err
	}
	p.Pinned = pinned != 0
	return p, nil
}
