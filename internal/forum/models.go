package forum

// Author is the public slice of a user shown next to posts and replies.
type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Reply struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Content   string `json:"content"`
	Author    Author `json:"author"`
	Upvotes   int    `json:"upvotes"`
	CreatedAt int64  `json:"created_at"`
}

type Post struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Category  string  `json:"category"`
	Author    Author  `json:"author"`
	Pinned    bool    `json:"pinned"`
	Upvotes   int     `json:"upvotes"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
	Replies   []Reply `json:"replies"`
}
