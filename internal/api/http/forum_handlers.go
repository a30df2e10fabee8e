package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/burundanga/burundanga-api/internal/audit"
	auth "github.com/burundanga/burundanga-api/internal/auth/middleware"
	"github.com/burundanga/burundanga-api/internal/forum"
	"github.com/burundanga/burundanga-api/internal/rbac"
)

func forumStatus(err error) int {
	if errors.Is(err, forum.ErrPostNotFound) || errors.Is(err, forum.ErrReplyNotFound) {
		return 404
	}
	return 500
}

func ListPostsHandler(store *forum.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := store.ListPosts(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(posts)
	}
}

func GetPostHandler(store *forum.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.GetPost(r.Context(), chi.URLParam(r, "postID"))
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

func CreatePostHandler(store *forum.SQLStore, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Category string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" || strings.TrimSpace(req.Content) == "" {
			http.Error(w, "title and content required", 400)
			return
		}
		p, err := store.CreatePost(r.Context(), req.Title, req.Content, req.Category,
			auth.SubjectFromContext(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypePostCreated, p.ID,
				map[string]any{"author_id": p.Author.ID, "category": p.Category})
		}
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(p)
	}
}

// DeletePostHandler lets the author delete their own post; moderators and
// admins can delete any post.
func DeletePostHandler(store *forum.SQLStore, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "postID")
		p, err := store.GetPost(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		sub := auth.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if p.Author.ID != sub && !rbac.HasPermission(role, "post:delete-any") {
			http.Error(w, "forbidden", 403)
			return
		}
		if err := store.DeletePost(r.Context(), id); err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypePostDeleted, id,
				map[string]any{"deleted_by": sub})
		}
		w.WriteHeader(204)
	}
}

func UpvotePostHandler(store *forum.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.UpvotePost(r.Context(), chi.URLParam(r, "postID"))
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// PinPostHandler toggles the pinned flag. Route is gated on post:pin, so only
// moderators and admins reach it.
func PinPostHandler(store *forum.SQLStore, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Pinned bool `json:"pinned"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		p, err := store.SetPinned(r.Context(), chi.URLParam(r, "postID"), req.Pinned)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypePostPinned, p.ID,
				map[string]any{"pinned": req.Pinned, "by": auth.SubjectFromContext(r.Context())})
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

func CreateReplyHandler(store *forum.SQLStore, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			http.Error(w, "content required", 400)
			return
		}
		rep, err := store.CreateReply(r.Context(), chi.URLParam(r, "postID"), req.Content,
			auth.SubjectFromContext(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypeReplyCreated, rep.ID,
				map[string]any{"post_id": rep.PostID, "author_id": rep.Author.ID})
		}
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(rep)
	}
}

func DeleteReplyHandler(store *forum.SQLStore, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "replyID")
		rep, err := store.GetReply(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		sub := auth.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if rep.Author.ID != sub && !rbac.HasPermission(role, "reply:delete-any") {
			http.Error(w, "forbidden", 403)
			return
		}
		if err := store.DeleteReply(r.Context(), id); err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypeReplyDeleted, id,
				map[string]any{"deleted_by": sub})
		}
		w.WriteHeader(204)
	}
}

func UpvoteReplyHandler(store *forum.SQLStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := store.UpvoteReply(r.Context(), chi.URLParam(r, "replyID"))
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		_ = json.NewEncoder(w).Encode(rep)
	}
}
