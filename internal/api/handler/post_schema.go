package handler

import (
	"time"

	"github.com/openpress/blog-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createPostRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// updatePostRequest uses pointers so "field absent" (keep current value)
// is distinguishable from "field present but empty" (rejected).
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// --- Response types ---
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

// authorResponse is the display-safe identity subset: never more than
// the id and username.
type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type commentResponse struct {
	Content   string         `json:"content"`
	Author    authorResponse `json:"author"`
	CreatedAt time.Time      `json:"created_at"`
}

type postResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    authorResponse    `json:"author"`
	Likes     []string          `json:"likes"`
	Comments  []commentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// postSummaryResponse is the list item; comments are reduced to a count
// to keep list payloads small.
type postSummaryResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Author       authorResponse `json:"author"`
	LikeCount    int            `json:"like_count"`
	CommentCount int            `json:"comment_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// listPostsResponse keeps the original public pagination contract:
// currentPage, totalPages, totalPosts, postsPerPage, hasNextPage, posts.
type listPostsResponse struct {
	CurrentPage  int                   `json:"currentPage"`
	TotalPages   int                   `json:"totalPages"`
	TotalPosts   int64                 `json:"totalPosts"`
	PostsPerPage int                   `json:"postsPerPage"`
	HasNextPage  bool                  `json:"hasNextPage"`
	Posts        []postSummaryResponse `json:"posts"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type toggleLikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

type addCommentResponse struct {
	Message string          `json:"message"`
	Comment commentResponse `json:"comment"`
}

// --- Mapping helpers ---

func toPostResponse(d *ports.PostDetail) postResponse {
	comments := make([]commentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, toCommentResponse(&c))
	}
	return postResponse{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		Author: authorResponse{
			ID:       d.AuthorID,
			Username: d.AuthorUsername,
		},
		Likes:     d.Likes,
		Comments:  comments,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toCommentResponse(v *ports.CommentView) commentResponse {
	return commentResponse{
		Content: v.Content,
		Author: authorResponse{
			ID:       v.AuthorID,
			Username: v.AuthorUsername,
		},
		CreatedAt: v.CreatedAt,
	}
}

func toPostSummaryResponse(s ports.PostSummary) postSummaryResponse {
	return postSummaryResponse{
		ID:      s.ID,
		Title:   s.Title,
		Content: s.Content,
		Author: authorResponse{
			ID:       s.AuthorID,
			Username: s.AuthorUsername,
		},
		LikeCount:    s.LikeCount,
		CommentCount: s.CommentCount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
