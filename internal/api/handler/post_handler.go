package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openpress/blog-system/internal/api/metrics"
	"github.com/openpress/blog-system/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. Domain errors
// propagate to the central error handler for status mapping.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), userID, ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(detail))
}

// List handles GET /api/posts. Absent or non-numeric page/limit values
// fall back to the defaults (1 and 10).
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Posts per page (default 10)"
// @Success      200    {object}  listPostsResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	posts := make([]postSummaryResponse, 0, len(result.Items))
	for _, item := range result.Items {
		posts = append(posts, toPostSummaryResponse(item))
	}

	return c.JSON(http.StatusOK, listPostsResponse{
		CurrentPage:  result.CurrentPage,
		TotalPages:   result.TotalPages,
		TotalPosts:   result.TotalCount,
		PostsPerPage: result.PageSize,
		HasNextPage:  result.HasNextPage,
		Posts:        posts,
	})
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200 {object}  postResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(detail))
}

// Update handles PUT /api/posts/:id. Only the author may update; absent
// fields keep their current value.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.UpdatePostFields{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(detail))
}

// Delete handles DELETE /api/posts/:id. Only the author may delete.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      200 {object}  messageResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}

// ToggleLike handles POST /api/posts/:id/toggle-like. Any authenticated
// user may like any post; a second call undoes the first.
//
// @Summary      Toggle a like on a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      200 {object}  toggleLikeResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/posts/{id}/toggle-like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.service.ToggleLike(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	msg := "Post unliked"
	label := "unliked"
	if result.Liked {
		msg = "Post liked"
		label = "liked"
	}
	metrics.LikesToggledTotal.WithLabelValues(label).Inc()

	return c.JSON(http.StatusOK, toggleLikeResponse{Message: msg, Liked: result.Liked})
}

// AddComment handles POST /api/posts/:id/comments. Not owner-restricted.
//
// @Summary      Add a comment to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      201   {object}  addCommentResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, addCommentResponse{
		Message: "Comment added successfully",
		Comment: toCommentResponse(comment),
	})
}
