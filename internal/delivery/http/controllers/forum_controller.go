package controllers

import (
	"log/slog"
	"net/http"

	"mezcaltasting/internal/delivery/http/helpers"
	"mezcaltasting/internal/domain"
)

type ForumController struct {
	Logger  *slog.Logger
	Service domain.ForumService
}

func NewForumController(logger *slog.Logger, svc domain.ForumService) *ForumController {
	return &ForumController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ForumController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteDomainError(w, err)
}

// ListPosts godoc
// @Summary List forum posts from the external blog
// @Tags forum
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.BlogPost}
// @Router /forum/posts [get]
func (c *ForumController) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.Service.ListPosts(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get a forum post by ID
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse{data=domain.BlogPost}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /forum/posts/{id} [get]
func (c *ForumController) GetPost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing post id")
		return
	}
	post, err := c.Service.GetPost(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// ListComments godoc
// @Summary List local comments on a post
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Comment}
// @Router /forum/posts/{id}/comments [get]
func (c *ForumController) ListComments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing post id")
		return
	}
	comments, err := c.Service.ListComments(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, comments)
}

// AddCommentRequest is the request body for POST /forum/posts/{id}/comments.
type AddCommentRequest struct {
	Author   string `json:"author"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// AddComment godoc
// @Summary Add a local comment to a post
// @Description Comments are stored on-device only and never sent to the blog API. A blank author is stored as anonymous.
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body controllers.AddCommentRequest true "Comment"
// @Success 201 {object} helpers.APIResponse{data=domain.Comment}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /forum/posts/{id}/comments [post]
func (c *ForumController) AddComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing post id")
		return
	}
	var req AddCommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.AddComment(r.Context(), id, &domain.Comment{
		Author:   req.Author,
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, comment)
}
