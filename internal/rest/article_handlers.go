package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkravtsov/content-portal/internal/content"
	"github.com/mkravtsov/content-portal/internal/db"
)

type ArticleHandler struct {
	uc  *content.ArticleManager
	log *slog.Logger
}

func NewArticleHandler(uc *content.ArticleManager, log *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		uc:  uc,
		log: log,
	}
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Register mounts the article routes on the given group (base path /post).
func (h *ArticleHandler) Register(g *echo.Group) {
	g.POST("/create_post", h.CreatePost)
	g.GET("/get_post/:id", h.GetPost)
	g.GET("/list_posts", h.ListPosts)
	g.GET("/list_all_posts", h.ListAllPosts)
	g.GET("/list_deleted_posts", h.ListDeletedPosts)
	g.PUT("/update_post/:id", h.UpdatePost)
	g.DELETE("/delete_post/:id", h.DeletePost)
	g.DELETE("/remove_post/:id", h.RemovePost)
}

// CreatePost handles POST /post/create_post and returns the generated
// identifier of the new article.
func (h *ArticleHandler) CreatePost(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id, err := h.uc.CreateArticle(c.Request().Context(), req.Title, req.Content, req.IsPublished)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, id)
}

// GetPost handles GET /post/get_post/:id
func (h *ArticleHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.uc.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.String(http.StatusNotFound, "post not found")
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// ListPosts handles GET /post/list_posts: published articles that are
// not soft-deleted.
func (h *ArticleHandler) ListPosts(c echo.Context) error {
	articles, err := h.uc.PublishedArticles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// ListAllPosts handles GET /post/list_all_posts: every article that is
// not soft-deleted, drafts included.
func (h *ArticleHandler) ListAllPosts(c echo.Context) error {
	articles, err := h.uc.ActiveArticles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// ListDeletedPosts handles GET /post/list_deleted_posts
func (h *ArticleHandler) ListDeletedPosts(c echo.Context) error {
	articles, err := h.uc.DeletedArticles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// UpdatePost handles PUT /post/update_post/:id with a partial body;
// only the fields present in the request are changed.
func (h *ArticleHandler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	found, err := h.uc.UpdateArticle(c.Request().Context(), id, db.ArticlePatch{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if !found {
		return c.String(http.StatusNotFound, "post not found")
	}

	return c.NoContent(http.StatusOK)
}

// DeletePost handles DELETE /post/delete_post/:id, the permanent delete.
func (h *ArticleHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	found, err := h.uc.DeleteArticle(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if !found {
		return c.String(http.StatusNotFound, "post not found")
	}

	return c.NoContent(http.StatusOK)
}

// RemovePost handles DELETE /post/remove_post/:id, the soft delete.
func (h *ArticleHandler) RemovePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	found, err := h.uc.RemoveArticle(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if !found {
		return c.String(http.StatusNotFound, "post not found")
	}

	return c.NoContent(http.StatusOK)
}
