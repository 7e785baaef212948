package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
	"github.com/BruksfildServices01/dance-school/internal/usecase/news"
)

type NewsHandler struct {
	repo   school.Repository
	create *news.CreateNews
	log    logrus.FieldLogger
}

func NewNewsHandler(
	repo school.Repository,
	create *news.CreateNews,
	log logrus.FieldLogger,
) *NewsHandler {
	return &NewsHandler{repo: repo, create: create, log: log}
}

type CreateNewsRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=200"`
	IsPublished *bool  `json:"is_published"`
}

func (h *NewsHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	items, err := h.repo.ListPublishedNews(c.Request.Context(), page)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

// Get hides drafts behind the same 404 as missing items.
func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := h.repo.GetNews(c.Request.Context(), id)
	if errors.Is(err, school.ErrNotFound) || (err == nil && !item.IsPublished) {
		httperr.NotFound(c, "news_not_found", "News not found.")
		return
	}
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *NewsHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Not authenticated.")
		return
	}

	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	item, err := h.create.Execute(c.Request.Context(), news.CreateNewsInput{
		AuthorID:    user.ID,
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, item)
}
