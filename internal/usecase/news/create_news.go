package news

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

type CreateNewsInput struct {
	AuthorID uint
	Title    string
	Content  string
	ImageURL string
	// Nil publishes immediately.
	IsPublished *bool
}

type CreateNews struct {
	repo  school.Repository
	audit *audit.Dispatcher
}

func NewCreateNews(
	repo school.Repository,
	audit *audit.Dispatcher,
) *CreateNews {
	return &CreateNews{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateNews) Execute(
	ctx context.Context,
	in CreateNewsInput,
) (*models.News, error) {

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, httperr.ErrBusiness("news_empty")
	}

	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	item := &models.News{
		Title:       title,
		Content:     content,
		AuthorID:    in.AuthorID,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		IsPublished: published,
	}
	if err := uc.repo.CreateNews(ctx, item); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AuthorID,
		Action:   audit.ActionNewsCreated,
		Entity:   "news",
		EntityID: &item.ID,
		Metadata: map[string]any{"title": item.Title, "is_published": published},
	})

	return item, nil
}
