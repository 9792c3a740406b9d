package service

import (
	"context"
	"strings"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/repository"
)

// PortfolioService はギャラリー項目に関するビジネスロジックのインターフェース
type PortfolioService interface {
	List(ctx context.Context) ([]*model.PortfolioItem, error)
	// Featured はトップページ用に最大 model.FeaturedLimit 件を返す
	Featured(ctx context.Context) ([]*model.PortfolioItem, error)
	Create(ctx context.Context, item *model.PortfolioItem) error
	Delete(ctx context.Context, id string) error
}

// PortfolioServiceImpl は PortfolioService の実装
type PortfolioServiceImpl struct {
	repo   repository.PortfolioRepository
	images *ImageHosts
}

// NewPortfolioService は PortfolioServiceImpl を生成する（DI: PortfolioRepository を注入）
func NewPortfolioService(repo repository.PortfolioRepository, images *ImageHosts) PortfolioService {
	if images == nil {
		images = NewImageHosts()
	}
	return &PortfolioServiceImpl{repo: repo, images: images}
}

// List は全件を返す
func (s *PortfolioServiceImpl) List(ctx context.Context) ([]*model.PortfolioItem, error) {
	return s.repo.List(ctx)
}

// Featured は先頭 6 件を返す
func (s *PortfolioServiceImpl) Featured(ctx context.Context) ([]*model.PortfolioItem, error) {
	return s.repo.ListLimited(ctx, model.FeaturedLimit)
}

// Create は入力を検証して項目を追加する
func (s *PortfolioServiceImpl) Create(ctx context.Context, item *model.PortfolioItem) error {
	item.Title = strings.TrimSpace(item.Title)
	item.Image = strings.TrimSpace(item.Image)
	item.Link = strings.TrimSpace(item.Link)
	item.Description = strings.TrimSpace(item.Description)

	switch {
	case item.Title == "":
		return missing("title")
	case item.Image == "":
		return missing("image")
	case item.Link == "":
		return missing("link")
	case item.Description == "":
		return missing("description")
	}

	cat, err := model.ParseCategory(item.Category.String())
	if err != nil {
		return &FieldError{Field: "category", Err: ErrInvalidCategory}
	}
	item.Category = cat

	if !s.images.Allowed(item.Image) {
		return &FieldError{Field: "image", Err: ErrImageHostNotAllowed}
	}
	return s.repo.Create(ctx, item)
}

// Delete は項目を削除する
func (s *PortfolioServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
