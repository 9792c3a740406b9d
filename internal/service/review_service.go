package service

import (
	"context"
	"strings"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/repository"
)

// ReviewService はお客様の声に関するビジネスロジックのインターフェース
type ReviewService interface {
	List(ctx context.Context) ([]*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id string) error
}

// ReviewServiceImpl は ReviewService の実装
type ReviewServiceImpl struct {
	repo repository.ReviewRepository
}

// NewReviewService は ReviewServiceImpl を生成する（DI: ReviewRepository を注入）
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{repo: repo}
}

func (s *ReviewServiceImpl) List(ctx context.Context) ([]*model.Review, error) {
	return s.repo.List(ctx)
}

// Create は評価 1..5 と必須項目を検証して追加する
func (s *ReviewServiceImpl) Create(ctx context.Context, review *model.Review) error {
	review.Name = strings.TrimSpace(review.Name)
	review.Date = strings.TrimSpace(review.Date)
	review.Text = strings.TrimSpace(review.Text)

	switch {
	case review.Name == "":
		return missing("name")
	case review.Date == "":
		return missing("date")
	case review.Text == "":
		return missing("text")
	}
	if !model.ValidRating(review.Rating) {
		return &FieldError{Field: "rating", Err: ErrInvalidRating}
	}
	return s.repo.Create(ctx, review)
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
