package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/repositories"
	"github.com/akademia/akademia/internal/pkg/apperrors"
)

// PostService handles the public feed
type PostService interface {
	CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Post, error)
	GetFeed(ctx context.Context) ([]models.FeedPost, error)
}

type postService struct {
	postRepo repositories.IPostRepository
	logger   zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.IPostRepository, logger zerolog.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePost inserts a feed post for the authenticated user. A post needs
// text, an image, or both.
func (s *postService) CreatePost(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*models.Post, error) {
	conteudo := normalizeOptional(req.Conteudo)
	imagem := normalizeOptional(req.ImagemURL)

	if conteudo == nil && imagem == nil {
		return nil, apperrors.NewValidationError("a post needs content or an image")
	}

	post := &models.Post{
		UsuarioID: userID,
		Conteudo:  conteudo,
		ImagemURL: imagem,
	}

	id, createdAt, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	post.ID = id
	post.DataCriacao = createdAt
	return post, nil
}

// GetFeed returns all posts, newest first
func (s *postService) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.postRepo.GetFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching feed: %w", err)
	}
	return posts, nil
}

// normalizeOptional treats blank strings as absent
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
