package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akademia/akademia/internal/app/models/dto"
	"github.com/akademia/akademia/internal/app/services"
	"github.com/akademia/akademia/internal/middleware"
)

// PostController handles the public feed and post creation
type PostController struct {
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// GetFeed returns all posts, newest first
// @Summary Get the public feed
// @Description Returns every post with the author's name and photo, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FeedPost} "Feed posts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publicacoes [get]
func (c *PostController) GetFeed(ctx *gin.Context) {
	feed, err := c.postService.GetFeed(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load feed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: feed,
	})
}

// CreatePost publishes a new post by the authenticated user
// @Summary Create a post
// @Description Publishes a post with text content, an image URL, or both
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Post} "Created post"
// @Failure 400 {object} dto.ErrorResponse "Empty post"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publicacoes [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid post payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), callerID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", callerID).Msg("Failed to create post")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("postID", post.ID).Int64("userID", callerID).Msg("Post created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: post,
	})
}
