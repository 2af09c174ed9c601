package rest

import (
	"net/http"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/rest/response"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// CommentHandler represent the httphandler for comment threads.
// Article existence/publication is gated here, in front of the thread
// service, via the ArticleService collaborator.
type CommentHandler struct {
	Service        domain.CommentUsecase
	ArticleService domain.ArticleUsecase
}

func NewCommentHandler(svc domain.CommentUsecase, articleSvc domain.ArticleUsecase) *CommentHandler {
	return &CommentHandler{
		Service:        svc,
		ArticleService: articleSvc,
	}
}

// CreateComment will store a comment (or a reply) on a published article
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	// Get user ID from context (set by authentication middleware)
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	ctx := c.Request.Context()
	if err := h.ArticleService.CheckPublished(ctx, aid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	comment := req.ToDomain(aid, userID.(int64))
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// FetchCommentsByArticle returns the root comments of a published article
// with their reply trees
func (h *CommentHandler) FetchCommentsByArticle(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	ctx := c.Request.Context()
	if err := h.ArticleService.CheckPublished(ctx, aid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	comments, err := h.Service.FetchByArticle(ctx, aid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, response.NewCommentFromDomain(comment))
	}
	c.JSON(http.StatusOK, res)
}

// GetCommentByID returns a single comment with its reply tree
func (h *CommentHandler) GetCommentByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comment, err := h.Service.GetByID(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// UpdateComment replaces the content of the requester's own comment
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	comment, err := h.Service.Update(c.Request.Context(), int64(idP), req.Content, userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// DeleteComment removes the requester's own comment and its whole subtree
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), int64(idP), userID.(int64)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrHatefulContent, domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
