package request

import "github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"

type CreateComment struct {
	Content  string `json:"content" binding:"required,notblank,max=4000"`
	ParentID int64  `json:"parent_id"` // 0 or absent for a root comment
}

// ToDomain: Request -> Domain. Article and author are taken from the URL
// param and the authenticated user, never from the body.
func (r *CreateComment) ToDomain(articleID, authorID int64) domain.Comment {
	return domain.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   r.Content,
		ParentID:  r.ParentID,
	}
}

type UpdateComment struct {
	Content string `json:"content" binding:"required,notblank,max=4000"`
}
