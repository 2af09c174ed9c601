package response

import "github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"

type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	AuthorID  int64  `json:"author_id"`
	Content   string `json:"content"`
	ParentID  int64  `json:"parent_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// Children 子评论列表
	Children []*Comment `json:"children,omitempty"`
}

// NewCommentFromDomain: Domain -> Response, including the nested children.
// The depth cap is enforced when the tree is fetched, not here.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	res := &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
		Author:    NewUserFromDomain(c.Author),
	}
	if len(c.Children) > 0 {
		children := make([]*Comment, 0, len(c.Children))
		for _, child := range c.Children {
			children = append(children, NewCommentFromDomain(child))
		}
		res.Children = children
	}
	return res
}
