package comment

import "github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"

// validateCanMutate enforces the ownership rule: only the original author
// may update or delete a comment, regardless of article state.
func validateCanMutate(authorID, userID int64) error {
	if authorID != userID {
		return domain.ErrForbidden
	}
	return nil
}
