package moderation

import (
	"os"
	"strings"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/sirupsen/logrus"
)

// defaultBlockedTerms is used when no list is configured.
var defaultBlockedTerms = []string{
	"hateful",
	"idiot",
	"stupid",
	"moron",
}

// Moderator rejects comment content containing disallowed terms.
// Matching is case-insensitive substring matching.
type Moderator struct {
	terms []string
}

var _ domain.ContentModerator = (*Moderator)(nil)

func NewModerator(terms []string) *Moderator {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	return &Moderator{terms: lowered}
}

// NewModeratorFromEnv reads MODERATION_BLOCKED_TERMS (comma separated) and
// falls back to the built-in list when unset.
func NewModeratorFromEnv() *Moderator {
	raw := os.Getenv("MODERATION_BLOCKED_TERMS")
	if raw == "" {
		logrus.Info("MODERATION_BLOCKED_TERMS not set, using default blocked terms")
		return NewModerator(defaultBlockedTerms)
	}
	return NewModerator(strings.Split(raw, ","))
}

func (m *Moderator) Check(content string) error {
	lowered := strings.ToLower(content)
	for _, term := range m.terms {
		if strings.Contains(lowered, term) {
			return domain.ErrHatefulContent
		}
	}
	return nil
}
