package api

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/plague-community-hub/internal/models"
	"github.com/plague-community-hub/internal/mutation"
)

// strictPolicy strips every tag. Policies are safe for concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the unescape/strip loop for nested entity encodings
const maxSanitizePasses = 4

// plainText strips markup from s and returns it unescaped and trimmed.
// Entity-encoded markup is decoded and stripped again until the text stops changing,
// so the result never holds a tag. Input that keeps changing stays escaped.
func plainText(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			return strings.TrimSpace(next)
		}
		s = next
	}
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

func sanitizeForm(f mutation.ProposalForm) mutation.ProposalForm {
	f.Title = plainText(f.Title)
	f.Description = plainText(f.Description)
	f.Tags = plainText(f.Tags)
	f.Requirements = plainText(f.Requirements)
	return f
}

func sanitizeSkills(skills []models.Skill) []models.Skill {
	out := make([]models.Skill, len(skills))
	for i, s := range skills {
		s.Name = plainText(s.Name)
		out[i] = s
	}
	return out
}
