package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey is the key used to store the authenticated session subject.
const subjectKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the session subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// GetSubjectFromContext retrieves the authenticated session subject set by
// AuthMiddleware. It returns false when the request was not authenticated.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, ok := c.Request.Context().Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
