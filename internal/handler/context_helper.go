package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
	appErrors "github.com/noah-isme/lms-go-api/pkg/errors"
)

// currentClaims extracts authenticated JWT claims from the gin context.
func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	claimsValue, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := claimsValue.(*models.JWTClaims)
	return claims, ok
}

// requireUniversityID reads the mandatory university_id query parameter.
// Absence is a caller fault, reported as a 400 before any lookup runs.
func requireUniversityID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Query("university_id"))
	if raw == "" {
		return 0, appErrors.Clone(appErrors.ErrMissingParameter, "university_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrMissingParameter, "university_id must be an integer")
	}
	return id, nil
}

// pathInt64 parses an integer path parameter.
func pathInt64(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be an integer")
	}
	return id, nil
}

// queryIntDefault parses an optional integer query parameter.
func queryIntDefault(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// optionalStr returns a query parameter as a nullable string.
func optionalStr(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// optionalInt64 returns a query parameter as a nullable integer.
func optionalInt64(c *gin.Context, name string) *int64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
