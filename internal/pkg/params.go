package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// ParseIDParam reads the ":id" route parameter as a positive integer.
// A malformed id is a validation error, not a not-found.
func ParseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "invalid id", nil)
	}
	return uint(id), nil
}

// ParseForceParam reads the "force" query flag that switches DELETE from the
// soft path to permanent removal. Only the exact value "true" forces.
func ParseForceParam(c *gin.Context) bool {
	return c.Query("force") == "true"
}
