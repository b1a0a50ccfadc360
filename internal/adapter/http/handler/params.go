package handler

import (
	"strconv"

	"mbanq-accounts/internal/adapter/http/dto"
	"mbanq-accounts/pkg/apperror"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

// bind decodes and validates the JSON body into req, then trims its
// free-text fields. On failure it writes the 400 and returns false.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(dto.ValidationMessage(err)))
		return false
	}
	dto.TrimStrings(req)
	return true
}

// accountParam parses the :id path parameter.
func accountParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("invalid account id"))
		return 0, false
	}
	return id, true
}
