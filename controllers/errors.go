package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// respondDomainError maps core failures onto HTTP status classes:
// validation and invalid-state errors become 400, unknown ids become 404,
// anything else (store failures) becomes 500.
func respondDomainError(c *gin.Context, err error) {
	var (
		validation   *models.ValidationError
		notFound     *models.NotFoundError
		invalidState *models.InvalidStateError
	)
	switch {
	case errors.As(err, &validation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &invalidState):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &notFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.Printf("Store failure: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
