package handler

import (
	"errors"
	"net/http"

	domainTask "taskboard/internal/domain/task"
	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/logger"
	appErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError maps domain and application errors to HTTP statuses.
// "Absent" and "not owned" surface through the same not-found sentinels,
// so the mapping never distinguishes them.
func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainUser.ErrUserNotFound),
		errors.Is(err, domainTask.ErrTaskNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainUser.ErrPhoneAlreadyUsed),
		errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenExpired),
		errors.Is(err, domainUser.ErrTokenInvalid):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case appErrors.IsValidation(err):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled request error", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
