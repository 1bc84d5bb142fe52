package httpHandler

import (
	"net/http"

	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	codeNotFound          = "NOT_FOUND"
	codeReferenceNotFound = "REFERENCE_NOT_FOUND"
	codeDuplicate         = "DUPLICATE_ENTITY"
	codeNoMatch           = "NO_MATCH"
	codeInvalidRequest    = "INVALID_REQUEST"
	codeInternal          = "INTERNAL_ERROR"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type messageResponse struct {
	Message string `json:"msg"`
}

// classify maps a use case error to its HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, usecases.ErrReferenceNotFound):
		return http.StatusBadRequest, codeReferenceNotFound
	case errors.Is(err, usecases.ErrDuplicate):
		return http.StatusBadRequest, codeDuplicate
	case errors.Is(err, usecases.ErrNoMatch):
		return http.StatusNotFound, codeNoMatch
	case errors.Is(err, usecases.ErrValidation):
		return http.StatusBadRequest, codeInvalidRequest
	}
	return http.StatusInternalServerError, codeInternal
}

func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	respondErrorStatus(c, log, err, 0)
}

// respondErrorStatus is respondError with the not-found status overridden
// when override is non-zero.
func respondErrorStatus(c *gin.Context, log logrus.FieldLogger, err error, override int) {
	status, code := classify(err)
	if override != 0 && code == codeNotFound {
		status = override
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		msg = "internal server error"
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}
