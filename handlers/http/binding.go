package httpHandler

import (
	"repair-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

func init() {
	// payloads naming a field the record does not have are rejected
	binding.EnableDecoderDisallowUnknownFields = true
}

// bindJSON decodes the request body into dst and checks its validate tags.
// Any failure is reported as usecases.ErrValidation.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.Wrap(usecases.ErrValidation, err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return errors.Wrap(usecases.ErrValidation, err.Error())
	}
	return nil
}

// recordID reads the target id from the path, falling back to ?id=.
func recordID(c *gin.Context) (string, error) {
	if id := c.Param("id"); id != "" {
		return id, nil
	}
	if id := c.Query("id"); id != "" {
		return id, nil
	}
	return "", errors.Wrap(usecases.ErrValidation, "id is required")
}
