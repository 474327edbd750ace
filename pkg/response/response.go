package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	pkgErrors "sidecar-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OK writes the payload as-is with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response. HTTPError values keep their status code;
// anything else is reported as an internal error without leaking detail.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ValidationError writes a 400 identifying the offending fields. Binding
// errors from gin carry validator.ValidationErrors when the body parsed but
// failed a constraint; anything else (malformed JSON) gets a generic message.
func ValidationError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if stderrors.As(err, &vErrs) {
		fields := make([]FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Invalid request",
			Errors:    fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   "Invalid request body",
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for recovered panics.
func PanicError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s items or characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s items or characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
