package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"

	apperrors "tours-api/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// stackKey holds the stack captured when the error was recorded, so the debug
// response shows the failing handler's frames rather than the funnel's.
const stackKey = "errorStack"

// Abort records an error on the request and stops the handler chain. The
// ErrorHandler middleware turns it into the client-facing response.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Set(stackKey, string(debug.Stack()))
	c.Abort()
}

// errorBody is the response payload produced by the error funnel. Detail and
// Stack are only populated in debug mode.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorHandler is the single funnel for all failures. In debug mode the
// response carries the full error chain and a stack trace. In release mode
// operational errors expose their message and status code, while anything
// unexpected is logged server-side and reported as a generic 500.
func ErrorHandler(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		err := translate(last.Err)
		status := apperrors.StatusCode(err)

		if debugMode {
			stack := c.GetString(stackKey)
			if stack == "" {
				stack = string(debug.Stack())
			}
			c.JSON(status, errorBody{
				Success: false,
				Error:   clientMessage(err, status),
				Detail:  err.Error(),
				Stack:   stack,
			})
			return
		}

		if apperrors.IsOperational(err) {
			c.JSON(status, errorBody{
				Success: false,
				Error:   clientMessage(err, status),
			})
			return
		}

		log.Printf("ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorBody{
			Success: false,
			Error:   "something went wrong",
		})
	}
}

// translate rewrites well-known infrastructure failures into operational
// errors: validation failures and duplicate keys become 400s, malformed ids
// and token errors are already mapped by their packages.
func translate(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return apperrors.Wrap(http.StatusBadRequest,
			"invalid input data: field "+first.Field()+" failed on the "+first.Tag()+" rule", err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return apperrors.Wrap(http.StatusBadRequest, "malformed request body", err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Wrap(http.StatusBadRequest, "duplicate field value, please use another value", err)
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return apperrors.Wrap(http.StatusBadRequest, "invalid write operation", err)
	}

	return err
}

// clientMessage picks the message exposed to the client for an error.
func clientMessage(err error, status int) string {
	var opErr *apperrors.Error
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	if apperrors.IsOperational(err) {
		return err.Error()
	}
	return http.StatusText(status)
}
