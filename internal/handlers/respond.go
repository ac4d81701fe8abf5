package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/tripora/travel-booking-backend/internal/repository"
	"github.com/tripora/travel-booking-backend/internal/services"
)

// Register the json tag as the field name source so validation errors
// report the key the client actually sent (item_id, not ItemID).
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// bindingErrors turns gin binding failures into a per-field problem map.
// Field keys follow the JSON naming convention (snake_case).
func bindingErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "request body is not valid JSON"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		case "email":
			fields[name] = name + " must be a valid email address"
		case "min":
			fields[name] = name + " must be at least " + fe.Param() + " characters"
		case "oneof":
			fields[name] = name + " must be one of: " + fe.Param()
		case "max":
			fields[name] = name + " must be at most " + fe.Param()
		default:
			fields[name] = name + " is invalid"
		}
	}
	return fields
}

// badRequest writes a structured 400 with per-field problems
func badRequest(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: "Request validation failed",
		Code:    "VALIDATION_FAILED",
		Fields:  fields,
	})
}

// notFound writes a 404 for an absent record
func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   "not_found",
		Message: what + " not found",
		Code:    "NOT_FOUND",
	})
}

// internalError logs the cause and writes a generic 500. Internal detail
// never reaches the client.
func internalError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "Something went wrong",
		Code:    "INTERNAL_ERROR",
	})
}

// serviceError maps known service failures onto HTTP statuses; anything
// unrecognized becomes a 500.
func serviceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		badRequest(c, verr.Fields)
	case errors.Is(err, repository.ErrNotFound):
		notFound(c, "record")
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: services.ErrNotOwner.Error(),
			Code:    "NOT_OWNER",
		})
	default:
		internalError(c, err)
	}
}
