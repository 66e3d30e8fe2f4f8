package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/estateops/backoffice/internal/domain"
)

// Response is the standard JSON envelope for API responses. Every response
// carries Success; error responses carry a human-readable Message and nothing
// internal beyond it.
type Response struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

// ValidationErrorResponse is the JSON envelope for validation error responses.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Success sends a 200 JSON response with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 JSON response with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// Message sends a 200 JSON response carrying only a confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// List sends a 200 JSON response for a paginated list result, with rows under
// data and the pagination metadata alongside.
func List[T any](c *gin.Context, result *domain.PageResult[T]) {
	pagination := result.Pagination
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       result.Items,
		Pagination: &pagination,
	})
}

// Error sends a JSON error response. If err is a *domain.AppError, its code is
// mapped to the appropriate HTTP status; otherwise 500 is returned with a
// generic message so no internal detail leaks to the caller.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	var appErr *domain.AppError
	msg := "internal error"
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	c.JSON(status, Response{
		Success: false,
		Message: msg,
	})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it automatically sends a validation error response and returns false.
// Because obj is available, JSON struct tags are used for field names when possible.
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationErrorWithType(c, err, obj)
		return false
	}
	return true
}

// ValidationError sends a 400 JSON response with per-field validation error details.
// It detects validator.ValidationErrors and extracts field-level messages.
func ValidationError(c *gin.Context, err error) {
	validationErrorWithType(c, err, nil)
}

// validationErrorWithType sends a 400 validation error response.
// When obj is non-nil, it reflects on the struct to prefer JSON tag names.
func validationErrorWithType(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Not a validation error; send a generic bad request.
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	// Build a struct-field → json-tag map when the concrete type is available.
	jsonTags := buildJSONTagMap(obj)

	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		} else {
			name = strings.ToLower(name)
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[name] = msg
	}

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Success: false,
		Message: "validation error",
		Errors:  fieldErrors,
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
