package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

var errInternal = errors.New("internal server error")

// bindError marks a body that could not be decoded at all.
type bindError struct {
	err error
}

func (e bindError) Error() string {
	return "malformed request body: " + e.err.Error()
}

func (e bindError) Unwrap() error {
	return e.err
}

// ResourceController exposes list/create/get/update/delete for one resource.
// T is the entity, C and U the create and update inputs, R the wire shape.
type ResourceController[T any, C services.CreateInput[T], U services.UpdateInput[T], R any] struct {
	svc       *services.ResourceService[T, C, U]
	resource  string
	serialize func(T) R
}

func NewResourceController[T any, C services.CreateInput[T], U services.UpdateInput[T], R any](
	svc *services.ResourceService[T, C, U],
	resource string,
	serialize func(T) R,
) *ResourceController[T, C, U, R] {
	return &ResourceController[T, C, U, R]{
		svc:       svc,
		resource:  resource,
		serialize: serialize,
	}
}

// List GET /{resource}
func (rc *ResourceController[T, C, U, R]) List(c *gin.Context) {
	items, err := rc.svc.List(c.Request.Context())
	if err != nil {
		rc.fail(c, 0, err)
		return
	}

	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, rc.serialize(item))
	}

	c.JSON(http.StatusOK, out)
}

// Create POST /{resource}
func (rc *ResourceController[T, C, U, R]) Create(c *gin.Context) {
	var in C
	if err := bindInput(c, &in); err != nil {
		rc.fail(c, 0, err)
		return
	}

	if err := in.Validate(); err != nil {
		rc.fail(c, 0, err)
		return
	}

	created, err := rc.svc.Create(c.Request.Context(), in)
	if err != nil {
		rc.fail(c, 0, err)
		return
	}

	c.JSON(http.StatusCreated, rc.serialize(created))
}

// Get GET /{resource}/:id
func (rc *ResourceController[T, C, U, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		rc.notFound(c, c.Param("id"))
		return
	}

	found, err := rc.svc.Get(c.Request.Context(), id)
	if err != nil {
		rc.fail(c, id, err)
		return
	}

	c.JSON(http.StatusOK, rc.serialize(found))
}

// Update PUT|PATCH /{resource}/:id
// An unknown id is a 404 whatever the body holds.
func (rc *ResourceController[T, C, U, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		rc.notFound(c, c.Param("id"))
		return
	}

	exists, err := rc.svc.Exists(c.Request.Context(), id)
	if err != nil {
		rc.fail(c, id, err)
		return
	}
	if !exists {
		rc.notFound(c, id)
		return
	}

	var in U
	if err := bindInput(c, &in); err != nil {
		rc.fail(c, id, err)
		return
	}

	if err := in.Validate(); err != nil {
		rc.fail(c, id, err)
		return
	}

	updated, err := rc.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		rc.fail(c, id, err)
		return
	}

	c.JSON(http.StatusOK, rc.serialize(updated))
}

// Delete DELETE /{resource}/:id
// Succeeds whether or not the record existed.
func (rc *ResourceController[T, C, U, R]) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		deleted, err := rc.svc.Delete(c.Request.Context(), id)
		if err != nil {
			rc.fail(c, id, err)
			return
		}

		utils.InfoLogger.WithFields(logrus.Fields{
			"resource": rc.resource,
			"id":       id,
			"existed":  deleted,
		}).Debug("delete handled")
	}

	utils.RespondJSON(c, http.StatusOK, "Deleted", nil)
}

func (rc *ResourceController[T, C, U, R]) notFound(c *gin.Context, id interface{}) {
	utils.RespondError(c, http.StatusNotFound, fmt.Errorf("%s %v not found", rc.resource, id))
}

func (rc *ResourceController[T, C, U, R]) fail(c *gin.Context, id uint, err error) {
	var fields validation.Errors
	var bad bindError

	switch {
	case errors.As(err, &fields):
		utils.RespondValidation(c, http.StatusUnprocessableEntity, fields)
	case errors.As(err, &bad):
		utils.RespondError(c, http.StatusBadRequest, bad)
	case errors.Is(err, services.ErrNotFound):
		rc.notFound(c, id)
	default:
		utils.ErrorLogger.WithFields(logrus.Fields{
			"resource": rc.resource,
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
		}).WithError(err).Error("request failed")
		utils.RespondError(c, http.StatusInternalServerError, errInternal)
	}
}

// bindInput decodes a JSON or form body into obj. An empty body binds to the
// zero input so that validation reports the missing fields. A JSON value of
// the wrong type for a text field is reported as a validation failure.
func bindInput(c *gin.Context, obj interface{}) error {
	err := c.ShouldBind(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.Errors{
			typeErr.Field: fmt.Errorf("must be a %s", typeErr.Type),
		}
	}

	return bindError{err: err}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
