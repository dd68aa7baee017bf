package server

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/citizenrate/errors"
	"github.com/techagentng/citizenrate/models"
)

var (
	errInvalidID   = errs.BadRequest("invalid id")
	errInvalidBody = errs.BadRequest("invalid request body")
)

// decode binds the JSON body into v and runs the struct's validation rules.
func decode(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return bindError(err)
	}
	if err := models.ValidateStruct(v); err != nil {
		return errs.BadRequest("%s", err.Error())
	}
	return nil
}

// bindError hides the decoder's wording, which names Go types and fields.
func bindError(err error) *errs.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.BadRequest("invalid value for %s", typeErr.Field)
	}
	return errInvalidBody
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func currentUserID(c *gin.Context) (uint, error) {
	userID, ok := c.Get("userID")
	if !ok {
		return 0, errs.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok {
		return 0, errs.ErrUnauthorized
	}
	return id, nil
}
