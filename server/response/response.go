package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/techagentng/citizenrate/errors"
)

// JSON writes a response. Errors are rendered as {"error": "..."}; successful
// payloads are written as-is, or wrapped with the message when one is given.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	if err != nil {
		body := gin.H{"error": errorMessage(status, err)}
		if message != "" {
			body["message"] = message
		}
		c.JSON(status, body)
		return
	}

	if message == "" {
		c.JSON(status, data)
		return
	}
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// HandleErrors writes err with the status it carries, logging anything unexpected.
func HandleErrors(c *gin.Context, err error) {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status >= http.StatusInternalServerError {
			log.Printf("request %s: %v", c.GetString("requestID"), err)
		}
		JSON(c, "", apiErr.Status, nil, apiErr)
		return
	}
	log.Printf("request %s: unexpected error: %v", c.GetString("requestID"), err)
	JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
}

func errorMessage(status int, err error) string {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if status >= http.StatusInternalServerError {
		return errs.ErrInternalServerError.Message
	}
	return err.Error()
}
