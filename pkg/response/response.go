package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/notevault/vtu-notes-api/pkg/errors"
)

// Envelope is the uniform response body for every JSON endpoint.
type Envelope struct {
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Data: data})
}

func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Paginated(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Envelope{Data: data, Pagination: &p})
}

func WithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data, Meta: meta})
}

// Error maps a domain error to its HTTP status and writes the envelope.
func Error(c *gin.Context, err error) {
	domainErr := apperrors.FromError(err)
	c.JSON(domainErr.Status, Envelope{
		Error: &ErrorBody{
			Code:    domainErr.Code,
			Message: domainErr.Message,
		},
	})
}
