package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

// New assigns a request id when the client did not send one and echoes
// it on the response.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}
