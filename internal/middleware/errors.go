package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
)

var (
	ErrFieldRequired = errors.New("field required")
)

type ErrorResponse struct {
	Detail string `json:"detail" description:"Error message"`
}

// HandleError writes err as a {detail} body with the given status.
func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{
		Detail: err.Error(),
	})
}
