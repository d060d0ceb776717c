package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var statusByErr = map[error]int{
	domain.ErrNotFound:      http.StatusNotFound,
	query.ErrNotFound:       http.StatusNotFound,
	domain.ErrNoSuchListing: http.StatusNotFound,
	domain.ErrNoSuchOffer:   http.StatusNotFound,
	domain.ErrNoSuchToken:   http.StatusNotFound,

	domain.ErrNotOwner:     http.StatusForbidden,
	domain.ErrUnauthorized: http.StatusUnauthorized,

	domain.ErrAlreadyListed:  http.StatusConflict,
	domain.ErrDuplicateOffer: http.StatusConflict,
	domain.ErrConflict:       http.StatusConflict,
	domain.ErrAlreadyPaused:  http.StatusConflict,
	domain.ErrNotPaused:      http.StatusConflict,
	domain.ErrPaused:         http.StatusConflict,
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		for sentinel, mapped := range statusByErr {
			if errors.Is(err, sentinel) {
				status = mapped
				break
			}
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
