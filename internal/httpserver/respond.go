package httpserver

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/domain"
)

// respond maps a service result onto the wire. The conventions are fixed
// across every collection:
//
//   - nil value, nil error: the id did not exist and the operation was a
//     silent no-op, reported as 204
//   - ErrPersistence: the mutation is live in memory but unsaved, reported
//     as 200 with a warning so the client can surface it
//   - ErrRemoteUnavailable: the directory rejected or never received the
//     call and nothing was committed
func respond(c *gin.Context, status int, v any, err error) {
	switch {
	case err == nil && isNilValue(v):
		c.Status(http.StatusNoContent)
	case err == nil:
		c.JSON(status, v)
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConfirmationRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "confirmation required"})
	case errors.Is(err, domain.ErrRemoteUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPersistence):
		c.JSON(http.StatusOK, gin.H{"data": v, "warning": "saved in memory only; storage write failed"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}
