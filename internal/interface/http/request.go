package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/apperror"
	"github.com/oksasatya/go-job-board/pkg/response"
	"github.com/oksasatya/go-job-board/pkg/validation"
)

var errSalaryNotWhole = errors.New("salary must be a whole number")

// Salary accepts a JSON number or a numeric string holding a whole number.
type Salary int

func (s *Salary) UnmarshalJSON(b []byte) error {
	raw := string(bytes.TrimSpace(b))
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unq)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return errSalaryNotWhole
	}
	*s = Salary(v)
	return nil
}

// bindError writes a 400 for a failed ShouldBind*.
func bindError(c *gin.Context, err error) {
	if errors.Is(err, errSalaryNotWhole) {
		response.Error[any](c, http.StatusBadRequest, errSalaryNotWhole.Error(), map[string]string{"salary": "must be a whole number"})
		return
	}
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// uuidParam reads a path id, failing with 400 when it is not a UUID.
func uuidParam(c *gin.Context, name string) (string, error) {
	id := strings.TrimSpace(c.Param(name))
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.Validation("invalid "+name, map[string]string{name: "must be a valid UUID"})
	}
	return id, nil
}

// callerID returns the authenticated user; routes using it sit behind RequireAuth.
func callerID(c *gin.Context) (string, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return "", apperror.Unauthorized("No authentication token found")
	}
	return id, nil
}
