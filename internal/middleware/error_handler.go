package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/dealer-credit-simulator/internal/credit"
	"github.com/anyulbade/dealer-credit-simulator/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// MapError turns a handler error into a status code and response body.
func MapError(err error) (int, ErrorResponse) {
	var fieldErr *credit.FieldError
	if errors.As(err, &fieldErr) {
		status := http.StatusBadRequest
		if errors.Is(err, credit.ErrConfiguration) {
			status = http.StatusUnprocessableEntity
		}
		return status, ErrorResponse{
			Error:   fieldErr.Kind.Error(),
			Field:   fieldErr.Field,
			Details: fieldErr.Message,
		}
	}

	switch {
	case errors.Is(err, credit.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid input", Details: err.Error()}
	case errors.Is(err, credit.ErrConfiguration):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "configuration error", Details: err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "resource not found", Details: err.Error()}
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict, ErrorResponse{Error: "invalid status transition", Details: err.Error()}
	}

	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "referenced resource does not exist",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		case "22P02": // invalid_text_representation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "malformed identifier",
				Details: pgErr.Message,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
