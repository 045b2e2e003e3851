package http

import (
	"errors"
	"net/http"

	"foodorder/internal/adapters/in/http/api"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal error, try again later"

// errorResponse maps the error taxonomy to a status code and body:
//
//	NotFound               -> 404
//	Validation             -> 400
//	InvalidStateTransition -> 409
//	ConcurrencyConflict    -> 409, retryable
//	anything else          -> 500 without details
func errorResponse(err error) api.Error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return api.Error{Code: http.StatusNotFound, Message: err.Error()}
	case errs.IsValidation(err):
		return api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return api.Error{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return api.Error{Code: http.StatusConflict, Message: err.Error(), Retryable: true}
	default:
		return api.Error{Code: http.StatusInternalServerError, Message: internalErrorMessage}
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	body := errorResponse(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
	}
	return ctx.JSON(body.Code, body)
}

// newErrorHandler renders errors raised outside the server methods, such as
// parameter binding failures and unknown routes, in the same body format.
func newErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := api.Error{Code: http.StatusInternalServerError, Message: internalErrorMessage}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			body.Code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body.Message = msg
			} else {
				body.Message = http.StatusText(httpErr.Code)
			}
		} else {
			logger.Error("unhandled error", zap.String("path", ctx.Path()), zap.Error(err))
		}

		if writeErr := ctx.JSON(body.Code, body); writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}
