package http

import (
	"net/http"
	"sync"

	"foodorder/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const BaseURL = "/api/v1"

// NewRouter builds the echo instance serving the health check, the OpenAPI
// document and every order operation.
func NewRouter(server *Server, swagger *openapi3.T, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = newErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(BaseURL+"/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})

	registerSwaggerDoc(swagger)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlersWithBaseURL(e, server, BaseURL)

	return e
}

var swaggerDocOnce sync.Once

// registerSwaggerDoc makes the document available to the Swagger UI at
// /swagger/index.html. swag keeps a process-wide registry and panics on a
// second registration under the same name.
func registerSwaggerDoc(swagger *openapi3.T) {
	swaggerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{swagger: swagger})
	})
}

type swaggerDoc struct {
	swagger *openapi3.T
}

func (d swaggerDoc) ReadDoc() string {
	doc, err := d.swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(doc)
}
