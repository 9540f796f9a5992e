package ftracker

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type summaryResponse struct {
	*Summary
	Message string `json:"message"`
}

func newSummaryResponse(s *Summary) *summaryResponse {
	return &summaryResponse{Summary: s, Message: s.String()}
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrUnknownActivity), errors.Is(err, ErrArityMismatch), errors.Is(err, ErrInvalidField):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDivisionByZero):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// SummaryHandler summarizes a single package
func SummaryHandler(t *Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		var pkg Package
		if err := c.Bind(&pkg); err != nil {
			return err
		}
		res, err := t.Track(c.Request().Context(), []*Package{&pkg})
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, newSummaryResponse(res[0]))
	}
}

// SummariesHandler summarizes a batch of packages, preserving their order
func SummariesHandler(t *Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cfg Config
		if err := c.Bind(&cfg); err != nil {
			return err
		}
		res, err := t.Track(c.Request().Context(), cfg.Packages)
		if err != nil {
			return httpError(err)
		}
		out := make([]*summaryResponse, len(res))
		for i, s := range res {
			out[i] = newSummaryResponse(s)
		}
		return c.JSON(http.StatusOK, out)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		log.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return nil
	}
}

// NewEngine returns the router serving the tracker
func NewEngine(t *Tracker) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(requestLogger)

	engine.POST("/summary", SummaryHandler(t))
	engine.POST("/summaries", SummariesHandler(t))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return engine
}

// LambdaHandler proxies API Gateway requests to the engine
func LambdaHandler(adapter *echoadapter.EchoLambda) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		log.Info().Str("method", req.HTTPMethod).Str("path", req.Path).Msg("lambda")
		return adapter.ProxyWithContext(ctx, req)
	}
}
