package api

import (
	v1 "github.com/Behyna/sms-services/smsbroadcast/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, gatherer prometheus.Gatherer) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Post(prefixV1+"messages", handler.SendMessage)
	app.Get(prefixV1+"deliveries", handler.Deliveries)
	app.Get(prefixV1+"balance", handler.Balance)
}
