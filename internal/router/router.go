package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetSlots(c *ginext.Context)
	ListServices(c *ginext.Context)
	IndexPage(c *ginext.Context)
	AdminPage(c *ginext.Context)
	CancelPage(c *ginext.Context)
	CancelSubmit(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings: a single resource, dispatched on query params the same
		// way the public site and the admin page call it.
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.GetBookings)
		api.DELETE("/bookings", h.CancelBooking)

		api.GET("/slots", h.GetSlots)
		api.GET("/services", h.ListServices)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", h.IndexPage)
	router.GET("/admin", h.AdminPage)
	router.GET("/cancel", h.CancelPage)
	router.POST("/cancel", h.CancelSubmit)

	return router
}
