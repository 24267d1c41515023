package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateDrive(c *ginext.Context)
	GetDrive(c *ginext.Context)
	ListDrives(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserAttendance(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Drives
		api.POST("/drives", h.CreateDrive)
		api.GET("/drives", h.ListDrives)
		api.GET("/drives/:id", h.GetDrive)

		// Bookings
		api.POST("/drives/:id/book", h.BookSlot)
		api.POST("/drives/:id/cancel", h.CancelBooking)
		api.POST("/drives/:id/checkin", h.CheckIn)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/attendance", h.GetUserAttendance)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
