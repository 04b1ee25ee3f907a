package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phonecustody/internal/handler"
)

func registerCustodyRoutes(r *echo.Echo, h *handler.Handlers) {
	phones := r.Group("/phone")
	phones.POST("", handler.Handle(h.Phone.Create, http.StatusCreated))
	phones.GET("", handler.Handle(h.Phone.FindAll, http.StatusOK))
	phones.GET("/:id", handler.Handle(h.Phone.FindOne, http.StatusOK))
	phones.PATCH("/:id", handler.Handle(h.Phone.Update, http.StatusOK))
	phones.DELETE("/:id", handler.Handle(h.Phone.Remove, http.StatusOK))

	owners := r.Group("/owner")
	owners.POST("", handler.Handle(h.Owner.Create, http.StatusCreated))
	owners.GET("", handler.Handle(h.Owner.FindAll, http.StatusOK))
	owners.GET("/:id", handler.Handle(h.Owner.FindOne, http.StatusOK))
	owners.PATCH("/:id", handler.Handle(h.Owner.Update, http.StatusOK))
	owners.DELETE("/:id", handler.Handle(h.Owner.Remove, http.StatusOK))

	records := r.Group("/OwnershipRecord")
	records.POST("", handler.Handle(h.OwnershipRecord.Create, http.StatusCreated))
	records.GET("", handler.Handle(h.OwnershipRecord.FindAll, http.StatusOK))
	records.GET("/Phone/:id", handler.Handle(h.OwnershipRecord.FindByPhone, http.StatusOK))
	records.GET("/Owner/:id", handler.Handle(h.OwnershipRecord.FindByOwner, http.StatusOK))
	records.GET("/:id", handler.Handle(h.OwnershipRecord.FindOne, http.StatusOK))
	records.PATCH("/:id", handler.Handle(h.OwnershipRecord.Update, http.StatusOK))
	records.DELETE("/:id", handler.Handle(h.OwnershipRecord.Remove, http.StatusOK))
}
