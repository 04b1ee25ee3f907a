package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phonecustody/internal/errs"
	"github.com/deppfellow/phonecustody/internal/model"
	"github.com/deppfellow/phonecustody/internal/server"
	"github.com/deppfellow/phonecustody/internal/service"
)

type PhoneHandler struct {
	Handler
	phoneService *service.PhoneService
}

func NewPhoneHandler(s *server.Server, phoneService *service.PhoneService) *PhoneHandler {
	return &PhoneHandler{
		Handler:      NewHandler(s),
		phoneService: phoneService,
	}
}

func (h *PhoneHandler) Create(c echo.Context, req *model.CreatePhoneRequest) (*model.Phone, error) {
	return h.phoneService.Create(c.Request().Context(), req.PhoneFields)
}

func (h *PhoneHandler) FindAll(c echo.Context, _ *model.ListRequest) ([]model.Phone, error) {
	phones, err := h.phoneService.FindAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if phones == nil {
		phones = []model.Phone{}
	}
	return phones, nil
}

func (h *PhoneHandler) FindOne(c echo.Context, req *model.IDRequest) (*model.Phone, error) {
	phone, err := h.phoneService.FindOne(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if phone == nil {
		return nil, errs.NewEntityNotFoundError("Phone")
	}
	return phone, nil
}

func (h *PhoneHandler) Update(c echo.Context, req *model.UpdatePhoneRequest) (*model.AffectedResponse, error) {
	affected, err := h.phoneService.Update(c.Request().Context(), req.ID, req.PhoneFields)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}

func (h *PhoneHandler) Remove(c echo.Context, req *model.IDRequest) (*model.AffectedResponse, error) {
	affected, err := h.phoneService.Remove(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}
