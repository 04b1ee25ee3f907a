package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phonecustody/internal/errs"
	"github.com/deppfellow/phonecustody/internal/model"
	"github.com/deppfellow/phonecustody/internal/server"
	"github.com/deppfellow/phonecustody/internal/service"
)

type OwnerHandler struct {
	Handler
	ownerService *service.OwnerService
}

func NewOwnerHandler(s *server.Server, ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		Handler:      NewHandler(s),
		ownerService: ownerService,
	}
}

func (h *OwnerHandler) Create(c echo.Context, req *model.CreateOwnerRequest) (*model.Owner, error) {
	return h.ownerService.Create(c.Request().Context(), req.OwnerFields)
}

func (h *OwnerHandler) FindAll(c echo.Context, _ *model.ListRequest) ([]model.Owner, error) {
	owners, err := h.ownerService.FindAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if owners == nil {
		owners = []model.Owner{}
	}
	return owners, nil
}

func (h *OwnerHandler) FindOne(c echo.Context, req *model.IDRequest) (*model.Owner, error) {
	owner, err := h.ownerService.FindOne(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errs.NewEntityNotFoundError("Owner")
	}
	return owner, nil
}

func (h *OwnerHandler) Update(c echo.Context, req *model.UpdateOwnerRequest) (*model.AffectedResponse, error) {
	affected, err := h.ownerService.Update(c.Request().Context(), req.ID, req.OwnerFields)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}

func (h *OwnerHandler) Remove(c echo.Context, req *model.IDRequest) (*model.AffectedResponse, error) {
	affected, err := h.ownerService.Remove(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}
