package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phonecustody/internal/errs"
	"github.com/deppfellow/phonecustody/internal/model"
	"github.com/deppfellow/phonecustody/internal/server"
	"github.com/deppfellow/phonecustody/internal/service"
)

// OwnershipRecordHandler serves custody records, including the per-phone and
// per-owner history lookups.
type OwnershipRecordHandler struct {
	Handler
	recordService *service.OwnershipRecordService
}

func NewOwnershipRecordHandler(s *server.Server, recordService *service.OwnershipRecordService) *OwnershipRecordHandler {
	return &OwnershipRecordHandler{
		Handler:       NewHandler(s),
		recordService: recordService,
	}
}

// Create accepts Owner and Phone either as ids or as new rows; new rows are
// inserted in the same transaction as the record.
func (h *OwnershipRecordHandler) Create(c echo.Context, req *model.CreateOwnershipRecordRequest) (*model.OwnershipRecord, error) {
	return h.recordService.Create(c.Request().Context(), *req)
}

func (h *OwnershipRecordHandler) FindAll(c echo.Context, _ *model.ListRequest) ([]model.OwnershipRecord, error) {
	records, err := h.recordService.FindAll(c.Request().Context())
	return nonNilRecords(records), err
}

func (h *OwnershipRecordHandler) FindOne(c echo.Context, req *model.IDRequest) (*model.OwnershipRecord, error) {
	record, err := h.recordService.FindOne(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errs.NewEntityNotFoundError("Ownership Record")
	}
	return record, nil
}

// FindByPhone lists every record of a phone. An unknown phone yields [].
func (h *OwnershipRecordHandler) FindByPhone(c echo.Context, req *model.IDRequest) ([]model.OwnershipRecord, error) {
	records, err := h.recordService.FindByPhone(c.Request().Context(), req.ID)
	return nonNilRecords(records), err
}

// FindByOwner lists every record of an owner. An unknown owner yields [].
func (h *OwnershipRecordHandler) FindByOwner(c echo.Context, req *model.IDRequest) ([]model.OwnershipRecord, error) {
	records, err := h.recordService.FindByOwner(c.Request().Context(), req.ID)
	return nonNilRecords(records), err
}

func (h *OwnershipRecordHandler) Update(c echo.Context, req *model.UpdateOwnershipRecordRequest) (*model.AffectedResponse, error) {
	affected, err := h.recordService.Update(c.Request().Context(), req.ID, *req)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}

func (h *OwnershipRecordHandler) Remove(c echo.Context, req *model.IDRequest) (*model.AffectedResponse, error) {
	affected, err := h.recordService.Remove(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.AffectedResponse{Affected: affected}, nil
}

func nonNilRecords(records []model.OwnershipRecord) []model.OwnershipRecord {
	if records == nil {
		return []model.OwnershipRecord{}
	}
	return records
}
