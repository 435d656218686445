package http

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/application/usecase"
	"github.com/devyansh/etransport-api/internal/domain"
)

// missingCreateFields reports which required creation fields the payload left
// out. Every field of the creation body is mandatory; an absent amount is
// distinguished from an explicit zero by the pointer.
func missingCreateFields(in dto.CreateChallanRequest) []string {
	var missing []string
	for name, empty := range map[string]bool{
		"challan_number": in.ChallanNumber == "",
		"vehicle_number": in.VehicleNumber == "",
		"driver_name":    in.DriverName == "",
		"amount":         in.Amount == nil,
		"challan_source": in.ChallanSource == "",
		"department":     in.Department == "",
		"state_code":     in.StateCode == "",
		"rto_id":         in.RTOID == "",
		"area_id":        in.AreaID == "",
		"district_id":    in.DistrictID == "",
	} {
		if empty {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// ChallanHandler handles the challan lifecycle endpoints (protected).
type ChallanHandler struct {
	uc     *usecase.ChallanUseCase
	notice *usecase.NoticeUseCase
}

// NewChallanHandler builds the handler.
func NewChallanHandler(uc *usecase.ChallanUseCase, notice *usecase.NoticeUseCase) *ChallanHandler {
	return &ChallanHandler{uc: uc, notice: notice}
}

// Create godoc
// @Summary      Issue a challan
// @Tags         challans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChallanRequest  true  "Challan fields"
// @Success      201   {object}  dto.ChallanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/challans [post]
func (h *ChallanHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id missing from token"})
	}
	var in dto.CreateChallanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if missing := missingCreateFields(in); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "missing required fields: " + strings.Join(missing, ", ")})
	}
	out, err := h.uc.Create(userID, in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "challan number already exists"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid challan fields"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not create challan"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List the caller's challans
// @Tags         challans
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(100)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ChallanResponse
// @Router       /api/challans [get]
func (h *ChallanHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id missing from token"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	out, err := h.uc.List(userID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not list challans"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a challan by id
// @Tags         challans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Challan id"
// @Success      200  {object}  dto.ChallanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [get]
func (h *ChallanHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not get challan"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "challan not found"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a challan (status and/or amount)
// @Tags         challans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Challan id"
// @Param        body  body  dto.UpdateChallanRequest  true  "Fields to update"
// @Success      200   {object}  dto.ChallanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [put]
func (h *ChallanHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateChallanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be one of pending, active, disposed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not update challan"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "challan not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a challan
// @Tags         challans
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Challan id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id} [delete]
func (h *ChallanHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not delete challan"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "challan not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "Challan deleted successfully"})
}

// NoticePDF godoc
// @Summary      Download the printable notice for a challan
// @Tags         challans
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "Challan id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/challans/{id}/pdf [get]
func (h *ChallanHandler) NoticePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.notice.GeneratePDF(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not generate notice"})
	}
	if pdfBytes == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "challan not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="challan-notice.pdf"`)
	return c.Send(pdfBytes)
}
