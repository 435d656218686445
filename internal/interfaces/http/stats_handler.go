package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/application/stats"
	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
)

// StatsHandler handles the reporting endpoints: summary, dashboard and the
// per-status counts.
type StatsHandler struct {
	uc *stats.StatsUseCase
}

// NewStatsHandler builds the handler.
func NewStatsHandler(uc *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary godoc
// @Summary      Filtered aggregate report over all challans
// @Description  All supplied filters are conjoined. Dates use YYYY-MM-DD and
//               bound issue_date inclusively.
// @Tags         stats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SummaryRequest  true  "Filter set (all fields optional)"
// @Success      200   {object}  dto.SummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/challans/summary [post]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	var in dto.SummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Summary(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dates must match YYYY-MM-DD and status must be pending, active or disposed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not compute summary"})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Caller-scoped aggregate snapshot with recognized revenue
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/challans/dashboard [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id missing from token"})
	}
	out, err := h.uc.Dashboard(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not compute dashboard"})
	}
	return c.JSON(out)
}

// PendingCount godoc
// @Summary      Caller's pending challan count
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/challans/pending/count [get]
func (h *StatsHandler) PendingCount(c *fiber.Ctx) error {
	return h.statusCount(c, entity.StatusPending, "pending_challans")
}

// ActiveCount godoc
// @Summary      Caller's active challan count
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/challans/active/count [get]
func (h *StatsHandler) ActiveCount(c *fiber.Ctx) error {
	return h.statusCount(c, entity.StatusActive, "active_challans")
}

// DisposedCount godoc
// @Summary      Caller's disposed challan count
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/challans/disposed/count [get]
func (h *StatsHandler) DisposedCount(c *fiber.Ctx) error {
	return h.statusCount(c, entity.StatusDisposed, "disposed_challans")
}

func (h *StatsHandler) statusCount(c *fiber.Ctx, status entity.ChallanStatus, field string) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id missing from token"})
	}
	count, err := h.uc.CountByStatus(c.Context(), userID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not count challans"})
	}
	return c.JSON(fiber.Map{field: count})
}
