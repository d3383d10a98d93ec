package recommendation

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/confiance/investment-api/internal/config"
	"github.com/confiance/investment-api/internal/types"
	"github.com/confiance/investment-api/pkg/middleware"
	"github.com/confiance/investment-api/pkg/response"
)

// GinHandlers contains HTTP handlers for recommendation endpoints
type GinHandlers struct {
	service *Service
	cfg     *config.Config
}

func NewGinHandlers(service *Service, cfg *config.Config) *GinHandlers {
	return &GinHandlers{
		service: service,
		cfg:     cfg,
	}
}

// CreateHandler handles POST requests to create recommendations.
// The optional X-User-Id header identifies the creating admin and is trusted
// as-is.
func (h *GinHandlers) CreateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		resp, err := h.service.Create(&req, middleware.UserIDFrom(c))
		if err != nil {
			response.HandleError(c, err)
			return
		}
		response.SuccessMessage(c, "Recommendation created successfully", resp)
	}
}

// UpdateHandler handles PUT requests. Fields omitted from the body are left
// unchanged.
func (h *GinHandlers) UpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		resp, err := h.service.Update(id, &req)
		if err != nil {
			response.HandleError(c, err)
			return
		}
		response.SuccessMessage(c, "Recommendation updated successfully", resp)
	}
}

// GetHandler handles GET requests for a single recommendation by id.
func (h *GinHandlers) GetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		resp, err := h.service.GetByID(id)
		response.Handle(c, resp, err)
	}
}

// ListHandler handles GET requests for the unfiltered paginated list.
// Query parameters: page, size, sort_by, sort_direction.
func (h *GinHandlers) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := h.paging(c)
		sortBy := c.DefaultQuery("sort_by", h.cfg.DefaultSortField)
		sortDir := c.DefaultQuery("sort_direction", h.cfg.DefaultSortDir)

		resp, err := h.service.List(page, size, sortBy, sortDir)
		response.Handle(c, resp, err)
	}
}

// FilterHandler handles GET requests filtered by market and/or status.
// Both filters are optional; omitting both returns all records.
func (h *GinHandlers) FilterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var market *types.Market
		if raw := c.Query("market"); raw != "" {
			m, ok := types.ParseMarket(raw)
			if !ok {
				response.BadRequest(c, "unknown market: "+raw)
				return
			}
			market = &m
		}

		var status *types.RecommendationStatus
		if raw := c.Query("status"); raw != "" {
			st, ok := types.ParseRecommendationStatus(raw)
			if !ok {
				response.BadRequest(c, "unknown status: "+raw)
				return
			}
			status = &st
		}

		page, size := h.paging(c)
		resp, err := h.service.ListFiltered(market, status, page, size)
		response.Handle(c, resp, err)
	}
}

// OpenHandler handles GET requests for open recommendations.
func (h *GinHandlers) OpenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := h.paging(c)
		resp, err := h.service.ListOpen(page, size)
		response.Handle(c, resp, err)
	}
}

// MarketHandler handles GET requests for recommendations on one market.
// URL parameter: market
func (h *GinHandlers) MarketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		market, ok := types.ParseMarket(c.Param("market"))
		if !ok {
			response.BadRequest(c, "unknown market: "+c.Param("market"))
			return
		}

		page, size := h.paging(c)
		resp, err := h.service.ListByMarket(market, page, size)
		response.Handle(c, resp, err)
	}
}

// TickerHandler handles GET requests for all recommendations on one ticker.
// URL parameter: symbol
func (h *GinHandlers) TickerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.ListByTicker(c.Param("symbol"))
		response.Handle(c, resp, err)
	}
}

// DateRangeHandler handles GET requests for recommendations dated within an
// inclusive range. Query parameters: start_date, end_date (YYYY-MM-DD).
func (h *GinHandlers) DateRangeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start, err := types.ParseDate(c.Query("start_date"))
		if err != nil {
			response.BadRequest(c, "start_date: "+err.Error())
			return
		}
		end, err := types.ParseDate(c.Query("end_date"))
		if err != nil {
			response.BadRequest(c, "end_date: "+err.Error())
			return
		}

		page, size := h.paging(c)
		resp, err := h.service.ListByDateRange(start, end, page, size)
		response.Handle(c, resp, err)
	}
}

// DeleteHandler handles DELETE requests. Deletion is permanent.
func (h *GinHandlers) DeleteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := h.service.Delete(id); err != nil {
			response.HandleError(c, err)
			return
		}
		response.SuccessMessage(c, "Recommendation deleted successfully", nil)
	}
}

func (h *GinHandlers) paging(c *gin.Context) (page, size int) {
	page = queryInt(c, "page", h.cfg.DefaultPage)
	size = queryInt(c, "size", h.cfg.DefaultPageSize)
	return page, size
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
