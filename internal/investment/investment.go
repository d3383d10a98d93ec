package investment

import (
	"strconv"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/confiance/investment-api/internal/config"
	"github.com/confiance/investment-api/internal/types"
	"github.com/confiance/investment-api/pkg/response"
)

// Service handles investment product operations.
type Service struct {
	db  *Database
	cfg *config.Config
}

func NewService(gormDB *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:  NewDatabase(gormDB),
		cfg: cfg,
	}
}

func (s *Service) Create(req *CreateRequest) (*Product, error) {
	product := &Product{
		Name:               req.Name,
		Description:        req.Description,
		Type:               req.Type,
		ExpectedReturns:    *req.ExpectedReturns,
		MinInvestment:      *req.MinInvestment,
		LockInPeriodMonths: *req.LockInPeriodMonths,
		Status:             req.Status,
	}
	if req.MaxInvestment != nil {
		product.MaxInvestment.Decimal = *req.MaxInvestment
		product.MaxInvestment.Valid = true
	}

	if err := s.db.Create(product); err != nil {
		return nil, err
	}

	zlog.Info().Uint("id", product.ID).Str("name", product.Name).Msg("Created investment product")

	return product, nil
}

// GetByID returns a *types.NotFoundError when the id does not exist.
func (s *Service) GetByID(id uint) (*Product, error) {
	product, err := s.db.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, types.NewNotFound("InvestmentProduct", "id", id)
	}
	return product, nil
}

func (s *Service) List(page, size int) (*types.Page[Product], error) {
	if page < 0 {
		page = s.cfg.DefaultPage
	}
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}

	products, total, err := s.db.List(page, size)
	if err != nil {
		return nil, err
	}
	return types.NewPage(products, page, size, total), nil
}

// GinHandlers contains HTTP handlers for investment product endpoints
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

// CreateHandler handles POST requests to create investment products.
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

		product, err := h.service.Create(&req)
		if err != nil {
			response.HandleError(c, err)
			return
		}
		response.SuccessMessage(c, "Investment product created", product)
	}
}

// GetHandler handles GET requests for a single product by id.
func (h *GinHandlers) GetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid id: "+c.Param("id"))
			return
		}

		product, getErr := h.service.GetByID(uint(id))
		response.Handle(c, product, getErr)
	}
}

// ListHandler handles GET requests for the paginated product list.
func (h *GinHandlers) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryInt(c, "page", h.cfg.DefaultPage)
		size := queryInt(c, "size", h.cfg.DefaultPageSize)

		products, err := h.service.List(page, size)
		response.Handle(c, products, err)
	}
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
