package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/internal/fixture"
	"github.com/rapodaca/cas-number/internal/repository"
	"github.com/rapodaca/cas-number/internal/service"
	"github.com/rapodaca/cas-number/pkg/cas"
	"github.com/rapodaca/cas-number/pkg/log"
	"github.com/rapodaca/cas-number/pkg/response"
	"github.com/rapodaca/cas-number/pkg/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

// Handler handles HTTP requests for the CAS service.
type Handler struct {
	casService  service.CASService
	seedService service.SeedService
	exporter    *fixture.Exporter
}

// NewHandler creates a new HTTP handler.
func NewHandler(casService service.CASService, seedService service.SeedService, exporter *fixture.Exporter) *Handler {
	return &Handler{
		casService:  casService,
		seedService: seedService,
		exporter:    exporter,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		numbers := api.Group("/cas")
		{
			numbers.POST("/generate", h.Generate)
			numbers.POST("/compare", h.Compare)
			numbers.GET("/:number", h.Parse)
			numbers.GET("/:number/validate", h.Validate)
		}

		samples := api.Group("/samples")
		{
			samples.POST("/seed", h.Seed)
			samples.GET("", h.ListSamples)
			samples.GET("/:number", h.GetSample)
		}

		fixtures := api.Group("/fixtures")
		{
			fixtures.POST("", h.ExportFixture)
			fixtures.GET("", h.ListFixtures)
			fixtures.GET("/:id", h.GetFixture)
		}
	}
}

// Generate returns one random CAS number, or a batch when count > 0.
func (h *Handler) Generate(c *gin.Context) {
	l := log.Ctx(c.Request.Context())

	// An empty body, with or without Content-Length, asks for one number.
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Count == 0 {
		n, err := h.casService.Generate()
		if err != nil {
			l.Error().Err(err).Msg("generate failed")
			response.InternalError(c, "failed to generate cas number")
			return
		}
		response.Success(c, gin.H{"number": n})
		return
	}

	numbers, err := h.casService.GenerateBatch(req.Count)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, gin.H{"numbers": numbers})
}

// Parse returns the breakdown of a CAS number.
func (h *Handler) Parse(c *gin.Context) {
	result, err := h.casService.Parse(c.Param("number"))
	if err != nil {
		h.handleError(c, err, "failed to parse cas number")
		return
	}
	response.Success(c, result)
}

// Validate reports validity with a reason. It never fails for bad input.
func (h *Handler) Validate(c *gin.Context) {
	valid, reason := h.casService.Validate(c.Param("number"))
	response.Success(c, domain.ValidateResponse{Valid: valid, Reason: reason})
}

// Compare orders two CAS numbers.
func (h *Handler) Compare(c *gin.Context) {
	var req domain.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.casService.Compare(req.A, req.B)
	if err != nil {
		h.handleError(c, err, "failed to compare cas numbers")
		return
	}
	response.Success(c, domain.CompareResponse{Result: result})
}

// Seed stores a batch of random samples.
func (h *Handler) Seed(c *gin.Context) {
	var req domain.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Count > cas.MaxBatch {
		response.BadRequest(c, "count must not exceed "+strconv.Itoa(cas.MaxBatch))
		return
	}

	result, err := h.seedService.Seed(c.Request.Context(), req.Count)
	if err != nil {
		h.handleError(c, err, "failed to seed samples")
		return
	}
	response.Created(c, result)
}

// ListSamples returns stored samples in CAS number order.
func (h *Handler) ListSamples(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		response.BadRequest(c, "limit must be between 1 and "+strconv.Itoa(maxListLimit))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		response.BadRequest(c, "offset must be a non-negative integer")
		return
	}

	result, err := h.seedService.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err, "failed to list samples")
		return
	}
	response.Success(c, result)
}

// GetSample returns one stored sample.
func (h *Handler) GetSample(c *gin.Context) {
	sample, err := h.seedService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.handleError(c, err, "failed to get sample")
		return
	}
	response.Success(c, sample)
}

// ExportFixture writes a fixture file to storage.
func (h *Handler) ExportFixture(c *gin.Context) {
	var req domain.FixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Count > cas.MaxBatch {
		response.BadRequest(c, "count must not exceed "+strconv.Itoa(cas.MaxBatch))
		return
	}

	f, err := h.exporter.Export(c.Request.Context(), req.Count)
	if err != nil {
		h.handleError(c, err, "failed to export fixture")
		return
	}
	response.Created(c, domain.FixtureResponse{Key: f.Key, Count: f.Count, URL: f.URL})
}

// ListFixtures returns the stored fixture files.
func (h *Handler) ListFixtures(c *gin.Context) {
	files, err := h.exporter.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "failed to list fixtures")
		return
	}
	out := make([]domain.FixtureInfo, 0, len(files))
	for _, f := range files {
		out = append(out, domain.FixtureInfo{Key: f.Key, Size: f.Size, LastModified: f.LastModified})
	}
	response.Success(c, out)
}

// GetFixture reads a fixture back and returns its numbers.
func (h *Handler) GetFixture(c *gin.Context) {
	key, err := fixture.KeyFromID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "fixture not found")
		return
	}
	numbers, err := h.exporter.Load(c.Request.Context(), key)
	if err != nil {
		h.handleError(c, err, "failed to load fixture")
		return
	}
	response.Success(c, domain.FixtureContentResponse{Key: key, Numbers: numbers})
}

// handleError maps domain errors to responses and logs the rest.
func (h *Handler) handleError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, cas.ErrInvalidNumber):
		response.InvalidCASNumber(c, err.Error())
	case errors.Is(err, repository.ErrSampleNotFound):
		response.NotFound(c, "sample not found")
	case errors.Is(err, storage.ErrNotFound):
		response.NotFound(c, "fixture not found")
	case errors.Is(err, repository.ErrDuplicateNumber):
		response.Conflict(c, "cas number already stored")
	default:
		l := log.Ctx(c.Request.Context())
		l.Error().Err(err).Msg(msg)
		response.InternalError(c, msg)
	}
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
