package family

import (
	"errors"

	"pseudo-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for pseudo potential families.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the family routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/families")
	group.Get("/", h.HandleListFamilies)
	group.Get("/:label", h.HandleGetFamily)
	group.Get("/:label/elements", h.HandleGetElements)
	group.Get("/:label/pseudos/:element", h.HandleGetPseudo)
	group.Get("/:label/verify", h.HandleVerifyFamily)
}

// HandleListFamilies lists all stored families.
// @Summary List Families
// @Description List all stored pseudo potential families.
// @Tags families
// @Accept json
// @Produce json
// @Success 200 {array} Info "Families"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /families [get]
func (h *Handler) HandleListFamilies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	infos, err := h.service.ListFamilies(c.Context())
	if err != nil {
		l.Error("Listing families failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(infos)
}

// HandleGetFamily returns the summary of one family.
// @Summary Get Family
// @Description Get the summary of a pseudo potential family: format, elements, record count.
// @Tags families
// @Accept json
// @Produce json
// @Param label path string true "Family label"
// @Success 200 {object} models.FamilyDetail "Family Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /families/{label} [get]
func (h *Handler) HandleGetFamily(c *fiber.Ctx) error {
	label := c.Params("label")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetFamilyDetail(c.Context(), label)
	if err != nil {
		l.Warn("Family detail failed", zap.String("label", label), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// HandleGetElements returns the element symbols of a family.
// @Summary Get Family Elements
// @Description Get the element symbols a family defines a pseudo potential for.
// @Tags families
// @Accept json
// @Produce json
// @Param label path string true "Family label"
// @Success 200 {array} string "Elements"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /families/{label}/elements [get]
func (h *Handler) HandleGetElements(c *fiber.Ctx) error {
	label := c.Params("label")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetFamilyDetail(c.Context(), label)
	if err != nil {
		l.Warn("Family elements failed", zap.String("label", label), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(detail.Elements)
}

// HandleGetPseudo returns the record of a family for one element.
// @Summary Get Pseudo Potential
// @Description Get the pseudo potential record of a family for an element. Pass ?content=true to download the raw file.
// @Tags families
// @Accept json
// @Produce json
// @Param label path string true "Family label"
// @Param element path string true "Element symbol (e.g. 'Fe')"
// @Param content query boolean false "Stream the raw file content"
// @Success 200 {object} models.PseudoRecord "Pseudo Potential"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /families/{label}/pseudos/{element} [get]
func (h *Handler) HandleGetPseudo(c *fiber.Ctx) error {
	label := c.Params("label")
	element := c.Params("element")
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.GetPseudo(c.Context(), label, element)
	if err != nil {
		l.Warn("Pseudo lookup failed",
			zap.String("label", label),
			zap.String("element", element),
			zap.Error(err),
		)
		return respondError(c, err)
	}

	if c.Query("content") == "true" {
		content, err := h.service.GetPseudoContent(c.Context(), record)
		if err != nil {
			l.Error("Fetching pseudo content failed", zap.String("node_id", record.NodeID), zap.Error(err))
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+record.Filename+`"`)
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		return c.Send(content)
	}

	return c.JSON(record)
}

// HandleVerifyFamily verifies a family's content against object storage.
// @Summary Verify Family
// @Description Reconcile a family's records against object storage, reporting missing content and checksum mismatches. Reports are cached.
// @Tags families
// @Accept json
// @Produce json
// @Param label path string true "Family label"
// @Success 200 {object} models.VerifyReport "Verify Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /families/{label}/verify [get]
func (h *Handler) HandleVerifyFamily(c *fiber.Ctx) error {
	label := c.Params("label")
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.VerifyFamily(c.Context(), label)
	if err != nil {
		l.Warn("Family verify failed", zap.String("label", label), zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(report)
}

// respondError maps the family error kinds to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		status = fiber.StatusConflict
	case errors.Is(err, ErrNotAllowed), errors.Is(err, ErrWrongType):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
