package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ejsmarket/internal/service"
)

// ContentHandler handles storefront marketing content endpoints.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GetHomeContent handles GET /api/v1/content/home
// @Summary Landing page content
// @Description Active hero banners, testimonials, and partner logos for the storefront.
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=service.HomeContent} "Landing page content"
// @Router /content/home [get]
func (h *ContentHandler) GetHomeContent(c *gin.Context) {
	content, err := h.contentService.GetHomeContent(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, content)
}

// ListBanners handles GET /api/v1/admin/content/banners
// @Summary List hero banners
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.HeroBanner} "Banners"
// @Security BearerAuth
// @Router /admin/content/banners [get]
func (h *ContentHandler) ListBanners(c *gin.Context) {
	banners, err := h.contentService.ListBanners(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, banners)
}

// CreateBanner handles POST /api/v1/admin/content/banners
// @Summary Create a hero banner
// @Tags content
// @Accept json
// @Produce json
// @Param request body HeroBannerRequest true "Banner details"
// @Success 201 {object} Response{data=domain.HeroBanner} "Created banner"
// @Security BearerAuth
// @Router /admin/content/banners [post]
func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var input service.HeroBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	banner, err := h.contentService.CreateBanner(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, banner)
}

// UpdateBanner handles PUT /api/v1/admin/content/banners/:id
// @Summary Update a hero banner
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param request body HeroBannerRequest true "Banner details"
// @Success 200 {object} Response{data=domain.HeroBanner} "Updated banner"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/banners/{id} [put]
func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid banner id")
		return
	}

	var input service.HeroBannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	banner, err := h.contentService.UpdateBanner(c.Request.Context(), bannerID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, banner)
}

// DeleteBanner handles DELETE /api/v1/admin/content/banners/:id
// @Summary Delete a hero banner
// @Tags content
// @Produce json
// @Param id path string true "Banner ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/banners/{id} [delete]
func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid banner id")
		return
	}

	if err := h.contentService.DeleteBanner(c.Request.Context(), bannerID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "banner deleted"})
}

// ListTestimonials handles GET /api/v1/admin/content/testimonials
// @Summary List testimonials
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.Testimonial} "Testimonials"
// @Security BearerAuth
// @Router /admin/content/testimonials [get]
func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.contentService.ListTestimonials(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, testimonials)
}

// CreateTestimonial handles POST /api/v1/admin/content/testimonials
// @Summary Create a testimonial
// @Tags content
// @Accept json
// @Produce json
// @Param request body TestimonialRequest true "Testimonial details"
// @Success 201 {object} Response{data=domain.Testimonial} "Created testimonial"
// @Failure 400 {object} ErrorResponseBody "Invalid rating"
// @Security BearerAuth
// @Router /admin/content/testimonials [post]
func (h *ContentHandler) CreateTestimonial(c *gin.Context) {
	var input service.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	testimonial, err := h.contentService.CreateTestimonial(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, testimonial)
}

// UpdateTestimonial handles PUT /api/v1/admin/content/testimonials/:id
// @Summary Update a testimonial
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body TestimonialRequest true "Testimonial details"
// @Success 200 {object} Response{data=domain.Testimonial} "Updated testimonial"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/testimonials/{id} [put]
func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid testimonial id")
		return
	}

	var input service.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	testimonial, err := h.contentService.UpdateTestimonial(c.Request.Context(), testimonialID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, testimonial)
}

// DeleteTestimonial handles DELETE /api/v1/admin/content/testimonials/:id
// @Summary Delete a testimonial
// @Tags content
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/testimonials/{id} [delete]
func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid testimonial id")
		return
	}

	if err := h.contentService.DeleteTestimonial(c.Request.Context(), testimonialID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "testimonial deleted"})
}

// ListPartners handles GET /api/v1/admin/content/partners
// @Summary List partners
// @Tags content
// @Produce json
// @Success 200 {object} Response{data=[]domain.Partner} "Partners"
// @Security BearerAuth
// @Router /admin/content/partners [get]
func (h *ContentHandler) ListPartners(c *gin.Context) {
	partners, err := h.contentService.ListPartners(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, partners)
}

// CreatePartner handles POST /api/v1/admin/content/partners
// @Summary Create a partner
// @Tags content
// @Accept json
// @Produce json
// @Param request body PartnerRequest true "Partner details"
// @Success 201 {object} Response{data=domain.Partner} "Created partner"
// @Security BearerAuth
// @Router /admin/content/partners [post]
func (h *ContentHandler) CreatePartner(c *gin.Context) {
	var input service.PartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	partner, err := h.contentService.CreatePartner(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, partner)
}

// UpdatePartner handles PUT /api/v1/admin/content/partners/:id
// @Summary Update a partner
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param request body PartnerRequest true "Partner details"
// @Success 200 {object} Response{data=domain.Partner} "Updated partner"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/partners/{id} [put]
func (h *ContentHandler) UpdatePartner(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid partner id")
		return
	}

	var input service.PartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	partner, err := h.contentService.UpdatePartner(c.Request.Context(), partnerID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, partner)
}

// DeletePartner handles DELETE /api/v1/admin/content/partners/:id
// @Summary Delete a partner
// @Tags content
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /admin/content/partners/{id} [delete]
func (h *ContentHandler) DeletePartner(c *gin.Context) {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid partner id")
		return
	}

	if err := h.contentService.DeletePartner(c.Request.Context(), partnerID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "partner deleted"})
}
