package api

import (
	"net/http"

	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

// @Summary Search performances
// @Description District and keyword are mutually exclusive; district wins
// @Tags search
// @Produce json
// @Param location query string false "District code (signgucode)"
// @Param type query string false "Genre code, or 전체 for all"
// @Param keyword query string false "Title keyword"
// @Success 200 {array} gateway.Performance
// @Router /performances [get]
func (h *SearchHandler) SearchPerformances(c *gin.Context) {
	rows, err := h.searchUseCase.SearchPerformances(
		c.Request.Context(), c.Query("location"), c.Query("type"), c.Query("keyword"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Performance search failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Performance detail
// @Tags search
// @Produce json
// @Param id path string true "Performance id"
// @Success 200 {object} gateway.PerformanceDetail
// @Router /performances/{id} [get]
func (h *SearchHandler) PerformanceDetail(c *gin.Context) {
	detail, err := h.searchUseCase.PerformanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Performance detail failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Venue detail
// @Tags search
// @Produce json
// @Param id path string true "Venue id"
// @Success 200 {object} gateway.Venue
// @Router /venues/{id} [get]
func (h *SearchHandler) VenueDetail(c *gin.Context) {
	venue, err := h.searchUseCase.VenueDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Venue detail failed"})
		return
	}
	c.JSON(http.StatusOK, venue)
}

// @Summary Search accommodations by area
// @Tags search
// @Produce json
// @Param areaCode query string true "Area code"
// @Param sigunguCode query string false "District code"
// @Param cat3 query string false "Lodging category code"
// @Success 200 {array} gateway.Accommodation
// @Router /accommodations [get]
func (h *SearchHandler) SearchAccommodations(c *gin.Context) {
	areaCode := c.Query("areaCode")
	if areaCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "areaCode is required"})
		return
	}

	rows, err := h.searchUseCase.SearchAccommodations(
		c.Request.Context(), areaCode, c.Query("sigunguCode"), c.Query("cat3"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Accommodation search failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Search accommodations by keyword
// @Tags search
// @Produce json
// @Param keyword query string true "Name keyword"
// @Success 200 {array} gateway.Accommodation
// @Router /accommodations/search [get]
func (h *SearchHandler) SearchAccommodationsByKeyword(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	rows, err := h.searchUseCase.SearchAccommodationsByKeyword(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Accommodation search failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
