// Package handlers exposes the route evaluator over HTTP.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ruthvikr01/Route-Navigator/models"
	"github.com/Ruthvikr01/Route-Navigator/services"
)

type RouteHandler struct {
	routeService *services.RouteService
}

func NewRouteHandler(routeService *services.RouteService) *RouteHandler {
	return &RouteHandler{routeService: routeService}
}

func (h *RouteHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/cities", h.ListCities)
	r.GET("/api/route", h.ComputeRoute)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}

// ListCities returns every known city sorted by display name.
func (h *RouteHandler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.routeService.Cities()})
}

// ComputeRoute evaluates src -> dst with the requested algorithm token
// (default BEST). Unknown endpoints are rejected here; the evaluator assumes
// valid ids.
func (h *RouteHandler) ComputeRoute(c *gin.Context) {
	src := c.Query("src")
	dst := c.Query("dst")
	if src == "" || dst == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing src or dst"})
		return
	}
	if !h.routeService.HasLocation(src) || !h.routeService.HasLocation(dst) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid src or dst"})
		return
	}

	alg := services.Algorithm(strings.ToUpper(c.DefaultQuery("alg", string(services.AlgBest))))
	var result models.RouteResult
	if alg == services.AlgBest {
		result = h.routeService.EvaluateBest(src, dst)
	} else {
		result = h.routeService.Evaluate(src, dst, alg)
	}

	c.JSON(http.StatusOK, models.RouteResponse{
		RouteResult: result,
		SrcID:       src,
		DstID:       dst,
		SrcName:     h.routeService.LocationName(src),
		DstName:     h.routeService.LocationName(dst),
	})
}
