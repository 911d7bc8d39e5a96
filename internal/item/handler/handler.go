package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coreapp/item-service/internal/item/service"
)

// RegisterItemRoutes mounts the item API on the given engine.
func RegisterItemRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/items", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		out := make([]map[string]interface{}, 0, len(list))
		for _, it := range list {
			out = append(out, map[string]interface{}{"id": it.ID, "name": it.Name, "createdAt": it.CreatedAt})
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/api/items", func(c *gin.Context) {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		it, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidName):
				c.JSON(http.StatusBadRequest, gin.H{"error": "name must be 1-128 characters"})
			case errors.Is(err, service.ErrDuplicate):
				c.JSON(http.StatusConflict, gin.H{"error": "name already exists"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": it.ID, "name": it.Name})
	})

	r.GET("/api/items/:name", func(c *gin.Context) {
		it, err := svc.GetByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": it.ID, "name": it.Name, "createdAt": it.CreatedAt, "updatedAt": it.UpdatedAt})
	})
}
