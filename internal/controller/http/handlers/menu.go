package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"PosBridge/internal/domain/menu"
)

type MenuHandler struct {
	service *menu.MenuService
}

func NewMenuHandler(s *menu.MenuService) MenuHandler {
	return MenuHandler{service: s}
}

// Level serves one browse step of the public menu: top-level categories, or
// the subcategories and products of category_id.
func (h *MenuHandler) Level(c *gin.Context) {
	configID, err := strconv.ParseInt(c.Query("config_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid config_id"})
		return
	}

	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category_id"})
			return
		}
		categoryID = &id
	}

	lang := c.DefaultQuery("lang", menu.DefaultLanguage)

	level, err := h.service.Level(c, configID, categoryID, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, level)
}

// Languages serves the language list of the public menu.
func (h *MenuHandler) Languages(c *gin.Context) {
	languages, err := h.service.Languages(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"languages": languages})
}
