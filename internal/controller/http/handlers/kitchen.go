package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"PosBridge/internal/controller/apperror"
	"PosBridge/internal/domain/kitchen"
)

type KitchenHandler struct {
	service *kitchen.KitchenService
}

func NewKitchenHandler(s *kitchen.KitchenService) KitchenHandler {
	return KitchenHandler{service: s}
}

// Board returns the kitchen screen state of one shop.
func (h *KitchenHandler) Board(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Query("shop_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shop_id"})
		return
	}

	board, err := h.service.Board(c, shopID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}

type statusRequest struct {
	OrderStatus string `json:"order_status" binding:"required"`
}

// UpdateStatus moves one order through the kitchen workflow.
func (h *KitchenHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order_id"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_status"})
		return
	}

	update, err := h.service.UpdateStatus(c, orderID, req.OrderStatus)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidKitchenStatus) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, update)
}
