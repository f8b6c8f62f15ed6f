package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"PosBridge/internal/controller/apperror"
	"PosBridge/internal/domain/order"
)

type OrderHandler struct {
	service *order.OrderService
}

func NewOrderHandler(s *order.OrderService) OrderHandler {
	return OrderHandler{service: s}
}

// OrderRequest is one order of a POS batch upload.
type OrderRequest struct {
	PosReference string             `json:"pos_reference" binding:"required"`
	SessionID    int64              `json:"session_id" binding:"required"`
	PartnerID    *int64             `json:"partner_id"`
	PartnerName  string             `json:"partner_name"`
	DateOrder    *time.Time         `json:"date_order"`
	AmountTotal  decimal.Decimal    `json:"amount_total"`
	AmountTax    decimal.Decimal    `json:"amount_tax"`
	AmountPaid   decimal.Decimal    `json:"amount_paid"`
	AmountReturn decimal.Decimal    `json:"amount_return"`
	State        string             `json:"state"`
	TableID      *int64             `json:"table_id"`
	Lines        []OrderLineRequest `json:"lines"`
}

type OrderLineRequest struct {
	ProductID         int64           `json:"product_id" binding:"required"`
	ProductName       string          `json:"product_name"`
	Qty               decimal.Decimal `json:"qty"`
	PriceUnit         decimal.Decimal `json:"price_unit"`
	PriceSubtotal     decimal.Decimal `json:"price_subtotal"`
	PriceSubtotalIncl decimal.Decimal `json:"price_subtotal_incl"`
	Discount          decimal.Decimal `json:"discount"`
	Note              string          `json:"note"`
}

type BatchRequest struct {
	Orders []OrderRequest `json:"orders" binding:"required"`
	Draft  bool           `json:"draft"`
}

// CreateBatch accepts a POS client batch upload, the bulk sync a terminal
// performs when it comes back online.
func (h *OrderHandler) CreateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	drafts := make([]order.Draft, 0, len(req.Orders))
	for _, o := range req.Orders {
		drafts = append(drafts, toDraft(o))
	}

	created, err := h.service.CreateFromBatch(c, drafts, req.Draft)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicateReference) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ids := make([]int64, 0, len(created))
	for _, o := range created {
		ids = append(ids, o.ID)
	}

	c.JSON(http.StatusCreated, gin.H{"order_ids": ids})
}

// Create accepts a single order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.Create(c, toDraft(req))
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicateReference) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order_id"})
		return
	}

	res, err := h.service.GetOrder(c, orderID)
	if err != nil {
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Resend re-runs the API dispatch for one order.
func (h *OrderHandler) Resend(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order_id"})
		return
	}

	sent, err := h.service.Resend(c, orderID)
	if err != nil {
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

type resendByReferenceRequest struct {
	PosReference string `json:"pos_reference" binding:"required"`
}

// ResendByReference re-runs the API dispatch for the order with the given
// POS reference.
func (h *OrderHandler) ResendByReference(c *gin.Context) {
	var req resendByReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing pos_reference"})
		return
	}

	sent, err := h.service.ResendByReference(c, req.PosReference)
	if err != nil {
		if errors.Is(err, apperror.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

func toDraft(req OrderRequest) order.Draft {
	d := order.Draft{
		Reference:    req.PosReference,
		SessionID:    req.SessionID,
		OrderedAt:    req.DateOrder,
		AmountTotal:  req.AmountTotal,
		AmountTax:    req.AmountTax,
		AmountPaid:   req.AmountPaid,
		AmountReturn: req.AmountReturn,
		State:        order.State(req.State),
		TableID:      req.TableID,
	}
	if req.PartnerID != nil {
		d.Partner = &order.Partner{ID: *req.PartnerID, Name: req.PartnerName}
	}
	d.Lines = make([]order.LineDraft, 0, len(req.Lines))
	for _, l := range req.Lines {
		d.Lines = append(d.Lines, order.LineDraft{
			ProductID:         l.ProductID,
			ProductName:       l.ProductName,
			Qty:               l.Qty,
			PriceUnit:         l.PriceUnit,
			PriceSubtotal:     l.PriceSubtotal,
			PriceSubtotalIncl: l.PriceSubtotalIncl,
			Discount:          l.Discount,
			Note:              l.Note,
		})
	}
	return d
}
