package handlers

import (
	"errors"
	"net/http"

	request "pdv_xpto/internal/adapter/http/dto/request"
	response "pdv_xpto/internal/adapter/http/dto/response"
	"pdv_xpto/internal/domain/order"
	"pdv_xpto/internal/usecase"
	"pdv_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles POST /v1/sales: it rebuilds the order from the
// live catalog (client payloads carry ids and quantities, never prices) and
// hands it to the sale committer.

type CheckoutHandler struct {
	catalog  usecase.ICatalogUseCase
	checkout usecase.ICheckoutUseCase
}

func NewCheckoutHandler(catalog usecase.ICatalogUseCase, checkout usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{catalog: catalog, checkout: checkout}
}

func (h *CheckoutHandler) CreateSale(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	items, err := payload.ResolveItems()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	method, err := payload.ResolvePaymentMethod()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	discountType, discountValue, err := payload.ResolveDiscount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Invalid discount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ord := order.New()
	for _, it := range items {
		p, err := h.catalog.GetProduct(c.Request.Context(), it.ProductID)
		if err != nil {
			appErr := mapCheckoutError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		ord.AddLine(p, it.Quantity)
	}
	ord.ApplyDiscount(discountType, discountValue)

	sale, err := h.checkout.Commit(c.Request.Context(), ord, usecase.CheckoutInput{
		PaymentMethod: method,
		Notes:         payload.Notes,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

func mapCheckoutError(err error) *pkg.AppError {
	var vErr *usecase.StockValidationError
	var pErr *usecase.PartialStockAdjustmentError
	switch {
	case errors.Is(err, usecase.ErrEmptyOrder):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Order has no items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusUnprocessableEntity)
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock", http.StatusUnprocessableEntity).
			WithDetails(vErr.Violations)
	case errors.As(err, &pErr):
		// The sale is persisted; only part of the stock adjustments went
		// through. Surfaced explicitly so the operator can reconcile.
		return pkg.NewDomainError("PARTIAL_STOCK_ADJUSTMENT", "Sale recorded but stock was only partially adjusted", err, http.StatusConflict).
			WithDetails([]string{"sale_number: " + pErr.Sale.SaleNumber, "failed_product_id: " + pErr.FailedProductID})
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
