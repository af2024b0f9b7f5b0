package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pdv_xpto/internal/domain/entities"
	"pdv_xpto/internal/domain/order"
	"pdv_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// CommitState tracks where a checkout attempt is in its lifecycle. The
// sequential path walks idle -> validating -> persisting_header ->
// persisting_items -> adjusting_stock -> committed; the atomic path
// replaces the three persistence states with a single atomic_write.

type CommitState string

const (
	CommitStateIdle             CommitState = "idle"
	CommitStateValidating       CommitState = "validating"
	CommitStatePersistingHeader CommitState = "persisting_header"
	CommitStatePersistingItems  CommitState = "persisting_items"
	CommitStateAdjustingStock   CommitState = "adjusting_stock"
	CommitStateAtomicWrite      CommitState = "atomic_write"
	CommitStateCommitted        CommitState = "committed"
)

// StockValidationError carries one message per order line whose quantity
// exceeds the live stock. Nothing has been written when it is returned.

type StockValidationError struct {
	Violations []string
}

func (e *StockValidationError) Error() string {
	return "insufficient stock: " + strings.Join(e.Violations, "; ")
}

// CommitError is a persistence failure before any irreversible catalog
// mutation: whatever was written before the failing step stays committed,
// the order stays intact, and the user may retry.

type CommitError struct {
	State CommitState
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("checkout failed while %s: %v", e.State, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// PartialStockAdjustmentError reports the documented non-atomic failure
// mode of the sequential path: the sale header and all items are persisted,
// but only some of the per-product stock decrements were applied before the
// store failed. AdjustedProductIDs lists the decrements that went through;
// FailedProductID is the line where the write stopped.

type PartialStockAdjustmentError struct {
	Sale               entities.Sale
	AdjustedProductIDs []string
	FailedProductID    string
	Err                error
}

func (e *PartialStockAdjustmentError) Error() string {
	return fmt.Sprintf(
		"sale %s persisted but stock adjustment failed at product %s (%d of %d applied): %v",
		e.Sale.SaleNumber, e.FailedProductID, len(e.AdjustedProductIDs),
		len(e.AdjustedProductIDs)+1, e.Err,
	)
}

func (e *PartialStockAdjustmentError) Unwrap() error { return e.Err }

// CacheInvalidator is the slice of the catalog provider the committer needs:
// dropping the cached product list once stock has changed.

type CacheInvalidator interface {
	InvalidateCache()
}

// CheckoutInput is the caller-supplied data recorded on the sale beyond the
// order itself. The payment method is a label only; no gateway is involved.

type CheckoutInput struct {
	PaymentMethod entities.PaymentMethod
	Notes         string
}

// ICheckoutUseCase commits one checkout attempt.

type ICheckoutUseCase interface {
	Commit(ctx context.Context, ord *order.Order, in CheckoutInput) (entities.Sale, error)
}

// CheckoutUseCase orchestrates the multi-step commit of an order against the
// external store.
//
// Sequential path (default): allocate sale number, persist header, persist
// items, then decrement stock per product with read-modify-write cycles.
// Each step is awaited before the next starts, and no step is retried or
// rolled back; a failure during stock adjustment leaves the catalog
// partially adjusted (PartialStockAdjustmentError).
//
// Atomic path (POS_ATOMIC_COMMIT=true): header, items and conditional stock
// decrements go into one multi-row transactional write, so either everything
// applies or nothing does.
//
// There is no cross-terminal locking: two concurrent checkouts can both pass
// validation against the same stock and oversell on the sequential path.

type CheckoutUseCase struct {
	saleRepo    interfaces.ISaleRepository
	productRepo interfaces.IProductRepository
	cache       CacheInvalidator
	atomic      bool
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(saleRepo interfaces.ISaleRepository, productRepo interfaces.IProductRepository, cache CacheInvalidator) *CheckoutUseCase {
	return &CheckoutUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		cache:       cache,
		atomic:      isAtomicCommitEnabled(),
	}
}

func isAtomicCommitEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("POS_ATOMIC_COMMIT"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func (u *CheckoutUseCase) Commit(ctx context.Context, ord *order.Order, in CheckoutInput) (entities.Sale, error) {
	log.Printf("[checkout][usecase] commit start payment_method=%s atomic=%v", in.PaymentMethod, u.atomic)

	state := CommitStateValidating
	if ord == nil || ord.IsEmpty() {
		log.Printf("[checkout][usecase] rejected: empty order")
		return entities.Sale{}, ErrEmptyOrder
	}
	if !in.PaymentMethod.Valid() {
		log.Printf("[checkout][usecase] rejected: payment_method=%q", in.PaymentMethod)
		return entities.Sale{}, ErrInvalidPaymentMethod
	}

	lines := ord.Lines()
	snapshot, err := u.liveSnapshot(ctx, lines)
	if err != nil {
		log.Printf("[checkout][usecase] snapshot read failed err=%v", err)
		return entities.Sale{}, &CommitError{State: state, Err: err}
	}
	if v := order.ValidateStock(lines, snapshot); !v.Valid {
		log.Printf("[checkout][usecase] stock validation failed violations=%d", len(v.Errors))
		return entities.Sale{}, &StockValidationError{Violations: v.Errors}
	}

	// Totals are captured once, here; every persisted figure derives from
	// this instant, never re-computed later.
	totals := ord.Totals()
	discount := ord.Discount()

	state = CommitStatePersistingHeader
	saleNumber, err := u.saleRepo.NextSaleNumber(ctx)
	if err != nil {
		log.Printf("[checkout][usecase] sale number allocation failed err=%v", err)
		return entities.Sale{}, &CommitError{State: state, Err: err}
	}

	now := time.Now().UTC()
	sale := entities.Sale{
		ID:             uuid.NewString(),
		SaleNumber:     saleNumber,
		TotalAmount:    totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		FinalAmount:    totals.Total,
		PaymentMethod:  in.PaymentMethod,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
	}
	if discount.Type == entities.DiscountTypePercentage {
		sale.DiscountPercentage = discount.Value
	}

	items := make([]entities.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entities.SaleItem{
			ID:          uuid.NewString(),
			SaleID:      sale.ID,
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.Product.SalePrice,
			Subtotal:    l.Subtotal,
			CreatedAt:   now,
		})
	}

	if u.atomic {
		if err := u.commitAtomic(ctx, sale, items, lines); err != nil {
			return entities.Sale{}, err
		}
	} else {
		if err := u.commitSequential(ctx, sale, items, lines); err != nil {
			return entities.Sale{}, err
		}
	}

	state = CommitStateCommitted
	ord.Clear()
	if u.cache != nil {
		u.cache.InvalidateCache()
	}
	log.Printf("[checkout][usecase] commit success sale_number=%s final_amount=%.2f items=%d state=%s",
		sale.SaleNumber, sale.FinalAmount, len(items), state)
	return sale, nil
}

// liveSnapshot re-reads every line's product from the store so validation
// runs against current stock, not the quantities cached when the products
// were added to the order.
func (u *CheckoutUseCase) liveSnapshot(ctx context.Context, lines []order.Line) (map[string]entities.Product, error) {
	snapshot := make(map[string]entities.Product, len(lines))
	for _, l := range lines {
		p, err := u.productRepo.GetByID(ctx, l.Product.ID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			// Missing products are reported by the validator, per line.
			continue
		}
		snapshot[p.ID] = p
	}
	return snapshot, nil
}

func (u *CheckoutUseCase) commitSequential(ctx context.Context, sale entities.Sale, items []entities.SaleItem, lines []order.Line) error {
	if _, err := u.saleRepo.InsertSale(ctx, sale); err != nil {
		log.Printf("[checkout][usecase] header persist failed sale_number=%s err=%v", sale.SaleNumber, err)
		return &CommitError{State: CommitStatePersistingHeader, Err: err}
	}

	if err := u.saleRepo.InsertSaleItems(ctx, items); err != nil {
		log.Printf("[checkout][usecase] items persist failed sale_number=%s err=%v", sale.SaleNumber, err)
		return &CommitError{State: CommitStatePersistingItems, Err: err}
	}

	// Per-product read-modify-write, not batched and not transactional.
	// A failure from here on leaves the sale persisted and the catalog
	// partially adjusted; that is surfaced, never hidden.
	log.Printf("[checkout][usecase] state=%s sale_number=%s products=%d", CommitStateAdjustingStock, sale.SaleNumber, len(lines))
	adjusted := make([]string, 0, len(lines))
	for _, l := range lines {
		p, err := u.productRepo.GetByID(ctx, l.Product.ID)
		if err != nil {
			return u.partialFailure(sale, adjusted, l.Product.ID, err)
		}
		if _, err := u.productRepo.UpdateStock(ctx, l.Product.ID, p.Stock-l.Quantity); err != nil {
			return u.partialFailure(sale, adjusted, l.Product.ID, err)
		}
		adjusted = append(adjusted, l.Product.ID)
	}
	return nil
}

func (u *CheckoutUseCase) partialFailure(sale entities.Sale, adjusted []string, failedID string, err error) error {
	log.Printf("[checkout][usecase] partial stock adjustment sale_number=%s failed_product=%s applied=%d err=%v",
		sale.SaleNumber, failedID, len(adjusted), err)
	if len(adjusted) > 0 && u.cache != nil {
		u.cache.InvalidateCache()
	}
	return &PartialStockAdjustmentError{
		Sale:               sale,
		AdjustedProductIDs: adjusted,
		FailedProductID:    failedID,
		Err:                err,
	}
}

func (u *CheckoutUseCase) commitAtomic(ctx context.Context, sale entities.Sale, items []entities.SaleItem, lines []order.Line) error {
	decrements := make([]interfaces.StockDecrement, 0, len(lines))
	for _, l := range lines {
		decrements = append(decrements, interfaces.StockDecrement{ProductID: l.Product.ID, Quantity: l.Quantity})
	}

	if err := u.saleRepo.CommitSaleAtomic(ctx, sale, items, decrements); err != nil {
		log.Printf("[checkout][usecase] atomic commit failed sale_number=%s err=%v", sale.SaleNumber, err)
		return &CommitError{State: CommitStateAtomicWrite, Err: err}
	}
	return nil
}
