package storefront

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/indikart/indikart-backend/internal/modules/order"
	"go.uber.org/zap"
)

// CheckoutState is the position of the checkout flow.
type CheckoutState string

const (
	StateIdle       CheckoutState = "idle"
	StateProcessing CheckoutState = "processing"
	StateSucceeded  CheckoutState = "succeeded"
	StateFailed     CheckoutState = "failed"
)

// Outcome reports what a Submit call did.
type Outcome string

const (
	OutcomeIgnored   Outcome = "ignored"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

const (
	// DefaultSuccessDelay is how long the success state is shown before
	// returning to idle.
	DefaultSuccessDelay = 2500 * time.Millisecond

	MsgOrderPlaced = "Order placed successfully! 🎉"
	MsgOrderFailed = "Failed to place order"
)

var errNoOrder = errors.New("order service returned no order")

// OrderCreator persists a checkout submission.
type OrderCreator interface {
	CreateOrder(ctx context.Context, sub order.Submission) (*order.Order, error)
}

// TransitionFunc observes state changes. It runs with the checkout lock
// held and must not call back into the Checkout.
type TransitionFunc func(from, to CheckoutState)

// Checkout turns the cart into an order, one submission at a time.
type Checkout struct {
	mu           sync.Mutex
	state        CheckoutState
	cart         *Cart
	orders       OrderCreator
	notifier     Notifier
	logger       *zap.Logger
	successDelay time.Duration
	timer        *time.Timer
	observer     TransitionFunc
	closed       bool
}

func NewCheckout(cart *Cart, orders OrderCreator, notifier Notifier, successDelay time.Duration, logger *zap.Logger) *Checkout {
	if successDelay <= 0 {
		successDelay = DefaultSuccessDelay
	}
	return &Checkout{
		state:        StateIdle,
		cart:         cart,
		orders:       orders,
		notifier:     notifier,
		logger:       logger,
		successDelay: successDelay,
	}
}

// OnTransition installs an observer for every state change.
func (c *Checkout) OnTransition(fn TransitionFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = fn
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit places an order for the current cart. It does nothing unless the
// flow is idle and the cart has at least one line. Failures are reported
// to the shopper through a notification; the cause is only logged.
func (c *Checkout) Submit(ctx context.Context) (Outcome, *order.Order) {
	c.mu.Lock()
	if c.closed || c.state != StateIdle {
		c.mu.Unlock()
		return OutcomeIgnored, nil
	}
	sub, ok := c.cart.submission()
	if !ok {
		c.mu.Unlock()
		return OutcomeIgnored, nil
	}
	c.transition(StateProcessing)
	c.mu.Unlock()

	created, err := c.orders.CreateOrder(ctx, sub)
	if err == nil && created == nil {
		err = errNoOrder
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Error("checkout failed",
			zap.Int("lines", len(sub.Items)),
			zap.String("total", sub.Total.String()),
			zap.Error(err))
		c.transition(StateFailed)
		c.transition(StateIdle)
		c.notifier.Push(MsgOrderFailed, SeverityError)
		return OutcomeFailed, nil
	}

	c.logger.Info("order placed",
		zap.String("order_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.String("total", created.Total.String()))
	c.transition(StateSucceeded)
	c.cart.Clear()
	c.notifier.Push(MsgOrderPlaced, SeveritySuccess)
	if !c.closed {
		c.timer = time.AfterFunc(c.successDelay, c.finish)
	}
	return OutcomeSucceeded, created
}

// Close cancels a pending return to idle.
func (c *Checkout) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checkout) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timer = nil
	if c.closed || c.state != StateSucceeded {
		return
	}
	c.transition(StateIdle)
	c.cart.SetOpen(false)
}

func (c *Checkout) transition(to CheckoutState) {
	from := c.state
	c.state = to
	if c.observer != nil {
		c.observer(from, to)
	}
}
