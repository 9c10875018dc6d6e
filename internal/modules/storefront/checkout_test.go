package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/indikart/indikart-backend/internal/modules/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeOrders struct {
	mu      sync.Mutex
	subs    []order.Submission
	err     error
	noOrder bool
	entered chan struct{}
	release chan struct{}
}

func (f *fakeOrders) CreateOrder(ctx context.Context, sub order.Submission) (*order.Order, error) {
	f.mu.Lock()
	f.subs = append(f.subs, sub)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil || f.noOrder {
		return nil, f.err
	}
	return &order.Order{
		ID:           "o1",
		OrderNumber:  "ORD-20261015-0001",
		CustomerName: order.GuestCustomer,
		Items:        sub.Items,
		Total:        sub.Total,
		Status:       order.StatusPending,
	}, nil
}

func (f *fakeOrders) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type transitions struct {
	mu   sync.Mutex
	seen []CheckoutState
}

func (tr *transitions) observe(_, to CheckoutState) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.seen = append(tr.seen, to)
}

func (tr *transitions) states() []CheckoutState {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]CheckoutState(nil), tr.seen...)
}

func TestCheckoutSuccess(t *testing.T) {
	n := &recordingNotifier{}
	cart := NewCart(n)
	cart.AddItem(product("p2", "boAt Rockerz 550 Headphones", "1999.00"))
	cart.AddItem(product("p2", "boAt Rockerz 550 Headphones", "1999.00"))
	orders := &fakeOrders{}
	co := NewCheckout(cart, orders, n, 20*time.Millisecond, zap.NewNop())
	defer co.Close()
	tr := &transitions{}
	co.OnTransition(tr.observe)

	outcome, placed := co.Submit(context.Background())

	require.Equal(t, OutcomeSucceeded, outcome)
	require.NotNil(t, placed)
	assert.Equal(t, order.GuestCustomer, placed.CustomerName)
	require.Len(t, orders.subs, 1)
	assert.Equal(t, 2, orders.subs[0].Items[0].Quantity)
	assert.Equal(t, "3998", orders.subs[0].Total.String())

	assert.Equal(t, StateSucceeded, co.State())
	assert.Empty(t, cart.Items())
	assert.False(t, cart.IsOpen())
	assert.Equal(t, pushed{MsgOrderPlaced, SeveritySuccess}, n.last())
	assert.Len(t, n.all(), 3, "two cart adds and one success")

	cart.SetOpen(true)
	require.Eventually(t, func() bool { return co.State() == StateIdle }, time.Second, 5*time.Millisecond)
	assert.False(t, cart.IsOpen())
	assert.Equal(t, []CheckoutState{StateProcessing, StateSucceeded, StateIdle}, tr.states())
}

func TestCheckoutFailure(t *testing.T) {
	n := &recordingNotifier{}
	cart := NewCart(n)
	cart.AddItem(product("p9", "Lakme Absolute Lipstick", "750.00"))
	core, logs := observer.New(zapcore.ErrorLevel)
	co := NewCheckout(cart, &fakeOrders{err: errors.New("connection refused")}, n, time.Hour, zap.New(core))
	defer co.Close()
	tr := &transitions{}
	co.OnTransition(tr.observe)

	outcome, placed := co.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Nil(t, placed)
	assert.Equal(t, StateIdle, co.State())
	assert.Equal(t, []CheckoutState{StateProcessing, StateFailed, StateIdle}, tr.states())
	assert.Len(t, cart.Items(), 1, "cart is untouched")
	assert.True(t, cart.IsOpen())
	assert.Equal(t, pushed{MsgOrderFailed, SeverityError}, n.last())
	assert.Len(t, n.all(), 2, "one cart add and one error")

	entries := logs.FilterMessage("checkout failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
}

func TestCheckoutEmptyCartIsIgnored(t *testing.T) {
	n := &recordingNotifier{}
	orders := &fakeOrders{}
	co := NewCheckout(NewCart(n), orders, n, time.Hour, zap.NewNop())
	defer co.Close()

	outcome, _ := co.Submit(context.Background())
	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Equal(t, StateIdle, co.State())
	assert.Zero(t, orders.calls())
	assert.Empty(t, n.all())
}

func TestCheckoutIgnoresSubmitWhileBusy(t *testing.T) {
	n := &recordingNotifier{}
	cart := NewCart(n)
	cart.AddItem(product("p1", "Godrej Ergonomic Office Chair", "12999.00"))
	orders := &fakeOrders{entered: make(chan struct{}, 1), release: make(chan struct{})}
	co := NewCheckout(cart, orders, n, time.Hour, zap.NewNop())
	defer co.Close()

	done := make(chan Outcome)
	go func() {
		outcome, _ := co.Submit(context.Background())
		done <- outcome
	}()
	<-orders.entered
	assert.Equal(t, StateProcessing, co.State())

	outcome, _ := co.Submit(context.Background())
	assert.Equal(t, OutcomeIgnored, outcome)

	close(orders.release)
	assert.Equal(t, OutcomeSucceeded, <-done)
	assert.Equal(t, 1, orders.calls())

	// Still showing success: a new cart cannot be submitted yet.
	cart.AddItem(product("p1", "Godrej Ergonomic Office Chair", "12999.00"))
	outcome, _ = co.Submit(context.Background())
	assert.Equal(t, OutcomeIgnored, outcome)
	assert.Equal(t, StateSucceeded, co.State())
}

func TestCheckoutCloseCancelsReturnToIdle(t *testing.T) {
	n := &recordingNotifier{}
	cart := NewCart(n)
	cart.AddItem(product("p4", "Ultimate Social Media Kit", "999.00"))
	co := NewCheckout(cart, &fakeOrders{}, n, 10*time.Millisecond, zap.NewNop())

	outcome, _ := co.Submit(context.Background())
	require.Equal(t, OutcomeSucceeded, outcome)
	co.Close()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, StateSucceeded, co.State())

	outcome, _ = co.Submit(context.Background())
	assert.Equal(t, OutcomeIgnored, outcome)
}

func TestCheckoutMissingOrderIsAFailure(t *testing.T) {
	n := &recordingNotifier{}
	cart := NewCart(n)
	cart.AddItem(product("p3", "Startup Legal Consultation", "2499.00"))
	core, logs := observer.New(zapcore.ErrorLevel)
	co := NewCheckout(cart, &fakeOrders{noOrder: true}, n, time.Hour, zap.New(core))
	defer co.Close()

	var outcome Outcome
	require.NotPanics(t, func() { outcome, _ = co.Submit(context.Background()) })

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, StateIdle, co.State())
	assert.Len(t, cart.Items(), 1)
	assert.Equal(t, pushed{MsgOrderFailed, SeverityError}, n.last())
	assert.Len(t, n.all(), 2)
	assert.Equal(t, 1, logs.FilterMessage("checkout failed").Len())
}
