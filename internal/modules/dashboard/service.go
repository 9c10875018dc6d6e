// Package dashboard computes the admin overview figures from stored orders
// and customers.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/indikart/indikart-backend/internal/modules/order"
)

// recentOrderCount is how many orders the overview lists.
const recentOrderCount = 5

// DaySales is the revenue booked on one calendar day.
type DaySales struct {
	Name  string          `json:"name"`
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

// Stats is the admin overview.
type Stats struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int             `json:"orders"`
	Customers     int             `json:"customers"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	SalesData     []DaySales      `json:"salesData"`
	RecentOrders  []*order.Order  `json:"recentOrders"`
}

// OrderLister is the slice of the order repository the dashboard reads.
type OrderLister interface {
	ListOrders(ctx context.Context) ([]*order.Order, error)
}

// CustomerCounter is the slice of the customer repository the dashboard reads.
type CustomerCounter interface {
	CountCustomers(ctx context.Context) (int, error)
}

// Service computes dashboard figures.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	orders    OrderLister
	customers CustomerCounter
	now       func() time.Time
}

func NewService(orders OrderLister, customers CustomerCounter) Service {
	return &service{orders: orders, customers: customers, now: time.Now}
}

// Stats loads orders and the customer count concurrently. Refunded orders
// count towards the order total but not towards revenue.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var (
		orders    []*order.Order
		customers int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.ListOrders(gctx)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = s.customers.CountCustomers(gctx)
		if err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &Stats{
		Revenue:      decimal.Zero,
		Orders:       len(orders),
		Customers:    customers,
		SalesData:    s.lastSevenDays(),
		RecentOrders: []*order.Order{},
	}
	byDate := make(map[string]int, len(st.SalesData))
	for i, d := range st.SalesData {
		byDate[d.Date] = i
	}

	paid := 0
	for _, o := range orders {
		if o.Status == order.StatusRefunded {
			continue
		}
		paid++
		st.Revenue = st.Revenue.Add(o.Total)
		if i, ok := byDate[o.CreatedAt.UTC().Format("2006-01-02")]; ok {
			st.SalesData[i].Sales = st.SalesData[i].Sales.Add(o.Total)
		}
	}
	st.AvgOrderValue = decimal.Zero
	if paid > 0 {
		st.AvgOrderValue = st.Revenue.Div(decimal.NewFromInt(int64(paid))).Round(2)
	}

	// orders arrive newest first
	n := len(orders)
	if n > recentOrderCount {
		n = recentOrderCount
	}
	st.RecentOrders = append(st.RecentOrders, orders[:n]...)
	return st, nil
}

// lastSevenDays returns empty buckets from six days ago through today (UTC).
func (s *service) lastSevenDays() []DaySales {
	today := s.now().UTC().Truncate(24 * time.Hour)
	days := make([]DaySales, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		days = append(days, DaySales{
			Name:  d.Weekday().String()[:3],
			Date:  d.Format("2006-01-02"),
			Sales: decimal.Zero,
		})
	}
	return days
}
