package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// DemoProducts is the starter catalog loaded into empty stores.
func DemoProducts() []*Product {
	return []*Product{
		{ID: "p1", Name: "Godrej Ergonomic Office Chair", Description: "High-back mesh chair with adjustable lumbar support, perfect for WFH setups.",
			Price: decimal.RequireFromString("12999.00"), Type: TypePhysical, Stock: 45, SKU: "FURN-001", Category: "Home",
			Image: "https://images.unsplash.com/photo-1616627561839-074385245c4e?auto=format&fit=crop&w=400&q=80"},
		{ID: "p2", Name: "boAt Rockerz 550 Headphones", Description: "Wireless Bluetooth headphones with 20H playback and thumping bass.",
			Price: decimal.RequireFromString("1999.00"), Type: TypePhysical, Stock: 120, SKU: "ELEC-202", Category: "Electronics",
			Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=400&q=80"},
		{ID: "p3", Name: "Startup Legal Consultation", Description: "45-minute call with a CA for GST and business registration queries.",
			Price: decimal.RequireFromString("2499.00"), Type: TypeService, Stock: 10, SKU: "SERV-101", Category: "Service",
			Image: "https://images.unsplash.com/photo-1521791136064-7986c2920216?auto=format&fit=crop&w=400&q=80"},
		{ID: "p4", Name: "Ultimate Social Media Kit", Description: "500+ Canva templates for Instagram, LinkedIn and Twitter marketing.",
			Price: decimal.RequireFromString("999.00"), Type: TypeDigital, Stock: 999, SKU: "DIGI-005", Category: "Service",
			Image: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?auto=format&fit=crop&w=400&q=80"},
		{ID: "p5", Name: "Logitech MX Master 3S", Description: "Performance wireless mouse with ultra-fast scrolling and 8K DPI.",
			Price: decimal.RequireFromString("8995.00"), Type: TypePhysical, Stock: 25, SKU: "ELEC-305", Category: "Electronics",
			Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=400&q=80"},
		{ID: "p6", Name: "Jaipur Cotton Bedsheet (King)", Description: "100% Cotton traditional Rajasthani printed bedsheet with pillow covers.",
			Price: decimal.RequireFromString("849.00"), Type: TypePhysical, Stock: 200, SKU: "HOME-102", Category: "Home",
			Image: "https://images.unsplash.com/photo-1522771753035-0a1518ac39da?auto=format&fit=crop&w=400&q=80"},
		{ID: "p7", Name: "iPhone 15 (128GB)", Description: "The latest iPhone with Dynamic Island and 48MP camera.",
			Price: decimal.RequireFromString("79900.00"), Type: TypePhysical, Stock: 15, SKU: "MOB-001", Category: "Mobiles",
			Image: "https://images.unsplash.com/photo-1696446701796-da61225697cc?auto=format&fit=crop&w=400&q=80"},
		{ID: "p8", Name: "Nike Air Jordan 1", Description: "Classic high-top sneakers in red and white colorway.",
			Price: decimal.RequireFromString("13995.00"), Type: TypePhysical, Stock: 8, SKU: "FASH-001", Category: "Fashion",
			Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=400&q=80"},
		{ID: "p9", Name: "Lakme Absolute Lipstick", Description: "Matte finish long-lasting lipstick in Red Rush.",
			Price: decimal.RequireFromString("750.00"), Type: TypePhysical, Stock: 100, SKU: "BEAU-001", Category: "Beauty",
			Image: "https://images.unsplash.com/photo-1586495777744-4413f21062fa?auto=format&fit=crop&w=400&q=80"},
	}
}

// Seed inserts the demo products that are not already present.
func Seed(ctx context.Context, repo Repository) (int, error) {
	added := 0
	for _, p := range DemoProducts() {
		_, err := repo.GetByID(ctx, p.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return added, err
		}
		if err := repo.Create(ctx, p); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
