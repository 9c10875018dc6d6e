package settings

import "errors"

// ErrNotConfigured is returned by updates when no settings row exists yet.
var ErrNotConfigured = errors.New("store settings have not been initialised")

// StoreSettings are the shop-wide preferences edited in the admin panel.
type StoreSettings struct {
	StoreName     string `json:"storeName"`
	Email         string `json:"email"`
	Currency      string `json:"currency"`
	TaxRate       string `json:"taxRate"`
	Notifications bool   `json:"notifications"`
}

// Defaults are written by the seed command.
func Defaults() StoreSettings {
	return StoreSettings{
		StoreName:     "IndiKart",
		Email:         "support@indikart.in",
		Currency:      "INR",
		TaxRate:       "18",
		Notifications: true,
	}
}
