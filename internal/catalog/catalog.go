package catalog

import "github.com/shopspring/decimal"

// Service is an offering shown on the home page.
type Service struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// Ad is a promotional banner shown on the home page.
type Ad struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

var services = []Service{
	{Name: "Car Wash", Price: decimal.NewFromInt(10), Image: "https://images.unsplash.com/photo-1503376780353-7e6692767b70"},
	{Name: "Full Detailing", Price: decimal.NewFromInt(60), Image: "https://images.unsplash.com/photo-1601924582971-df8fef8b2716"},
	{Name: "Haircut", Price: decimal.NewFromInt(15), Image: "https://images.unsplash.com/photo-1598515214280-6b0b64d6f68e"},
	{Name: "Shave", Price: decimal.NewFromInt(8), Image: "https://images.unsplash.com/photo-1588776814546-6044b9c1e3a3"},
}

var ads = []Ad{
	{Title: "Get 20% off your first Car Wash!", Image: "https://images.unsplash.com/photo-1605719124118-40e4a6f2e4f2"},
	{Title: "Weekend Offer: Haircut + Shave Combo", Image: "https://images.unsplash.com/photo-1621954520131-ecdf5d6f0ef9"},
}

// Services returns the static service catalog.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Ads returns the promotional banners.
func Ads() []Ad {
	out := make([]Ad, len(ads))
	copy(out, ads)
	return out
}
