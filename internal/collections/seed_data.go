package collections

import (
	"time"

	"guest-portal-backend/internal/model"
)

// Fixed demo dataset: 3 tenants, 8 categories, and a shared service list
// stamped out per tenant. Ids are stable so reseeding a wiped store produces
// identical data.

func seedTenants(now time.Time) []model.Tenant {
	return []model.Tenant{
		{
			ID:   "tenant-vista",
			Slug: "villa-vista",
			Name: "Villa Vista",
			Description: &model.LocalizedText{
				EN: "A quiet hillside villa above the old town.",
				BS: "Mirna vila na brdu iznad starog grada.",
			},
			Branding: model.Branding{
				PrimaryColor: "#1d4ed8",
				AccentColor:  "#f59e0b",
				HeroLayout:   "full",
			},
			Contact: model.ContactInfo{
				Email:    "stay@villavista.example",
				Phone:    "+387 61 000 001",
				WhatsApp: "+387 61 000 001",
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:   "tenant-stari-grad",
			Slug: "stari-grad-suites",
			Name: "Stari Grad Suites",
			Description: &model.LocalizedText{
				EN: "Apartments in the heart of the bazaar.",
				BS: "Apartmani u srcu čaršije.",
			},
			Branding: model.Branding{
				PrimaryColor: "#047857",
				AccentColor:  "#d97706",
				HeroLayout:   "split",
			},
			Contact: model.ContactInfo{
				Email: "hello@starigradsuites.example",
				Phone: "+387 61 000 002",
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:   "tenant-panorama",
			Slug: "panorama-lodge",
			Name: "Panorama Lodge",
			Branding: model.Branding{
				PrimaryColor: "#7c3aed",
				HideBranding: true,
			},
			Contact: model.ContactInfo{
				Email:   "book@panoramalodge.example",
				Address: "Planinska 12",
			},
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func seedCategories() []model.ServiceCategory {
	return []model.ServiceCategory{
		{ID: "cat-transport", Name: model.LocalizedText{EN: "Transport", BS: "Prijevoz"}, Icon: "car", Order: 0, Active: true},
		{ID: "cat-food", Name: model.LocalizedText{EN: "Food & Drinks", BS: "Hrana i piće"}, Icon: "utensils", Order: 1, Active: true},
		{ID: "cat-tours", Name: model.LocalizedText{EN: "Tours", BS: "Ture"}, Icon: "map", Order: 2, Active: true},
		{ID: "cat-wellness", Name: model.LocalizedText{EN: "Wellness", BS: "Wellness"}, Icon: "spa", Order: 3, Active: true},
		{ID: "cat-laundry", Name: model.LocalizedText{EN: "Laundry", BS: "Vešeraj"}, Icon: "shirt", Order: 4, Active: true},
		{ID: "cat-groceries", Name: model.LocalizedText{EN: "Groceries", BS: "Namirnice"}, Icon: "basket", Order: 5, Active: true},
		{ID: "cat-activities", Name: model.LocalizedText{EN: "Activities", BS: "Aktivnosti"}, Icon: "ticket", Order: 6, Active: true},
		{ID: "cat-other", Name: model.LocalizedText{EN: "Other", BS: "Ostalo"}, Icon: "dots", Order: 7, Active: true},
	}
}

func seedServices(now time.Time) []model.Service {
	price := func(v float64) *float64 { return &v }

	base := []model.Service{
		{
			ID:         "svc-airport-transfer",
			CategoryID: "cat-transport",
			Name:       model.LocalizedText{EN: "Airport Transfer", BS: "Prijevoz sa aerodroma"},
			Description: model.LocalizedText{
				EN: "Private ride between the airport and your stay.",
				BS: "Privatni prijevoz između aerodroma i smještaja.",
			},
			PricingType: model.PricingFixed,
			Price:       price(25),
			Currency:    "EUR",
			Tiers: []model.ServiceTier{
				{ID: "tier-sedan", Name: model.LocalizedText{EN: "Sedan", BS: "Limuzina"}, Price: price(25)},
				{ID: "tier-van", Name: model.LocalizedText{EN: "Van (6 seats)", BS: "Kombi (6 mjesta)"}, Price: price(40), Badge: "popular"},
			},
			Active:   true,
			Featured: true,
			Order:    0,
		},
		{
			ID:         "svc-breakfast",
			CategoryID: "cat-food",
			Name:       model.LocalizedText{EN: "Breakfast Basket", BS: "Korpa za doručak"},
			Description: model.LocalizedText{
				EN: "Local breakfast delivered to your door.",
				BS: "Domaći doručak dostavljen na vrata.",
			},
			PricingType: model.PricingFixed,
			Price:       price(12),
			Currency:    "EUR",
			Active:      true,
			Order:       1,
		},
		{
			ID:         "svc-old-town-tour",
			CategoryID: "cat-tours",
			Name:       model.LocalizedText{EN: "Old Town Walking Tour", BS: "Šetnja starim gradom"},
			Description: model.LocalizedText{
				EN: "Two hours through the old town with a local guide.",
				BS: "Dva sata kroz stari grad uz lokalnog vodiča.",
			},
			PricingType: model.PricingVariable,
			Price:       price(15),
			Currency:    "EUR",
			Active:      true,
			Order:       2,
		},
		{
			ID:         "svc-late-checkout",
			CategoryID: "cat-other",
			Name:       model.LocalizedText{EN: "Late Checkout", BS: "Kasna odjava"},
			Description: model.LocalizedText{
				EN: "Keep the room until 3pm, subject to availability.",
				BS: "Zadržite sobu do 15h, po dostupnosti.",
			},
			PricingType: model.PricingFree,
			Currency:    "EUR",
			Active:      true,
			Order:       3,
		},
		{
			ID:         "svc-private-chef",
			CategoryID: "cat-food",
			Name:       model.LocalizedText{EN: "Private Chef Evening", BS: "Privatni kuhar"},
			Description: model.LocalizedText{
				EN: "A chef cooks a three-course dinner at your place.",
				BS: "Kuhar priprema večeru od tri slijeda u vašem smještaju.",
			},
			PricingType: model.PricingQuote,
			Currency:    "EUR",
			Active:      true,
			Order:       4,
		},
	}

	tenantIDs := []string{"tenant-vista", "tenant-stari-grad", "tenant-panorama"}
	services := make([]model.Service, 0, len(base)*len(tenantIDs))
	for _, tenantID := range tenantIDs {
		for _, svc := range base {
			s := svc
			s.TenantID = tenantID
			// One tenant keeps the canonical ids, the rest get prefixed
			// copies so ids stay unique across the shared list.
			if tenantID != tenantIDs[0] {
				s.ID = tenantID + "-" + svc.ID
			}
			s.CreatedAt = now
			s.UpdatedAt = now
			services = append(services, s)
		}
	}
	return services
}
