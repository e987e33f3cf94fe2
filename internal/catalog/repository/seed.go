package repository

import "github.com/tair/order-management/internal/catalog/domain"

// DefaultCatalog returns the compiled-in product seed list
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Australian Macadamias (250g)", Price: 25.00, Stock: 10},
		{ID: 2, Name: "Premium Manuka Honey (MGO 500+)", Price: 55.00, Stock: 5},
		{ID: 3, Name: "Organic Herbal Tea Selection", Price: 30.00, Stock: 0},
		{ID: 4, Name: "Vegemite Original (220g)", Price: 6.50, Stock: 50},
		{ID: 5, Name: "Tim Tam Double Coat (200g)", Price: 5.00, Stock: 20},
		{ID: 6, Name: "Lucas' Paw Paw Ointment (25g)", Price: 7.50, Stock: 100},
		{ID: 7, Name: "Eucalyptus Oil (100ml)", Price: 12.00, Stock: 15},
		{ID: 8, Name: "Kangaroo Jerky (100g)", Price: 18.00, Stock: 8},
		{ID: 9, Name: "Merino Wool Socks (Grey)", Price: 22.00, Stock: 3},
		{ID: 10, Name: "Zinc Sunscreen SPF 50+ (200ml)", Price: 19.50, Stock: 40},
	}
}
