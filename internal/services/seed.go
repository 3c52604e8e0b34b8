package services

import "catalog/internal/models"

// SampleProducts returns the fixed catalog inserted into an empty store at
// startup.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Wireless Headphones",
			Description: "Noise-cancelling over-ear headphones with 30h battery.",
			Price:       129.99,
			Category:    "Electronics",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1518445077100-1be42e41a1b7?w=800&q=80",
			Rating:      4.6,
		},
		{
			Title:       "Smart Watch",
			Description: "Fitness tracking, heart-rate monitor, and notifications.",
			Price:       89.0,
			Category:    "Electronics",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800&q=80",
			Rating:      4.4,
		},
		{
			Title:       "Minimalist Sneakers",
			Description: "Lightweight, breathable everyday sneakers.",
			Price:       59.99,
			Category:    "Fashion",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1528701800489-20be0b1c7e82?w=800&q=80",
			Rating:      4.2,
		},
		{
			Title:       "Ceramic Mug",
			Description: "Matte finish mug for your daily coffee ritual.",
			Price:       14.5,
			Category:    "Home & Kitchen",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517686469429-8bdb88b9f907?w=800&q=80",
			Rating:      4.8,
		},
		{
			Title:       "Standing Desk",
			Description: "Adjustable height desk for ergonomic work.",
			Price:       279.0,
			Category:    "Office",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517084166765-7f75a9966ace?w=800&q=80",
			Rating:      4.7,
		},
		{
			Title:       "Cotton T-Shirt",
			Description: "Soft, breathable cotton tee in multiple colors.",
			Price:       19.99,
			Category:    "Fashion",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1520975916090-3105956dac38?w=800&q=80",
			Rating:      4.1,
		},
	}
}
