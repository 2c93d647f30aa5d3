// Package seed loads the demo catalog and accounts into an empty database.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/model"
)

var hashPassword = func(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

type demoUser struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     model.Role
	Premium  bool
}

type demoProduct struct {
	Name        string
	Description string
	Brand       string
	Price       string
	Stock       int
	Category    string
	ImageURL    string
	Discount    string
}

var users = []demoUser{
	{"Super Admin", "admin@ecommerce.com", "admin123", "9876543210", model.RoleAdmin, false},
	{"Tech Store", "seller@ecommerce.com", "seller123", "9876543211", model.RoleSeller, false},
	{"Fashion Hub", "fashion@ecommerce.com", "seller123", "9876543212", model.RoleSeller, false},
	{"John Doe", "john@example.com", "password123", "9876543213", model.RoleCustomer, true},
	{"Jane Smith", "jane@example.com", "password123", "9876543214", model.RoleCustomer, true},
	{"Alice Brown", "alice@example.com", "password123", "9876543215", model.RoleCustomer, false},
}

var categories = []string{"Electronics", "Fashion", "Home & Living", "Sports", "Books", "Beauty"}

var products = []demoProduct{
	{"iPhone 15 Pro", "Latest Apple iPhone with A17 Pro chip, 48MP camera", "Apple", "134900", 10, "Electronics", "/assets/images/products/iphone-15-pro.jpg", "5"},
	{"Samsung Galaxy S24 Ultra", "Premium Android phone with S Pen and AI features", "Samsung", "129999", 15, "Electronics", "/assets/images/products/samsung-galaxy-s24.jpg", "8"},
	{"MacBook Air M3", "Thin and light laptop with Apple M3 chip", "Apple", "114900", 8, "Electronics", "/assets/images/products/macbook-air-m3.jpg", "0"},
	{"Sony WH-1000XM5", "Premium noise cancelling wireless headphones", "Sony", "29990", 25, "Electronics", "/assets/images/products/sony-wh1000xm5.jpg", "15"},
	{"Dell XPS 15", "Premium Windows laptop with OLED display", "Dell", "189990", 6, "Electronics", "/assets/images/products/dell-xps-15.jpg", "12"},
	{"Premium Cotton T-Shirt", "Comfortable 100% cotton crew neck t-shirt", "Levis", "999", 100, "Fashion", "/assets/images/products/cotton-tshirt.jpg", "20"},
	{"Running Shoes", "Lightweight sports shoes with cushioned sole", "Nike", "4999", 30, "Fashion", "/assets/images/products/running-shoes.jpg", "30"},
	{"Yoga Mat Premium", "Non-slip exercise mat with carrying strap", "Boldfit", "1499", 40, "Sports", "/assets/images/products/yoga-mat.jpg", "20"},
	{"Ergonomic Office Chair", "Adjustable lumbar support and armrests", "IKEA", "12999", 10, "Home & Living", "/assets/images/products/office-chair.jpg", "18"},
	{"Coffee Maker", "Programmable drip coffee maker 12 cups", "Morphy Richards", "4499", 20, "Home & Living", "/assets/images/products/coffee-maker.jpg", "15"},
}

// Run inserts demo users and categories that are missing, and demo products when the catalog is empty.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	log := logger.With("component", "seed")

	for _, u := range users {
		hash, err := hashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		res, err := db.ExecContext(ctx, `
			INSERT INTO users (name, email, phone, password_hash, role, premium_status)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING
		`, u.Name, u.Email, u.Phone, hash, string(u.Role), u.Premium)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			log.Info("seed_user_created", "email", u.Email, "role", string(u.Role))
		}
	}

	for _, name := range categories {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name,
		); err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		log.Info("seed_products_skip", "existing_products", count)
		return nil
	}

	for _, p := range products {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO products (name, description, brand, price, stock_quantity, image_url, discount_percent, category_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, (SELECT id FROM categories WHERE name = $8), now() - interval '7 days')
		`, p.Name, p.Description, p.Brand, p.Price, p.Stock, p.ImageURL, p.Discount, p.Category); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	log.Info("seed_products_created", "count", len(products))
	return nil
}
