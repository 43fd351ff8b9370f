// Dev helper: seeds the database with the cooperative's starting catalog,
// a few customers and a demo customer login. Run once against a fresh
// database; existing rows are left alone.
package main

import (
	"log"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/config"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/database"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/pkg/money"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	categories := []models.Category{
		{Name: "Raw Honey", Description: "Pure, unprocessed honey from various flowers"},
		{Name: "Flavored Honey", Description: "Honey infused with natural flavors"},
		{Name: "Honeycomb", Description: "Natural honeycomb sections"},
		{Name: "Bee Products", Description: "Pollen, propolis, royal jelly, and more"},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatal("Failed to seed categories:", err)
		}
	}

	products := []models.Product{
		{Name: "Wildflower Honey", Description: "Light and floral honey from wildflowers", Price: money.Cents(1299), Stock: 50, CategoryID: categories[0].ID},
		{Name: "Acacia Honey", Description: "Premium light-colored honey with mild flavor", Price: money.Cents(1599), Stock: 35, CategoryID: categories[0].ID},
		{Name: "Manuka Honey", Description: "High-quality medicinal honey from New Zealand", Price: money.Cents(4999), Stock: 20, CategoryID: categories[0].ID},
		{Name: "Eucalyptus Honey", Description: "Distinctive honey with herbal notes", Price: money.Cents(1499), Stock: 12, CategoryID: categories[0].ID},
		{Name: "Cinnamon Honey", Description: "Honey infused with natural cinnamon", Price: money.Cents(1399), Stock: 28, CategoryID: categories[1].ID},
		{Name: "Lavender Honey", Description: "Soothing honey with lavender essence", Price: money.Cents(1699), Stock: 18, CategoryID: categories[1].ID},
		{Name: "Raw Honeycomb", Description: "Pure honeycomb section, straight from the hive", Price: money.Cents(2299), Stock: 8, CategoryID: categories[2].ID},
		{Name: "Honey Straws", Description: "Convenient single-serve honey straws (pack of 20)", Price: money.Cents(999), Stock: 45, CategoryID: categories[0].ID},
		{Name: "Bee Pollen", Description: "Nutrient-rich bee pollen granules", Price: money.Cents(1899), Stock: 25, CategoryID: categories[3].ID},
		{Name: "Propolis Extract", Description: "Natural propolis tincture for immune support", Price: money.Cents(2499), Stock: 15, CategoryID: categories[3].ID},
	}
	for i := range products {
		if err := db.Where("name = ?", products[i].Name).FirstOrCreate(&products[i]).Error; err != nil {
			log.Fatal("Failed to seed products:", err)
		}
	}

	customers := []models.Customer{
		{Name: "Ahmad Hassan", Email: "ahmad@example.com", Phone: "+1234567890", Address: "123 Main St", City: "Damascus", Notes: "Regular customer, prefers wildflower honey"},
		{Name: "Fatima Ali", Email: "fatima@example.com", Phone: "+1234567891", Address: "456 Oak Ave", City: "Aleppo"},
		{Name: "Mohammed Ibrahim", Email: "mohammed@example.com", Phone: "+1234567892", Address: "789 Pine Rd", City: "Homs"},
		{Name: "Layla Khalil", Email: "layla@example.com", Phone: "+1234567893", Address: "321 Elm St", City: "Latakia", Notes: "Wholesale buyer"},
	}
	for i := range customers {
		if err := db.Where("email = ?", customers[i].Email).FirstOrCreate(&customers[i]).Error; err != nil {
			log.Fatal("Failed to seed customers:", err)
		}
	}

	if err := seedCustomerLogin(db, &customers[0]); err != nil {
		log.Fatal("Failed to seed customer login:", err)
	}

	log.Println("Database seeded successfully")
}

func seedCustomerLogin(db *gorm.DB, customer *models.Customer) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Email:        "customer@shahd.com",
		PasswordHash: string(hash),
		Name:         customer.Name,
		Role:         string(models.RoleCustomer),
		CustomerID:   &customer.ID,
	}
	return db.Where("email = ?", user.Email).FirstOrCreate(&user).Error
}
