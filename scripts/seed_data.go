package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"parts-portal-backend/internal/auth"
	"parts-portal-backend/internal/config"
	"parts-portal-backend/internal/database"
	"parts-portal-backend/internal/database/models"
)

// Seeds a development database with an admin account, a few supplier
// accounts and sample parts for the first supplier. Running it twice is
// safe: existing rows are left alone.

type childSeed struct {
	Identifier string
	Name       string
	Country    string
	WeightKg   float64
	ValueUSD   float64
	Aluminum   float64
	Steel      float64
	Method     string
}

type partSeed struct {
	SKU           string
	Name          string
	Description   string
	Country       string
	TotalWeightKg float64
	TotalValueUSD float64
	Children      []childSeed
}

type supplierSeed struct {
	Email   string
	Name    string
	Company string
}

var supplierSeeds = []supplierSeed{
	{Email: "supplier1@metalworks.com", Name: "John Smith", Company: "MetalWorks Inc."},
	{Email: "supplier2@plasticspro.com", Name: "Sarah Johnson", Company: "Plastics Pro LLC"},
	{Email: "supplier3@autosupply.com", Name: "Mike Chen", Company: "Auto Supply Co."},
}

var partSeeds = []partSeed{
	{
		SKU: "RV-FRAME-001", Name: "ATV Main Frame Assembly",
		Description: "Primary structural frame for all-terrain vehicle",
		Country:     "USA", TotalWeightKg: 45.5, TotalValueUSD: 1200.00,
		Children: []childSeed{
			{Identifier: "FRAME-TUBE-01", Name: "Main Frame Tube", Country: "USA", WeightKg: 15.0, ValueUSD: 350, Steel: 98, Method: "Welded"},
			{Identifier: "FRAME-TUBE-02", Name: "Cross Support Tube", Country: "Canada", WeightKg: 8.5, ValueUSD: 200, Steel: 95, Method: "Welded"},
			{Identifier: "FRAME-BRACKET-01", Name: "Engine Mount Bracket", Country: "USA", WeightKg: 5.0, ValueUSD: 150, Steel: 100, Method: "CNC Machined"},
			{Identifier: "FRAME-GUSSET-01", Name: "Reinforcement Gusset", Country: "Mexico", WeightKg: 2.5, ValueUSD: 75, Steel: 90, Aluminum: 10, Method: "Stamped"},
		},
	},
	{
		SKU: "RV-SUSP-002", Name: "Front Suspension Kit",
		Description: "Complete front suspension assembly with shocks",
		Country:     "USA", TotalWeightKg: 22.0, TotalValueUSD: 850.00,
		Children: []childSeed{
			{Identifier: "SUSP-ARM-01", Name: "A-Arm Upper", Country: "USA", WeightKg: 4.5, ValueUSD: 180, Steel: 85, Aluminum: 15, Method: "Forged"},
			{Identifier: "SUSP-ARM-02", Name: "A-Arm Lower", Country: "USA", WeightKg: 5.0, ValueUSD: 190, Steel: 85, Aluminum: 15, Method: "Forged"},
			{Identifier: "SUSP-SHOCK-01", Name: "Gas Shock Absorber", Country: "Japan", WeightKg: 3.5, ValueUSD: 220, Steel: 70, Aluminum: 25, Method: "Assembled"},
		},
	},
	{
		SKU: "RV-BODY-003", Name: "Body Panel Set",
		Description: "Complete exterior body panel kit",
		Country:     "Canada", TotalWeightKg: 18.0, TotalValueUSD: 650.00,
		Children: []childSeed{
			{Identifier: "BODY-FENDER-FL", Name: "Front Left Fender", Country: "Canada", WeightKg: 2.2, ValueUSD: 85, Aluminum: 100, Method: "Stamped"},
			{Identifier: "BODY-FENDER-FR", Name: "Front Right Fender", Country: "Canada", WeightKg: 2.2, ValueUSD: 85, Aluminum: 100, Method: "Stamped"},
			{Identifier: "BODY-HOOD-01", Name: "Engine Hood", Country: "Canada", WeightKg: 4.5, ValueUSD: 150, Aluminum: 95, Method: "Stamped"},
		},
	},
	{
		SKU: "RV-ENGINE-004", Name: "Engine Block Assembly",
		Description: "4-stroke engine block with components",
		Country:     "Japan", TotalWeightKg: 85.0, TotalValueUSD: 3500.00,
		Children: []childSeed{
			{Identifier: "ENG-BLOCK-01", Name: "Cast Iron Block", Country: "Japan", WeightKg: 45.0, ValueUSD: 1500, Steel: 95, Method: "Cast"},
			{Identifier: "ENG-HEAD-01", Name: "Cylinder Head", Country: "Japan", WeightKg: 12.0, ValueUSD: 650, Aluminum: 90, Method: "Cast"},
			{Identifier: "ENG-CRANK-01", Name: "Crankshaft", Country: "Germany", WeightKg: 15.0, ValueUSD: 800, Steel: 100, Method: "Forged"},
		},
	},
	{
		SKU: "RV-WHEEL-005", Name: "Wheel & Tire Assembly",
		Description: "Complete wheel with all-terrain tire",
		Country:     "China", TotalWeightKg: 25.0, TotalValueUSD: 280.00,
		Children: []childSeed{
			{Identifier: "WHEEL-RIM-01", Name: "Alloy Rim 14\"", Country: "China", WeightKg: 8.0, ValueUSD: 120, Aluminum: 95, Method: "Cast"},
			{Identifier: "WHEEL-TIRE-01", Name: "AT Tire 26x9-14", Country: "Thailand", WeightKg: 12.0, ValueUSD: 95, Method: "Molded"},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	admin := seedUser(db, "admin@rvparts.com", "admin123", "Admin User", models.UserRoleAdmin, "RV Parts International")
	log.Printf("Admin account ready: %s", admin.Email)

	var suppliers []*models.User
	for _, seed := range supplierSeeds {
		supplier := seedUser(db, seed.Email, "supplier123", seed.Name, models.UserRoleSupplier, seed.Company)
		suppliers = append(suppliers, supplier)
		log.Printf("Supplier account ready: %s", supplier.Email)
	}

	for _, seed := range partSeeds {
		seedPart(db, suppliers[0], seed)
	}

	log.Println("Seed data created successfully")
	log.Println("Admin credentials: admin@rvparts.com / admin123")
	log.Println("Supplier credentials: supplier1@metalworks.com / supplier123")
}

func seedUser(db *gorm.DB, email, password, name string, role models.UserRole, company string) *models.User {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		CompanyName:  company,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatal("Failed to create user: ", err)
	}
	return user
}

func seedPart(db *gorm.DB, supplier *models.User, seed partSeed) {
	var existing models.ParentPart
	if err := db.Where("supplier_id = ? AND sku = ?", supplier.ID, seed.SKU).First(&existing).Error; err == nil {
		return
	}

	part := &models.ParentPart{
		SupplierID:      supplier.ID,
		SKU:             seed.SKU,
		Name:            seed.Name,
		Description:     seed.Description,
		CountryOfOrigin: seed.Country,
		TotalWeightKg:   seed.TotalWeightKg,
		TotalValueUSD:   seed.TotalValueUSD,
	}
	for _, c := range seed.Children {
		child := models.ChildPart{
			Identifier:             c.Identifier,
			Name:                   c.Name,
			CountryOfOrigin:        c.Country,
			WeightKg:               c.WeightKg,
			ValueUSD:               c.ValueUSD,
			AluminumContentPercent: c.Aluminum,
			SteelContentPercent:    c.Steel,
			ManufacturingMethod:    c.Method,
		}
		child.Recalculate()
		part.ChildParts = append(part.ChildParts, child)
	}
	part.Status = part.DeriveStatus()

	if err := db.Create(part).Error; err != nil {
		log.Fatal("Failed to create part: ", err)
	}
	log.Printf("Part ready: %s (%s)", part.SKU, part.Status)
}
