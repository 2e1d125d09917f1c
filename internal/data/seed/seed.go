package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeder loads the initial catalog and a demo account into an empty database.
// Running it against a populated database is a no-op.
type Seeder struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeeder(repo *repository.Repository, log *zap.Logger) *Seeder {
	return &Seeder{
		repo: repo,
		log:  log.With(zap.String("component", "seeder")),
	}
}

type categorySeed struct {
	name        string
	icon        string
	ctype       entity.CategoryType
	description string
}

type serviceSeed struct {
	title       string
	description string
	price       float64
	duration    int
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if count > 0 {
		s.log.Info("Catalog already seeded, skipping", zap.Int64("categories", count))
		return nil
	}

	s.log.Info("Seeding catalog")

	categoryIDs := make(map[string]uuid.UUID)
	for _, c := range categories {
		description := c.description
		category := &entity.Category{
			ID:          uuid.New(),
			Name:        c.name,
			Icon:        c.icon,
			Type:        c.ctype,
			Description: &description,
		}
		if err := s.repo.Category.Create(ctx, category); err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
		categoryIDs[c.name+"_"+string(c.ctype)] = category.ID
	}

	total := 0
	for key, list := range servicesByCategory {
		categoryID, ok := categoryIDs[key]
		if !ok {
			return fmt.Errorf("seed services: unknown category key %s", key)
		}
		for _, svc := range list {
			description := svc.description
			service := &entity.Service{
				ID:              uuid.New(),
				CategoryID:      categoryID,
				Title:           svc.title,
				Description:     &description,
				Price:           svc.price,
				DurationMinutes: svc.duration,
			}
			if err := s.repo.Service.Create(ctx, service); err != nil {
				return fmt.Errorf("seed service %s: %w", svc.title, err)
			}
			total++
		}
	}

	if err := s.seedDemoUser(ctx); err != nil {
		return err
	}

	s.log.Info("Catalog seeded",
		zap.Int("categories", len(categories)),
		zap.Int("services", total),
	)

	return nil
}

func (s *Seeder) seedDemoUser(ctx context.Context) error {
	const demoPhone = "9876543210"

	existing, err := s.repo.User.FindByPhone(ctx, demoPhone)
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	if existing != nil {
		return nil
	}

	email := "demo@workhub.com"
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              "Demo User",
		Phone:             demoPhone,
		Email:             &email,
		PreferredLanguage: "English",
		WalletBalance:     5000.0,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	s.log.Info("Demo user seeded", zap.String("phone", demoPhone))
	return nil
}

var categories = []categorySeed{
	// Home services
	{"Construction Works", "construct", entity.CategoryTypeHome, "All types of construction and civil work"},
	{"Plumbers", "water", entity.CategoryTypeHome, "Plumbing repairs and installations"},
	{"Electric Works", "flash", entity.CategoryTypeHome, "Electrical repairs and installations"},
	{"Painting Works", "color-palette", entity.CategoryTypeHome, "Interior and exterior painting"},
	{"Flooring Works", "grid", entity.CategoryTypeHome, "Tile, marble, and flooring services"},
	{"Wood Works", "hammer", entity.CategoryTypeHome, "Carpentry and woodwork services"},
	{"Interior & Exterior Designs", "home", entity.CategoryTypeHome, "Interior and exterior design services"},
	{"Ceiling Works", "cube", entity.CategoryTypeHome, "False ceiling and POP work"},
	// Commercial services
	{"Construction Works", "construct", entity.CategoryTypeCommercial, "Commercial construction projects"},
	{"Plumbers", "water", entity.CategoryTypeCommercial, "Commercial plumbing services"},
	{"Electric Works", "flash", entity.CategoryTypeCommercial, "Commercial electrical services"},
	{"Painting Works", "color-palette", entity.CategoryTypeCommercial, "Commercial painting services"},
	{"Flooring Works", "grid", entity.CategoryTypeCommercial, "Commercial flooring services"},
	{"Wood Works", "hammer", entity.CategoryTypeCommercial, "Commercial carpentry services"},
	{"Interior & Exterior Designs", "home", entity.CategoryTypeCommercial, "Commercial design services"},
	{"Ceiling Works", "cube", entity.CategoryTypeCommercial, "Commercial ceiling work"},
}

var servicesByCategory = map[string][]serviceSeed{
	"Electric Works_home": {
		{"Fan Installation", "Install ceiling or wall fan", 900, 60},
		{"Full Home Wiring", "Complete house wiring", 15000, 480},
		{"Inverter Installation", "Install inverter with battery", 2500, 120},
		{"Short Circuit Fix", "Identify and fix short circuit", 800, 90},
		{"AC Installation", "Split AC installation", 3000, 120},
		{"Switch/Socket Replacement", "Replace switches or sockets", 300, 30},
		{"Geyser Installation", "Water heater installation", 1500, 90},
		{"LED Light Installation", "Install LED lights", 500, 45},
	},
	"Electric Works_commercial": {
		{"Full Building Wiring", "Complete commercial building wiring", 25000, 960},
		{"3-Phase Electrical Line Installation", "Industrial three phase power line", 18000, 480},
		{"Industrial MCB/MCCB/DB Setup", "Distribution board and circuit protection", 12000, 360},
		{"Commercial AC Installation", "Multi-unit commercial AC setup", 8000, 240},
		{"UPS Power Backup Installation", "Commercial grade UPS system", 15000, 300},
		{"CCTV Security System Wiring", "Complete security camera network", 10000, 360},
		{"Commercial Lighting Layout Setup", "Professional lighting system design", 9000, 300},
		{"Electrical Load Expansion Approval", "Load increase documentation and setup", 20000, 480},
		{"Server Room Electrical Setup", "Dedicated power for server infrastructure", 22000, 540},
		{"Generator Wiring & Maintenance", "Backup generator installation and service", 16000, 420},
	},
	"Plumbers_home": {
		{"Tap Repair", "Fix leaking taps", 400, 45},
		{"Toilet Installation", "Install new toilet", 2500, 120},
		{"Pipe Leak Repair", "Fix pipe leakage", 800, 90},
		{"Bathroom Fitting", "Complete bathroom fitting", 5000, 240},
		{"Wash Basin Installation", "Install wash basin", 1500, 90},
		{"Drainage Cleaning", "Clean blocked drains", 1200, 60},
		{"Water Tank Installation", "Install overhead water tank", 3500, 180},
	},
	"Plumbers_commercial": {
		{"Commercial Water Line Installation", "Main water supply lines for buildings", 15000, 480},
		{"High-Pressure Pipeline Setup", "Industrial grade high-pressure pipes", 20000, 540},
		{"Industrial Drainage Line Setup", "Large capacity drainage system", 18000, 600},
		{"Commercial Bathroom Fitting Installation", "Multiple bathroom fittings for offices", 12000, 420},
		{"Pump Room Setup", "Water pump room installation and setup", 25000, 720},
		{"Water Tank & Motor Pipeline Connection", "Complete water storage system", 10000, 360},
		{"Industrial Sewage Line Maintenance", "Sewage system cleaning and repair", 8000, 300},
		{"Commercial RO Plant Plumbing", "Water purification system setup", 22000, 480},
		{"Bulk Water Supply Line Repair", "Main line repair and replacement", 14000, 420},
	},
	"Painting Works_home": {
		{"1 Room Painting", "Paint single room", 3500, 240},
		{"Full House Painting", "Complete house painting", 15000, 960},
		{"Exterior Wall Painting", "Paint exterior walls", 8000, 480},
		{"Texture Painting", "Decorative texture painting", 5000, 360},
		{"Wood Polish", "Polish wooden furniture", 2500, 180},
		{"Waterproofing", "Waterproof walls/roof", 6000, 360},
	},
	"Painting Works_commercial": {
		{"Commercial Exterior Painting", "Full building exterior paint", 45000, 1440},
		{"Office Interior Painting", "Professional office space painting", 28000, 960},
		{"Industrial Paint Coating", "Protective industrial coating", 35000, 1200},
		{"Factory Epoxy Painting", "Durable epoxy floor coating", 40000, 1440},
		{"Corporate Building Painting", "Premium corporate paint finish", 50000, 1680},
		{"Waterproof Paint Coating (Commercial Grade)", "Weather-resistant exterior coating", 32000, 1080},
		{"Primer + 2 Coat Commercial Painting", "Professional 3-layer paint system", 38000, 1320},
		{"Warehouse Metal Structure Painting", "Industrial metal paint protection", 42000, 1440},
		{"Industrial Texture Painting", "Decorative textured finish", 30000, 960},
	},
	"Construction Works_home": {
		{"Wall Construction", "Build new walls", 8000, 480},
		{"Room Addition", "Add new room", 50000, 2400},
		{"Balcony Construction", "Build balcony", 25000, 960},
		{"Plastering Work", "Wall plastering", 4500, 360},
		{"Tile Work", "Floor/wall tiling", 6000, 480},
	},
	"Construction Works_commercial": {
		{"Block Masonry Construction", "Commercial building block work", 60000, 1920},
		{"RCC Concrete Slab Work", "Reinforced concrete slab construction", 80000, 2400},
		{"Floor Leveling (Industrial)", "Large area floor leveling", 35000, 960},
		{"Boundary Wall Construction", "Commercial property boundary wall", 55000, 1680},
		{"Shop/Office Renovation", "Complete commercial space renovation", 75000, 2160},
		{"Structural Fabrication (Commercial)", "Steel structure fabrication", 65000, 1920},
		{"Demolition Works", "Safe commercial demolition service", 40000, 960},
		{"Industrial Waterproofing", "Large scale waterproofing solution", 50000, 1440},
		{"Multi-Floor Building Repairs", "Structural repair and maintenance", 85000, 2400},
	},
	"Flooring Works_home": {
		{"Tile Flooring", "Ceramic tile installation", 6500, 480},
		{"Marble Flooring", "Marble floor installation", 12000, 720},
		{"Wooden Flooring", "Wooden floor installation", 9000, 600},
		{"Vinyl Flooring", "Vinyl sheet flooring", 4500, 360},
	},
	"Flooring Works_commercial": {
		{"Commercial Tiles Installation", "High-traffic commercial tiling", 25000, 960},
		{"Granite Flooring Work", "Premium granite floor installation", 45000, 1440},
		{"Industrial Epoxy Flooring", "Chemical-resistant epoxy floor", 55000, 1680},
		{"Marble Cutting & Polishing", "Professional marble work", 38000, 1200},
		{"Cement Screeding & Leveling", "Commercial floor screeding", 28000, 960},
		{"Warehouse Flooring", "Heavy-duty warehouse floor", 65000, 1920},
		{"Anti-Slip Commercial Flooring", "Safety-grade non-slip flooring", 42000, 1440},
		{"Vinyl Flooring (Office Use)", "Modern vinyl floor installation", 30000, 960},
	},
	"Wood Works_home": {
		{"Door Installation", "Install wooden door", 4500, 180},
		{"Window Frame", "Wooden window frame", 3500, 120},
		{"Wardrobe Making", "Custom wardrobe", 15000, 960},
		{"Furniture Repair", "Fix broken furniture", 1500, 90},
		{"Modular Kitchen", "Complete kitchen setup", 45000, 1440},
	},
	"Wood Works_commercial": {
		{"Commercial Partition Woodwork", "Office partition installation", 35000, 960},
		{"Office Workstation Setup", "Modular workstation fabrication", 45000, 1200},
		{"Wooden Reception Desk Fabrication", "Custom reception desk design", 28000, 720},
		{"Conference Table Fabrication", "Large conference table setup", 40000, 960},
		{"Commercial Door Installation", "Fire-rated commercial doors", 15000, 480},
		{"Wooden Wall Paneling", "Decorative wall panel installation", 50000, 1440},
		{"Retail Display Unit Manufacturing", "Custom retail display systems", 38000, 1200},
		{"Storage Cabinets for Commercial Spaces", "Custom storage solutions", 32000, 960},
	},
	"Interior & Exterior Designs_home": {
		{"Living Room Design", "Complete living room design", 25000, 960},
		{"Bedroom Design", "Complete bedroom design", 20000, 720},
		{"Modular Kitchen Design", "Kitchen interior design", 35000, 1200},
		{"Home Office Setup", "Office interior design", 18000, 600},
	},
	"Interior & Exterior Designs_commercial": {
		{"Full Office Interior Design", "Complete office interior solution", 150000, 2880},
		{"Corporate Workspace Design", "Modern corporate office design", 180000, 3360},
		{"Exterior Elevation Design (3D)", "Building facade design", 85000, 1920},
		{"Showroom Interior Design (Premium)", "Luxury showroom interiors", 200000, 3840},
		{"Office False Ceiling Design", "Modern ceiling design with lighting", 65000, 1440},
		{"Glass Partition + Lighting Design", "Contemporary glass office spaces", 120000, 2400},
		{"Commercial Furniture Layout Planning", "Space planning and furniture design", 45000, 960},
		{"Industrial Interior Design Package", "Factory/warehouse interior design", 95000, 2160},
	},
	"Ceiling Works_home": {
		{"False Ceiling", "POP false ceiling", 8000, 480},
		{"Gypsum Ceiling", "Gypsum board ceiling", 7000, 420},
		{"POP Design Work", "Decorative POP work", 5000, 360},
		{"Ceiling Repair", "Fix damaged ceiling", 2500, 180},
	},
	"Ceiling Works_commercial": {
		{"Grid Ceiling Installation (Commercial)", "Suspended grid ceiling system", 35000, 960},
		{"Gypsum Board Ceiling (Office)", "Modern gypsum false ceiling", 28000, 720},
		{"POP Ceiling for Halls & Shops", "Decorative POP ceiling work", 32000, 960},
		{"LED Panel Installation (Commercial)", "Integrated LED ceiling panels", 42000, 1080},
		{"Acoustic Soundproof Ceiling", "Sound-absorbing ceiling tiles", 55000, 1440},
		{"High-Rise Ceiling Works", "Ceiling work for tall buildings", 65000, 1680},
		{"Industrial Aluminum Ceiling Installation", "Durable aluminum ceiling system", 48000, 1200},
	},
}
