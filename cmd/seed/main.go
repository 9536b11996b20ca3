// Command seed loads a demo data set for local development: one account per
// role, a small catalog, and storefront content.
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"ejsmarket/internal/config"
	"ejsmarket/internal/domain"
	"ejsmarket/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgres.NewUserRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	productRepo := postgres.NewProductRepo(db)
	contentRepo := postgres.NewContentRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []domain.User{
		{Email: "admin@ejsmarket.fr", FullName: "Alice Admin", Role: domain.RoleAdmin},
		{Email: "manager@ejsmarket.fr", FullName: "Marc Manager", Role: domain.RoleManager},
		{Email: "client@example.fr", FullName: "Claire Client", Role: domain.RoleCustomer},
		{Email: "pro@example.fr", FullName: "Paul Pro", Role: domain.RoleB2BCustomer,
			CompanyName: "Pro Distribution SARL", VATNumber: "FR32123456789"},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		users[i].IsActive = true
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			log.Fatalf("seeding user %s: %v", users[i].Email, err)
		}
	}

	epicerie := domain.Category{
		Name: domain.LocalizedText{Fr: "Épicerie fine", En: "Fine grocery"},
		Slug: "epicerie-fine",
	}
	boissons := domain.Category{
		Name:     domain.LocalizedText{Fr: "Boissons", En: "Drinks"},
		Slug:     "boissons",
		Position: 1,
	}
	for _, c := range []*domain.Category{&epicerie, &boissons} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatalf("seeding category %s: %v", c.Slug, err)
		}
	}

	b2bOil := int64(980)
	products := []domain.Product{
		{
			Name:        domain.LocalizedText{Fr: "Huile d'olive bio 1L", En: "Organic olive oil 1L"},
			Description: domain.LocalizedText{Fr: "Pressée à froid", En: "Cold pressed"},
			Slug:        "huile-olive-bio-1l",
			CategoryID:  &epicerie.ID,
			PriceHT:     1250,
			VATRate:     550,
			B2BPriceHT:  &b2bOil,
			Stock:       120,
			IsActive:    true,
		},
		{
			Name:       domain.LocalizedText{Fr: "Jus de pomme artisanal", En: "Artisanal apple juice"},
			Slug:       "jus-pomme-artisanal",
			CategoryID: &boissons.ID,
			PriceHT:    390,
			VATRate:    550,
			Stock:      200,
			IsActive:   true,
		},
		{
			Name:       domain.LocalizedText{Fr: "Coffret dégustation", En: "Tasting box"},
			Slug:       "coffret-degustation",
			CategoryID: &epicerie.ID,
			PriceHT:    4900,
			VATRate:    2000,
			Stock:      3,
			IsActive:   true,
		},
	}
	for i := range products {
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			log.Fatalf("seeding product %s: %v", products[i].Slug, err)
		}
	}

	banner := domain.HeroBanner{
		Title:    domain.LocalizedText{Fr: "Les saveurs de la rentrée", En: "Flavours of the season"},
		Subtitle: domain.LocalizedText{Fr: "Livraison offerte dès 50 €", En: "Free delivery from €50"},
		ImageURL: "https://cdn.ejsmarket.fr/banners/rentree.jpg",
		LinkURL:  "/promotions",
		IsActive: true,
	}
	if err := contentRepo.CreateBanner(ctx, &banner); err != nil {
		log.Fatalf("seeding banner: %v", err)
	}

	testimonial := domain.Testimonial{
		AuthorName: "Sophie L.",
		Quote:      domain.LocalizedText{Fr: "Des produits d'exception.", En: "Exceptional products."},
		Rating:     5,
		IsActive:   true,
	}
	if err := contentRepo.CreateTestimonial(ctx, &testimonial); err != nil {
		log.Fatalf("seeding testimonial: %v", err)
	}

	partner := domain.Partner{
		Name:     "Ferme du Soleil",
		LogoURL:  "https://cdn.ejsmarket.fr/partners/ferme-soleil.png",
		SiteURL:  "https://fermedusoleil.fr",
		IsActive: true,
	}
	if err := contentRepo.CreatePartner(ctx, &partner); err != nil {
		log.Fatalf("seeding partner: %v", err)
	}

	settings := domain.SiteSettings{
		NewsbarText:    domain.LocalizedText{Fr: "Paiement par virement bancaire", En: "Payment by bank transfer"},
		NewsbarEnabled: true,
		ContactEmail:   "contact@ejsmarket.fr",
		ContactPhone:   "+33 1 23 45 67 89",
	}
	if err := settingsRepo.Update(ctx, &settings); err != nil {
		log.Fatalf("seeding settings: %v", err)
	}

	log.Println("demo data loaded")
}
