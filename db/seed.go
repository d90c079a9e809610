package db

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
)

// SeedServices returns the demo service catalog, a slice of the salon's real
// menu covering every category.
func SeedServices() []models.Service {
	return []models.Service{
		{Name: "Taper Fade", Description: "Classic taper fade with clean graduation from long to short hair", Price: "R150.00", DurationMinutes: 45, Category: models.CategoryHairMen, IsPopular: true, ImageURL: "/images/services/taper-fade.jpg", SortOrder: 1},
		{Name: "Skin Fade / Bald Fade", Description: "Ultra-short fade cut down to the skin for a sharp, clean look", Price: "R180.00", DurationMinutes: 50, Category: models.CategoryHairMen, IsPopular: true, ImageURL: "/images/services/skin-fade.jpg", SortOrder: 2},
		{Name: "Beard Trim & Line-Up", Description: "Professional beard trimming with clean line-up for a polished look", Price: "R100.00", DurationMinutes: 30, Category: models.CategoryHairMen, IsPopular: true, ImageURL: "/images/services/beard-trim.jpg", SortOrder: 3},
		{Name: "Hot Towel Shave", Description: "Traditional hot towel shave for the ultimate smooth finish", Price: "R120.00", DurationMinutes: 35, Category: models.CategoryHairMen, SortOrder: 4},
		{Name: "Wash, Blow & Style", Description: "Professional wash, blow-dry and styling service", Price: "R120.00", DurationMinutes: 60, Category: models.CategoryHairWomen, IsPopular: true, ImageURL: "/images/services/wash-blow-style.jpg", SortOrder: 1},
		{Name: "Silk Press", Description: "Heat styling for smooth, silky straight hair with natural movement", Price: "R280.00", DurationMinutes: 90, Category: models.CategoryHairWomen, IsPopular: true, ImageURL: "/images/services/silk-press.jpg", SortOrder: 2},
		{Name: "Box Braids / Knotless Braids", Description: "Long-lasting protective box braids and knotless variations", Price: "R450.00", DurationMinutes: 300, Category: models.CategoryHairWomen, IsPopular: true, ImageURL: "/images/services/box-braids.jpg", SortOrder: 3},
		{Name: "Colouring & Highlights", Description: "Professional hair coloring and highlight services", Price: "R380.00", DurationMinutes: 150, Category: models.CategoryHairWomen, SortOrder: 4},
		{Name: "Gel Overlay", Description: "Protective gel overlay for natural nail strengthening", Price: "R180.00", DurationMinutes: 60, Category: models.CategoryNails, IsPopular: true, ImageURL: "/images/services/gel-overlay.jpg", SortOrder: 1},
		{Name: "Acrylic Tips", Description: "Classic acrylic nail extensions with tips", Price: "R220.00", DurationMinutes: 90, Category: models.CategoryNails, IsPopular: true, ImageURL: "/images/services/acrylic-tips.jpg", SortOrder: 2},
		{Name: "Deep Cleanse Facial", Description: "Purifying facial treatment for refreshed, glowing skin", Price: "R250.00", DurationMinutes: 60, Category: models.CategorySkinBeauty, IsPopular: true, SortOrder: 1},
		{Name: "Eyebrow Shaping", Description: "Precision eyebrow shaping and grooming", Price: "R80.00", DurationMinutes: 20, Category: models.CategorySkinBeauty, SortOrder: 2},
		{Name: "Scalp Massage", Description: "Relaxing scalp massage add-on for any hair service", Price: "R60.00", DurationMinutes: 15, Category: models.CategoryAddons, SortOrder: 1},
		{Name: "Hair & Scalp Treatment", Description: "Deep conditioning treatment for healthy hair and scalp", Price: "R150.00", DurationMinutes: 45, Category: models.CategoryAddons, SortOrder: 2},
	}
}

// SeedStaff returns the demo staff directory with specializations and
// galleries.
func SeedStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			FullName:          "Michael Rodriguez",
			Role:              "Master Barber",
			Description:       "With over 15 years of experience, Michael specializes in classic cuts, fades, and modern styling.",
			ImageURL:          "/images/staff/michael-rodriguez.png",
			YearsOfExperience: 15,
			IsActive:          true,
			SortOrder:         1,
			InstagramURL:      "https://instagram.com/michaelbarber",
			Specializations: []models.Specialization{
				{Name: "Classic Cuts", SortOrder: 1},
				{Name: "Fades", SortOrder: 2},
				{Name: "Beard Trimming", SortOrder: 3},
			},
			Gallery: []models.GalleryImage{
				{ImageURL: "/images/gallery/michael-1.jpg", Caption: "Classic Pompadour", SortOrder: 1},
				{ImageURL: "/images/gallery/michael-2.jpg", Caption: "Modern Fade", SortOrder: 2},
			},
		},
		{
			FullName:          "Sarah Johnson",
			Role:              "Hair Stylist",
			Description:       "Sarah excels in color treatments, highlights, and creating unique styles that reflect each client's personality.",
			ImageURL:          "/images/staff/sarah-johnson.png",
			YearsOfExperience: 8,
			IsActive:          true,
			SortOrder:         2,
			InstagramURL:      "https://instagram.com/sarahstylist",
			Specializations: []models.Specialization{
				{Name: "Color Treatments", SortOrder: 1},
				{Name: "Highlights", SortOrder: 2},
				{Name: "Balayage", SortOrder: 3},
			},
			Gallery: []models.GalleryImage{
				{ImageURL: "/images/gallery/sarah-1.jpg", Caption: "Balayage Highlights", SortOrder: 1},
				{ImageURL: "/images/gallery/sarah-2.jpg", Caption: "Color Transformation", SortOrder: 2},
			},
		},
		{
			FullName:          "Emily Martinez",
			Role:              "Nail Technician",
			Description:       "Emily creates stunning nail art and provides exceptional nail care services.",
			ImageURL:          "/images/staff/emily-martinez.png",
			YearsOfExperience: 6,
			IsActive:          true,
			SortOrder:         3,
			Specializations: []models.Specialization{
				{Name: "Nail Art", SortOrder: 1},
				{Name: "Gel Manicures", SortOrder: 2},
			},
			Gallery: []models.GalleryImage{
				{ImageURL: "/images/gallery/emily-1.jpg", Caption: "Floral Nail Art", SortOrder: 1},
			},
		},
	}
}

// SeedAdmin builds the initial admin account. The password comes from
// ADMIN_PASSWORD, defaulting for local development only.
func SeedAdmin() (models.User, error) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me"
		log.Println("Warning: ADMIN_PASSWORD not set, seeding admin with the default password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		Name:     "Salon Admin",
		Email:    "admin@salon.local",
		Password: string(hash),
		IsAdmin:  true,
	}, nil
}

// Seed loads the demo data into Postgres. It is a no-op when services already
// exist.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := SeedServices()
	if err := gdb.Create(&services).Error; err != nil {
		return err
	}
	staff := SeedStaff()
	if err := gdb.Create(&staff).Error; err != nil {
		return err
	}
	admin, err := SeedAdmin()
	if err != nil {
		return err
	}
	if err := gdb.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seed data loaded")
	return nil
}

// SeedStore loads the same demo data through the store interface, used by the
// in-memory backend.
func SeedStore(ctx context.Context, st store.Store) error {
	for _, s := range SeedServices() {
		svc := s
		if err := st.CreateService(ctx, &svc); err != nil {
			return err
		}
	}
	for _, m := range SeedStaff() {
		sm := m
		if err := st.CreateStaffMember(ctx, &sm); err != nil {
			return err
		}
	}
	admin, err := SeedAdmin()
	if err != nil {
		return err
	}
	return st.CreateUser(ctx, &admin)
}
