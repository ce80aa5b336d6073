package seed

import (
	"log"

	"github.com/FinDocs/FinDocs-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes sure the fixed identity the mock middleware attaches resolves to
// a real user row, so the user/stats routes work out of the box.
func Seed(db *gorm.DB, mockUserId string) {
	var user models.UserModel
	result := db.Where("id = ?", mockUserId).First(&user)
	if result.Error == nil {
		log.Println("Mock user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash mock user password: %v\n", err)
		return
	}

	newUser := models.UserModel{
		ID:           mockUserId,
		Email:        "demo@findocs.local",
		Name:         "Demo User",
		Subscription: "basic",
		Password:     string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create mock user: %v\n", err)
	} else {
		log.Println("Mock user created")
	}
}
