package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielsolis/portfolio-site-backend/config"
	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/models"
)

// SeedAdminID is the id of the administrator account created at first boot.
// All projects are owned by this user.
const SeedAdminID uint = 1

var seedCategories = []models.Category{
	{
		Name:        "Python",
		Description: "Python projects in some fields like webdesign, scrapping, scripts, etc.",
		ImgLogo:     "assets/img/python-logo.png",
		ImgBg:       "assets/img/python-bg.png",
	},
	{
		Name:        "FrontEnd",
		Description: "FrontEnd projects where I just take care of the interface the user see.",
		ImgLogo:     "assets/img/frontend-icon.png",
		ImgBg:       "assets/img/frontend-bg.jpg",
	},
	{
		Name:        "FullStack",
		Description: "FullStack projects where I take care of the FrontEnd and also to stored the data generated.",
		ImgLogo:     "assets/img/fullstack-icon.png",
		ImgBg:       "assets/img/fullstack-bg.jpg",
	},
	{
		Name:        "Robotics",
		Description: "Robotics projects where I apply Cinematic and Dynamic",
		ImgLogo:     "assets/img/robotics-icon.png",
		ImgBg:       "assets/img/robotics-bg.jpg",
	},
}

// Bootstrap seeds the fixed categories and the administrator account, each
// guarded by a table-empty check so running it again is a no-op. It runs once
// at startup before the server accepts requests.
func Bootstrap(db Database, cfg map[string]string) error {
	if err := ensureCategories(db.CategoryRepo()); err != nil {
		return err
	}
	return ensureAdmin(db.UserRepo(), cfg)
}

func ensureCategories(repo *CategoryRepo) error {
	existing, err := repo.FindAll()
	if err != nil {
		return errs.NewDatabaseError("count", "categories", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range seedCategories {
		category := seedCategories[i]
		if err := repo.Add(&category); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(seedCategories)).Msg("Seeded categories")
	return nil
}

func ensureAdmin(repo *UserRepo, cfg map[string]string) error {
	existing, err := repo.FindAll()
	if err != nil {
		return errs.NewDatabaseError("count", "users", err)
	}
	if len(existing) > 0 {
		return nil
	}

	email := config.GetString(cfg, "ADMIN_EMAIL", "")
	password := config.GetString(cfg, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return errs.NewInternalError("ADMIN_EMAIL and ADMIN_PASSWORD must be set to seed the administrator")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewInternalError("hashing the administrator password failed")
	}

	admin := models.User{
		Email:    email,
		Password: string(hash),
		Name:     config.GetString(cfg, "ADMIN_NAME", "Administrator"),
	}
	if err := repo.Add(&admin); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("Seeded administrator account")
	return nil
}
