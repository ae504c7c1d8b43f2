package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"jobportal/database"
	"jobportal/internal/config"
	"jobportal/internal/repository"
	"jobportal/internal/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	adminCmd := flag.NewFlagSet("admin", flag.ExitOnError)
	adminName := adminCmd.String("name", utils.DefaultAdminName, "Admin display name")
	adminEmail := adminCmd.String("email", utils.DefaultAdminEmail, "Admin email")
	adminPassword := adminCmd.String("password", utils.DefaultAdminPassword, "Admin password")

	jobsCmd := flag.NewFlagSet("jobs", flag.ExitOnError)
	numJobs := jobsCmd.Int("count", 6, "Number of sample jobs to create")
	createdBy := jobsCmd.String("admin-email", utils.DefaultAdminEmail, "Email of the user recorded as creator")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "admin":
		adminCmd.Parse(os.Args[2:])
	case "jobs":
		jobsCmd.Parse(os.Args[2:])
	case "help", "-h", "--help":
		printHelp()
		return
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)

	switch os.Args[1] {
	case "admin":
		if _, err := utils.SeedAdmin(userRepo, *adminName, *adminEmail, *adminPassword); err != nil {
			log.Fatalf("Error seeding admin: %v", err)
		}
	case "jobs":
		creator := uuid.Nil
		if admin, err := userRepo.FindByEmail(*createdBy); err == nil {
			creator = admin.ID
		} else {
			log.Printf("Warning: creator %s not found, jobs will have no creator", *createdBy)
		}
		if _, err := utils.SeedJobs(repository.NewJobRepository(db), *numJobs, creator); err != nil {
			log.Fatalf("Error seeding jobs: %v", err)
		}
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed admin [-name NAME] [-email EMAIL] [-password PASSWORD]")
	fmt.Println("      Create the default admin account if it does not exist")
	fmt.Println("  seed jobs [-count N] [-admin-email EMAIL]")
	fmt.Println("      Insert N accepted sample jobs (IT001, IT002, ...)")
}
