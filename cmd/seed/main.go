// Command seed is the operator tool: it creates the first super admin and
// moves the shared dev catalog between the remote store, files and S3.
//
//	go run ./cmd/seed admin --email ops@example.com --name Ops
//	go run ./cmd/seed catalog seed
//	go run ./cmd/seed catalog pull --server http://localhost:8081/api/v1 --out catalog.json
//	go run ./cmd/seed catalog push --server http://localhost:8081/api/v1 --file catalog.json
//	go run ./cmd/seed catalog backup
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/developer2iverto/Dresscollections-sub000/apiclient"
	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "Dresscollections operator tool",
		Before: func(c *cli.Context) error {
			_, err := config.Load()
			return err
		},
		Commands: []*cli.Command{
			adminCommand(),
			catalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "create a super admin account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email"},
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "password", EnvVars: []string{"SEED_ADMIN_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			fmt.Println("════════════════════════════════════════════════════════════")
			fmt.Println("DRESSCOLLECTIONS CMS - Super Admin Seeder")
			fmt.Println("════════════════════════════════════════════════════════════")

			config.InitDB(config.Get())
			defer config.CloseDB()

			email := prompt(c.String("email"), "Email")
			name := prompt(c.String("name"), "Name")
			password := c.String("password")

			auth := services.GetAuthService()
			for !auth.ValidatePassword(password) {
				if password != "" {
					fmt.Printf("❌ Password must be at least %d characters\n", services.MinPasswordLength)
				}
				password = prompt("", "Password")
			}

			var existing models.Admin
			err := config.CmsGorm.Where("email = ?", email).First(&existing).Error
			if err == nil {
				return errors.Errorf("admin with email '%s' already exists", email)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(err, "database error")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}

			admin := models.Admin{
				ID:           uuid.Must(uuid.NewV7()),
				Email:        email,
				Name:         name,
				PasswordHash: hash,
				Role:         models.RoleSuperAdmin,
				Status:       "active",
			}
			if err := config.CmsGorm.Create(&admin).Error; err != nil {
				return errors.Wrap(err, "create super admin")
			}

			fmt.Println("✅ Super Admin Created Successfully!")
			fmt.Printf("ID:    %s\n", admin.ID)
			fmt.Printf("Email: %s\n", admin.Email)
			fmt.Printf("Role:  %s\n", admin.Role)
			fmt.Println("Login at POST /api/v1/admin/login with email and password")
			return nil
		},
	}
}

// prompt returns value, or asks on stdin until a non-empty answer is given.
func prompt(value, label string) string {
	for value == "" {
		fmt.Printf("%s: ", label)
		fmt.Scanln(&value)
		if value == "" {
			fmt.Printf("❌ %s cannot be empty\n", label)
		}
	}
	return value
}

func catalogCommand() *cli.Command {
	serverFlag := &cli.StringFlag{
		Name:    "server",
		Value:   "http://localhost:8081/api/v1",
		EnvVars: []string{"DRESSCOLLECTIONS_API"},
	}

	return &cli.Command{
		Name:  "catalog",
		Usage: "manage the shared dev catalog",
		Subcommands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "write the padded seed catalog to the remote store",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "min", Value: services.DefaultMinProductsPerCategory},
				},
				Action: func(c *cli.Context) error {
					remote, cleanup := openRemote(config.Get())
					defer cleanup()

					products := services.EnsureMinimumProductsPerCategory(services.SeedProducts(), c.Int("min"))
					ctx, cancel := config.WithTimeout()
					defer cancel()

					snap, err := remote.Save(ctx, models.CatalogSnapshot{Products: products})
					if err != nil {
						return errors.Wrap(err, "save seed catalog")
					}
					log.Printf("✅ Seeded %d products (v%d)", len(snap.Products), snap.Version)
					return nil
				},
			},
			{
				Name:  "pull",
				Usage: "download the shared catalog to a JSON file",
				Flags: []cli.Flag{serverFlag, &cli.StringFlag{Name: "out", Value: "catalog.json"}},
				Action: func(c *cli.Context) error {
					client := apiclient.New(c.String("server"), "")
					ctx, cancel := config.WithTimeout()
					defer cancel()

					snap, err := client.GetDevCatalog(ctx)
					if err != nil {
						return err
					}
					raw, err := json.MarshalIndent(snap, "", "  ")
					if err != nil {
						return err
					}
					if err := os.WriteFile(c.String("out"), raw, 0o644); err != nil {
						return errors.Wrap(err, "write catalog file")
					}
					log.Printf("✅ Pulled %d products (v%d) into %s", len(snap.Products), snap.Version, c.String("out"))
					return nil
				},
			},
			{
				Name:  "push",
				Usage: "upload a JSON catalog file to the shared catalog",
				Flags: []cli.Flag{serverFlag, &cli.StringFlag{Name: "file", Value: "catalog.json"}},
				Action: func(c *cli.Context) error {
					raw, err := os.ReadFile(c.String("file"))
					if err != nil {
						return errors.Wrap(err, "read catalog file")
					}
					var snap models.CatalogSnapshot
					if err := json.Unmarshal(raw, &snap); err != nil {
						return errors.Wrap(err, "decode catalog file")
					}

					var updatedAt *time.Time
					if !snap.UpdatedAt.IsZero() {
						updatedAt = &snap.UpdatedAt
					}

					client := apiclient.New(c.String("server"), "")
					ctx, cancel := config.WithTimeout()
					defer cancel()

					saved, err := client.PutDevCatalog(ctx, snap.Products, updatedAt)
					if apiclient.IsStatus(err, 409) {
						return errors.New("shared catalog changed since this file was pulled; pull again first")
					}
					if err != nil {
						return err
					}
					log.Printf("✅ Pushed %d products (now v%d)", len(saved.Products), saved.Version)
					return nil
				},
			},
			{
				Name:  "backup",
				Usage: "archive the shared catalog to S3",
				Action: func(c *cli.Context) error {
					cfg := config.Get()
					ctx, cancel := config.WithCustomTimeout(time.Minute)
					defer cancel()

					client := config.NewS3Client(ctx, cfg)
					if client == nil {
						return errors.New("catalog backups are not configured")
					}

					remote, cleanup := openRemote(cfg)
					defer cleanup()

					snap, err := remote.Load(ctx)
					if err != nil {
						return errors.Wrap(err, "load shared catalog")
					}
					key, err := stores.NewS3CatalogArchive(client, cfg.CatalogBackupBucket, "").Archive(ctx, *snap)
					if err != nil {
						return err
					}
					log.Printf("✅ Archived v%d to s3://%s/%s", snap.Version, cfg.CatalogBackupBucket, key)
					return nil
				},
			},
		},
	}
}

// openRemote connects the configured remote catalog store.
func openRemote(cfg *config.Config) (stores.RemoteCatalogStore, func()) {
	switch cfg.CatalogRemote {
	case "mongo":
		db := config.ConnectMongo(cfg)
		return stores.NewMongoCatalogStore(db.Collection("dev_catalog")), config.DisconnectMongo
	case "memory":
		log.Println("⚠️ memory store selected, nothing will be shared")
		return stores.NewMemoryCatalogStore(), func() {}
	default:
		config.InitCatalogPool(cfg)
		store := stores.NewPostgresCatalogStore(config.CatalogDB)
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("❌ failed to prepare dev catalog table: %v", err)
		}
		return store, config.CloseDB
	}
}
