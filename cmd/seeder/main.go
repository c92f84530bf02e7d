package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"demo/printshop/internal/config"
	"demo/printshop/internal/gen"
	"demo/printshop/internal/model"
	"demo/printshop/internal/service"
	"demo/printshop/internal/store"
)

// fixture is the shape of a DATA_GLOB file. A bare JSON array is read as
// a list of products.
type fixture struct {
	Products  []model.Product       `json:"products"`
	Customers []model.CustomerInput `json:"customers"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("dotenv: %v", err)
	}
	cfg := config.Load()
	glob := env("DATA_GLOB", "data/*.json")
	log.Printf("dsn host=%s glob=%s", dsnHost(cfg.DB.DSN), glob)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()
	if cfg.DB.Migrate {
		if err := store.Migrate(cfg.DB.DSN); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	repo := store.New(pool)
	svc := service.New(repo)

	paths, err := filepath.Glob(glob)
	if err != nil {
		log.Fatalf("glob %s: %v", glob, err)
	}

	// No fixtures: generate GEN_COUNT products and customers.
	if len(paths) == 0 {
		gen.SeedOnce()
		n := mustInt("5", os.Getenv("GEN_COUNT"))
		var fx fixture
		for i := 0; i < n; i++ {
			fx.Products = append(fx.Products, gen.FakeProduct())
			fx.Customers = append(fx.Customers, gen.FakeCustomer())
		}
		p, c := load(ctx, repo, svc, fx, "generated")
		log.Printf("seeded %d product(s), %d customer(s)", p, c)
		return
	}

	var products, customers int
	for _, path := range paths {
		fx, err := readFixture(path)
		if err != nil {
			log.Printf("file %s: %v", path, err)
			continue
		}
		p, c := load(ctx, repo, svc, fx, filepath.Base(path))
		products += p
		customers += c
	}
	log.Printf("done: %d product(s), %d customer(s) from %d files", products, customers, len(paths))
}

func readFixture(path string) (fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("read: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(b, &fx); err == nil {
		return fx, nil
	}
	if err := json.Unmarshal(b, &fx.Products); err == nil {
		return fx, nil
	}
	return fixture{}, fmt.Errorf("invalid JSON: must be an object or an array of products")
}

func load(ctx context.Context, repo *store.Repo, svc *service.Service, fx fixture, source string) (int, int) {
	var np, nc int
	for _, p := range fx.Products {
		created, err := repo.CreateProduct(ctx, p)
		if err != nil {
			log.Printf("product %q (%s): %v", p.Name, source, err)
			continue
		}
		log.Printf("product id=%d variations=%d src=%s", created.ID, len(created.Variations), source)
		np++
	}
	for _, c := range fx.Customers {
		id, err := svc.UpsertCustomer(ctx, c)
		if err != nil {
			log.Printf("customer %q (%s): %v", c.Name, source, err)
			continue
		}
		log.Printf("customer id=%d src=%s", id, source)
		nc++
	}
	return np, nc
}

func dsnHost(dsn string) string {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return "?"
	}
	return cfg.ConnConfig.Host
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustInt(def string, s string) int {
	if s == "" {
		s = def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
