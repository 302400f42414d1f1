// seed aplica las migraciones y carga el catálogo inicial y el usuario administrador.
//
// Uso: go run ./cmd/seed [-latin1] [productos.csv]
// Sin archivo se cargan los productos de demostración. El CSV lleva encabezado y las columnas
// sku,name,category,stock,min_stock,price,location,rfid_tag. Con -latin1 el archivo se lee como
// ISO-8859-1 (exportaciones de hojas de cálculo antiguas).
// Los registros que ya existen se omiten.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/demo"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/nexus-crm/pkg/config"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "leer el CSV como ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Named("seed")

	products := demo.Products()
	if path := flag.Arg(0); path != "" {
		products, err = readProducts(path, *latin1)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("leer productos")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productRepo := postgres.NewProductRepository(pool)
	inserted, skipped := 0, 0
	for _, p := range products {
		switch err := productRepo.Create(ctx, p); {
		case err == nil:
			inserted++
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		default:
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("insertar producto")
		}
	}

	admin := demo.AdminUser()
	admin.ID = cfg.Identity.StaticUserID
	if err := postgres.NewUserRepository(pool).Create(ctx, admin); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		log.Fatal().Err(err).Msg("insertar administrador")
	}

	log.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("catálogo cargado")
}

func readProducts(path string, latin1 bool) ([]*entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return parseProducts(r)
}

// parseProducts lee el CSV de productos. La primera fila es el encabezado.
func parseProducts(r io.Reader) ([]*entity.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv: sin productos")
	}

	var out []*entity.Product
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 7 {
			return nil, fmt.Errorf("línea %d: se esperaban al menos 7 columnas", line)
		}
		stock, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("línea %d: stock inválido %q", line, rec[3])
		}
		minStock, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: min_stock inválido %q", line, rec[4])
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[5]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio inválido %q", line, rec[5])
		}
		p := &entity.Product{
			ID:       uuid.NewString(),
			SKU:      strings.TrimSpace(rec[0]),
			Name:     strings.TrimSpace(rec[1]),
			Category: strings.TrimSpace(rec[2]),
			Stock:    stock,
			MinStock: minStock,
			Price:    price,
			Location: strings.TrimSpace(rec[6]),
		}
		if len(rec) > 7 {
			p.RFIDTag = strings.TrimSpace(rec[7])
		}
		if p.SKU == "" || p.Name == "" {
			return nil, fmt.Errorf("línea %d: sku y name son obligatorios", line)
		}
		out = append(out, p)
	}
	return out, nil
}
