// import carga en el almacén configurado (STORE_DRIVER) un volcado JSON del localStorage
// del navegador con las claves inventory_products, inventory_categories e inventory_movements.
//
// Uso: go run ./cmd/import [-latin1] [-reconcile] [-dry-run] volcado.json
//
// Los valores pueden venir como texto JSON (tal como los guarda el navegador) o como
// JSON anidado. Con -latin1 el archivo se decodifica desde ISO-8859-1.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-local/internal/domain/inventory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kvopen"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

type snapshot struct {
	Products   []entity.Product
	Categories []entity.Category
	Movements  []entity.Movement
}

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el archivo desde ISO-8859-1")
	reconcile := flag.Bool("reconcile", false, "reemplazar el stock de cada producto por el derivado de sus movimientos")
	dryRun := flag.Bool("dry-run", false, "validar sin escribir")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import [-latin1] [-reconcile] [-dry-run] volcado.json")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("import")

	snap, err := readSnapshot(flag.Arg(0), *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("lectura del volcado")
	}
	log.Info().
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Int("movements", len(snap.Movements)).
		Msg("volcado leído")

	if *reconcile {
		for i, p := range snap.Products {
			derived := domaininv.DeriveStock(snap.Movements, p.ID)
			if derived != p.Stock {
				log.Warn().Str("code", p.Code).Int("stock", p.Stock).Int("derived", derived).Msg("stock reconciliado")
				snap.Products[i].Stock = derived
			}
		}
	}
	if *dryRun {
		log.Info().Msg("dry-run: no se escribe nada")
		return
	}

	kv, closeStore, err := kvopen.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura del almacén")
	}
	defer closeStore()

	store := storage.New(kv, log, cfg.Store.Timeout)
	if !store.SaveAll(map[string]any{
		storage.KeyProducts:   snap.Products,
		storage.KeyCategories: snap.Categories,
		storage.KeyMovements:  snap.Movements,
	}) {
		log.Error().Msg("no se pudo escribir el volcado; el almacén no cambió")
		closeStore()
		os.Exit(1)
	}

	// Se reabre como lo haría la API para verificar el resultado.
	repo := inventory.NewRepository(store, log)
	if err := repo.Initialize(); err != nil {
		log.Error().Err(err).Msg("verificación")
		return
	}
	for _, m := range repo.LedgerCheck() {
		log.Warn().
			Str("code", m.Code).
			Int("stock", m.Stock).
			Int("derived", m.DerivedStock).
			Msg("stock descuadrado respecto del historial (use -reconcile)")
	}
	log.Info().Int("products", repo.TotalProducts()).Int("movements", repo.TotalMovements()).Msg("importación completa")
}

func readSnapshot(path string, latin1 bool) (*snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar volcado: %w", err)
	}

	snap := &snapshot{}
	for key, dst := range map[string]any{
		storage.KeyProducts:   &snap.Products,
		storage.KeyCategories: &snap.Categories,
		storage.KeyMovements:  &snap.Movements,
	} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := decodeValue(v, dst); err != nil {
			return nil, fmt.Errorf("clave %s: %w", key, err)
		}
	}
	return snap, nil
}

// decodeValue acepta el valor como JSON directo o como texto que contiene JSON.
func decodeValue(v json.RawMessage, dst any) error {
	var text string
	if err := json.Unmarshal(v, &text); err == nil {
		v = json.RawMessage(text)
	}
	return json.Unmarshal(v, dst)
}
