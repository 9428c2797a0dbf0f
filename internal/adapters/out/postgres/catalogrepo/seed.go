package catalogrepo

import (
	"context"
	"fmt"
	"os"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/catalog"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedNamespace derives stable pizza ids from names when the seed omits them.
var seedNamespace = uuid.MustParse("6f1c6c1e-1b0a-4d53-9a43-3f1a5e0c9b21")

// SeedFile is the YAML layout of the catalog seed.
//
//	pizzas:
//	  - id: 2b0f...   # optional
//	    name: Margherita
type SeedFile struct {
	Pizzas []SeedPizza `yaml:"pizzas"`
}

type SeedPizza struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadSeedFile reads and parses a catalog seed from path.
func LoadSeedFile(path string) ([]catalog.Pizza, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}

	return ParseSeed(data)
}

// ParseSeed parses YAML seed data into validated pizzas.
func ParseSeed(data []byte) ([]catalog.Pizza, error) {
	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed YAML: %w", err)
	}

	applyDefaults(&sf)

	pizzas := make([]catalog.Pizza, 0, len(sf.Pizzas))
	seen := make(map[string]struct{}, len(sf.Pizzas))
	for i, sp := range sf.Pizzas {
		id, err := kernel.UUIDFromString(sp.ID)
		if err != nil {
			return nil, fmt.Errorf("pizza #%d: %w", i, err)
		}
		p, err := catalog.NewPizza(id, sp.Name)
		if err != nil {
			return nil, fmt.Errorf("pizza #%d: %w", i, err)
		}
		if _, dup := seen[p.Name()]; dup {
			return nil, fmt.Errorf("pizza #%d: duplicate name %q", i, p.Name())
		}
		seen[p.Name()] = struct{}{}
		pizzas = append(pizzas, p)
	}

	return pizzas, nil
}

func applyDefaults(sf *SeedFile) {
	for i := range sf.Pizzas {
		p := &sf.Pizzas[i]
		if p.ID == "" {
			p.ID = uuid.NewSHA1(seedNamespace, []byte(p.Name)).String()
		}
	}
}

// Seed inserts pizzas that are not in the catalog yet. Existing rows, matched
// by id or name, are left untouched. It returns the number of inserted rows.
func Seed(ctx context.Context, db *gorm.DB, pizzas []catalog.Pizza) (int64, error) {
	if len(pizzas) == 0 {
		return 0, nil
	}

	dtos := make([]PizzaDTO, 0, len(pizzas))
	for _, p := range pizzas {
		dtos = append(dtos, fromDomain(p))
	}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dtos)
	return result.RowsAffected, result.Error
}
