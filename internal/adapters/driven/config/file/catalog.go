package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/bestpet/internal/adapters/driven/config/file/catalogs"
	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
)

// DefaultCatalogName names the bundled catalog.
const DefaultCatalogName = "default"

// Ensure CatalogFile implements the interface.
var _ driven.CatalogSource = (*CatalogFile)(nil)

// CatalogFile loads shops from a TOML catalog file.
//
// Format:
//
//	[[shops]]
//	id = 1
//	name = "Meu Canino Feliz"
//	distance = 2000
//
//	  [[shops.products]]
//	  id = 1
//	  name = "Small Dog Bath"
//	  weekday_price = 20
//	  weekend_price = "24.50"   # strings keep exact decimals
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a catalog source for path.
// An empty path selects the bundled default catalog.
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// Name returns the catalog path, or "default" for the bundled catalog.
func (c *CatalogFile) Name() string {
	if c.path == "" {
		return DefaultCatalogName
	}
	return c.path
}

// Load reads and validates the catalog.
func (c *CatalogFile) Load(_ context.Context) ([]*domain.Shop, error) {
	if c.path == "" {
		return ParseCatalog(catalogs.Default)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return ParseCatalog(data)
}

type rawCatalog struct {
	Shops []rawShop `toml:"shops"`
}

type rawShop struct {
	ID       int          `toml:"id"`
	Name     string       `toml:"name"`
	Distance any          `toml:"distance"`
	Products []rawProduct `toml:"products"`
}

type rawProduct struct {
	ID           int    `toml:"id"`
	Name         string `toml:"name"`
	PriceTableID int    `toml:"price_table_id"`
	WeekdayPrice any    `toml:"weekday_price"`
	WeekendPrice any    `toml:"weekend_price"`
}

type catalogRecord struct {
	Shops []shopRecord `validate:"unique=ID,dive"`
}

type shopRecord struct {
	ID       int             `validate:"gt=0"`
	Name     string          `validate:"required"`
	Distance decimal.Decimal `validate:"gte=0"`
	Products []productRecord `validate:"min=1,unique=ID,dive"`
}

type productRecord struct {
	ID           int             `validate:"gt=0"`
	Name         string          `validate:"required"`
	PriceTableID int             `validate:"gte=0"`
	WeekdayPrice decimal.Decimal `validate:"gte=0"`
	WeekendPrice decimal.Decimal `validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ParseCatalog decodes and validates TOML catalog data into shops in file order.
// Every failure matches domain.ErrInvalidCatalog.
func ParseCatalog(data []byte) ([]*domain.Shop, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	record, err := toRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	if err := validate.Struct(record); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, describeValidation(err))
	}

	shops := make([]*domain.Shop, 0, len(record.Shops))
	for _, sr := range record.Shops {
		shop, err := sr.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		shops = append(shops, shop)
	}
	return shops, nil
}

func toRecord(raw rawCatalog) (catalogRecord, error) {
	record := catalogRecord{Shops: make([]shopRecord, 0, len(raw.Shops))}
	for i, rs := range raw.Shops {
		distance, err := toDecimal(rs.Distance)
		if err != nil {
			return catalogRecord{}, fmt.Errorf("shops[%d].distance: %w", i, err)
		}

		sr := shopRecord{
			ID:       rs.ID,
			Name:     rs.Name,
			Distance: distance,
			Products: make([]productRecord, 0, len(rs.Products)),
		}
		for j, rp := range rs.Products {
			weekday, err := toDecimal(rp.WeekdayPrice)
			if err != nil {
				return catalogRecord{}, fmt.Errorf("shops[%d].products[%d].weekday_price: %w", i, j, err)
			}
			weekend, err := toDecimal(rp.WeekendPrice)
			if err != nil {
				return catalogRecord{}, fmt.Errorf("shops[%d].products[%d].weekend_price: %w", i, j, err)
			}
			sr.Products = append(sr.Products, productRecord{
				ID:           rp.ID,
				Name:         rp.Name,
				PriceTableID: rp.PriceTableID,
				WeekdayPrice: weekday,
				WeekendPrice: weekend,
			})
		}
		record.Shops = append(record.Shops, sr)
	}
	return record, nil
}

// toDecimal converts a decoded TOML number or numeric string.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case nil:
		return decimal.Zero, errors.New("missing value")
	default:
		return decimal.Zero, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func (sr shopRecord) toDomain() (*domain.Shop, error) {
	products := make([]domain.Product, 0, len(sr.Products))
	for _, pr := range sr.Products {
		tableID := pr.PriceTableID
		if tableID == 0 {
			tableID = pr.ID
		}
		table, err := domain.NewPriceTable(tableID, pr.WeekdayPrice, pr.WeekendPrice)
		if err != nil {
			return nil, err
		}
		products = append(products, domain.Product{ID: pr.ID, Name: pr.Name, PriceTable: table})
	}
	return domain.NewShop(sr.ID, sr.Name, sr.Distance, products)
}

// describeValidation flattens validator errors into one line.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), rule))
	}
	return strings.Join(parts, "; ")
}
