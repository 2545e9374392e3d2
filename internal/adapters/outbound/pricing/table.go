package pricing

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed prices.yml
var embeddedPrices []byte

// tableFile is the YAML layout of a price table.
type tableFile struct {
	Currency        string         `yaml:"currency"`
	DiscountPercent int            `yaml:"discount_percent"`
	Cities          map[string]int `yaml:"cities"`
}

// Load decodes and validates a price table document.
func Load(r io.Reader) (domain.PriceTable, domain.DiscountRule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc tableFile
	if err := dec.Decode(&doc); err != nil {
		return domain.PriceTable{}, domain.DiscountRule{}, fmt.Errorf("failed to decode price table: %w", err)
	}

	if doc.Currency == "" {
		doc.Currency = "USD"
	}

	table, err := domain.NewPriceTable(doc.Currency, doc.Cities)
	if err != nil {
		return domain.PriceTable{}, domain.DiscountRule{}, err
	}
	rule, err := domain.NewDiscountRule(doc.DiscountPercent)
	if err != nil {
		return domain.PriceTable{}, domain.DiscountRule{}, err
	}
	return table, rule, nil
}

// LoadEmbedded loads the price table shipped with the binary.
func LoadEmbedded() (domain.PriceTable, domain.DiscountRule, error) {
	return Load(bytes.NewReader(embeddedPrices))
}

// InitPriceTable loads the price table and registers it together with its discount rule.
// The table is read once; it never changes while the process runs.
type InitPriceTable struct {
	Logger *log.Logger `resolve:""`
	File   string      `config:"PRICE_TABLE_FILE" default:"-"`
}

// Initialize registers domain.PriceTable and domain.DiscountRule.
func (i InitPriceTable) Initialize(ctx context.Context) (context.Context, error) {
	var (
		table domain.PriceTable
		rule  domain.DiscountRule
		err   error
	)

	if i.File == "-" {
		table, rule, err = LoadEmbedded()
	} else {
		var f *os.File
		f, err = os.Open(i.File)
		if err != nil {
			return ctx, fmt.Errorf("failed to open price table file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		table, rule, err = Load(f)
	}
	if err != nil {
		return ctx, err
	}

	i.Logger.Printf("InitPriceTable: loaded %d destinations, discount %d%%", table.Len(), rule.Percent)

	depend.Register(table)
	depend.Register(rule)
	return ctx, nil
}
