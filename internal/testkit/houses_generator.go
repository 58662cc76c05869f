package testkit

import (
	"fmt"
	"math/rand"
	"strings"
)

// HousesGeneratorConfig configures the synthetic house listing generator
type HousesGeneratorConfig struct {
	RowCount    int     `json:"row_count"`
	MissingRate float64 `json:"missing_rate"` // chance a nullable cell is left empty
	Delimiter   rune    `json:"delimiter"`
	Seed        int64   `json:"seed"`
}

// DefaultHousesConfig returns sensible defaults for house data generation
func DefaultHousesConfig() HousesGeneratorConfig {
	return HousesGeneratorConfig{
		RowCount:    200,
		MissingRate: 0.15,
		Delimiter:   ',',
		Seed:        42,
	}
}

// HousesColumn describes one generated column
type HousesColumn struct {
	Name         string
	Quantitative bool
	Nullable     bool
}

// HousesColumns is the generated schema after the Id index column
var HousesColumns = []HousesColumn{
	{Name: "MSSubClass", Quantitative: true},
	{Name: "MSZoning", Quantitative: false},
	{Name: "LotFrontage", Quantitative: true, Nullable: true},
	{Name: "LotArea", Quantitative: true},
	{Name: "Street", Quantitative: false},
	{Name: "Alley", Quantitative: false, Nullable: true},
	{Name: "MasVnrArea", Quantitative: true, Nullable: true},
	{Name: "SalePrice", Quantitative: true},
}

// HousesDataset is generated file content plus what a loader should find in it
type HousesDataset struct {
	Content string
	// Missing maps a column name to the Id values of its empty cells, in row order
	Missing map[string][]string
}

// HousesDataGenerator produces deterministic house listings in delimited text
type HousesDataGenerator struct {
	config HousesGeneratorConfig
	rng    *rand.Rand
}

// NewHousesDataGenerator creates a new house data generator
func NewHousesDataGenerator(config HousesGeneratorConfig) *HousesDataGenerator {
	return &HousesDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	zonings = []string{"RL", "RM", "FV", "RH", "C (all)"}
	streets = []string{"Pave", "Grvl"}
	alleys  = []string{"Grvl", "Pave"}
)

// Generate builds the dataset. Nullable columns are guaranteed at least one
// missing cell when RowCount > 0.
func (g *HousesDataGenerator) Generate() HousesDataset {
	sep := string(g.config.Delimiter)
	var b strings.Builder

	header := []string{"Id"}
	for _, c := range HousesColumns {
		header = append(header, c.Name)
	}
	b.WriteString(strings.Join(header, sep))
	b.WriteString("\n")

	missing := make(map[string][]string)
	for row := 0; row < g.config.RowCount; row++ {
		id := fmt.Sprintf("%d", row+1)
		cells := []string{id}
		for _, c := range HousesColumns {
			if c.Nullable && (row == 0 || g.rng.Float64() < g.config.MissingRate) {
				missing[c.Name] = append(missing[c.Name], id)
				cells = append(cells, "")
				continue
			}
			cells = append(cells, g.cell(c.Name))
		}
		b.WriteString(strings.Join(cells, sep))
		b.WriteString("\n")
	}

	return HousesDataset{Content: b.String(), Missing: missing}
}

func (g *HousesDataGenerator) cell(column string) string {
	switch column {
	case "MSSubClass":
		return fmt.Sprintf("%d", []int{20, 30, 50, 60, 120}[g.rng.Intn(5)])
	case "MSZoning":
		return zonings[g.rng.Intn(len(zonings))]
	case "LotFrontage":
		return fmt.Sprintf("%d", 40+g.rng.Intn(80))
	case "LotArea":
		return fmt.Sprintf("%d", 5000+g.rng.Intn(15000))
	case "Street":
		return streets[g.rng.Intn(len(streets))]
	case "Alley":
		return alleys[g.rng.Intn(len(alleys))]
	case "MasVnrArea":
		return fmt.Sprintf("%.1f", g.rng.Float64()*400)
	case "SalePrice":
		return fmt.Sprintf("%d", 80000+g.rng.Intn(300000))
	}
	return ""
}
