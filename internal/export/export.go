// Package export writes portable, read-only exports of property records:
// tabular CSV and structured JSON. Exporting never mutates source data.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// csvHeader is the column order of tabular exports.
var csvHeader = []string{
	"property_code", "company_code", "property_type", "build_type",
	"year_built", "area", "unit_of_measure", "facade", "depth",
	"bedrooms", "bathrooms", "is_corner", "offer_type",
	"province_code", "region_code", "address", "owner_code",
	"owner_name", "description",
}

// Properties writes records to a timestamped file in dir using the given
// format and returns the file path.
func Properties(dir string, records []types.Property, format string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case types.ExportFormatCSV:
		path := filepath.Join(dir, "properties_export_"+stamp+".csv")
		return path, writeCSV(path, records)
	case types.ExportFormatJSON:
		path := filepath.Join(dir, "properties_export_"+stamp+".json")
		return path, writeJSON(path, records)
	default:
		return "", &types.ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("unsupported export format %q", format),
		}
	}
}

func writeCSV(path string, records []types.Property) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range records {
		row := []string{
			p.PropertyCode, p.CompanyCode, p.PropertyType, p.BuildType,
			strconv.Itoa(p.YearBuilt),
			strconv.FormatFloat(p.Area, 'f', -1, 64),
			p.UnitOfMeasure,
			strconv.FormatFloat(p.Facade, 'f', -1, 64),
			strconv.FormatFloat(p.Depth, 'f', -1, 64),
			strconv.Itoa(p.Bedrooms), strconv.Itoa(p.Bathrooms),
			strconv.FormatBool(p.IsCorner),
			p.OfferType, p.ProvinceCode, p.RegionCode, p.Address,
			p.OwnerCode, p.OwnerName, p.Description,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, records []types.Property) error {
	if records == nil {
		records = []types.Property{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
