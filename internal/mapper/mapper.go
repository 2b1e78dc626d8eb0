package mapper

import (
	"strconv"
	"strings"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
)

// ToTireDTO converts a TireRecord to its API shape. imageURL is the public
// URL derived from the record's image reference, empty when there is none.
func ToTireDTO(tire *domain.TireRecord, imageURL string) domain.TireDTO {
	return domain.TireDTO{
		ID:        tire.ID,
		SKU:       tire.SKU,
		Brand:     tire.Brand,
		Model:     tire.Model,
		Size:      tire.Size,
		Ply:       tire.Ply,
		Condition: tire.Condition,
		Price:     tire.Price,
		Quantity:  tire.Quantity,
		Notes:     tire.Notes,
		ImagePath: tire.ImagePath,
		ImageURL:  imageURL,
		CreatedAt: tire.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: tire.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToInventoryStatsDTO converts aggregate counts to their API shape
func ToInventoryStatsDTO(stats *domain.InventoryStats) domain.InventoryStatsDTO {
	return domain.InventoryStatsDTO{
		TotalItems: stats.TotalItems,
		SKUCount:   stats.SKUCount,
	}
}

// csvHeader is the fixed export column order.
var csvHeader = []string{"sku", "brand", "model", "size", "ply", "price", "condition", "quantity", "notes", "image_path"}

// ToInventoryCSV renders the record set as a CSV document in listing order.
// Every field is wrapped in double quotes whether it needs escaping or not,
// inner quotes are doubled, and a nil image reference exports as an empty
// string. encoding/csv only quotes when required, so the document is built
// by hand to keep the format stable for downstream spreadsheets.
func ToInventoryCSV(records []domain.TireRecord) []byte {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, csvRow(csvHeader))

	for i := range records {
		r := &records[i]
		imagePath := ""
		if r.ImagePath != nil {
			imagePath = *r.ImagePath
		}
		rows = append(rows, csvRow([]string{
			r.SKU,
			r.Brand,
			r.Model,
			r.Size,
			r.Ply,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			r.Condition,
			strconv.Itoa(r.Quantity),
			r.Notes,
			imagePath,
		}))
	}

	return []byte(strings.Join(rows, "\n"))
}

func csvRow(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
