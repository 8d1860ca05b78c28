package inventory

import (
	"io"
	"strconv"
	"strings"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
)

// shoperHeader orden fijo de columnas del import de productos de Shoper.
// El orden es parte del contrato con la plataforma: no reordenar.
var shoperHeader = []string{
	"product_code",
	"active",
	"name",
	"price",
	"vat",
	"unit",
	"category",
	"producer",
	"other_price",
	"pkwiu",
	"weight",
	"priority",
	"short_description",
	"description",
	"stock",
	"stock_warnlevel",
	"availability",
	"views",
	"rank",
	"rank_votes",
	"images 1",
	"warehouse_code",
}

// ExportShoperCSV escribe el snapshot en el formato de import de Shoper:
// delimitador ';', columnas en el orden fijo de la plataforma y el nombre
// compuesto "{nazwa} {suffix} {numer}". Las filas con la misma clave de
// identidad se funden sumando stock antes de escribir.
func ExportShoperCSV(w io.Writer, rows []*entity.InventoryRow) error {
	type slot struct {
		row   *entity.InventoryRow
		stock int
	}
	var order []string
	combined := make(map[string]*slot)

	for _, row := range rows {
		if row == nil {
			continue
		}
		qty := row.Qty
		if qty <= 0 {
			qty = 1
		}
		key := row.Key()
		if s, ok := combined[key]; ok {
			s.stock += qty
			continue
		}
		combined[key] = &slot{row: row, stock: qty}
		order = append(order, key)
	}

	out := make([]map[string]string, 0, len(order))
	for _, key := range order {
		s := combined[key]
		out = append(out, shoperRow(s.row, s.stock))
	}

	return csvio.WriteTable(w, shoperHeader, out, csvio.NormalizeHeader)
}

func shoperRow(row *entity.InventoryRow, stock int) map[string]string {
	nameParts := []string{row.Name}
	if suffix := strings.TrimSpace(row.Suffix); suffix != "" {
		nameParts = append(nameParts, suffix)
	}
	nameParts = append(nameParts, row.Number)

	return map[string]string{
		"product_code":      row.ProductCode,
		"active":            extraOr(row, "active", "1"),
		"name":              strings.Join(nameParts, " "),
		"price":             row.Price,
		"vat":               extraOr(row, "vat", "23%"),
		"unit":              extraOr(row, "unit", "szt."),
		"category":          row.ExtraField("category"),
		"producer":          row.ExtraField("producer"),
		"other_price":       row.ExtraField("other_price"),
		"pkwiu":             row.ExtraField("pkwiu"),
		"weight":            extraOr(row, "weight", "0.01"),
		"priority":          extraOr(row, "priority", "0"),
		"short_description": row.ExtraField("short_description"),
		"description":       row.ExtraField("description"),
		"stock":             strconv.Itoa(stock),
		"stock_warnlevel":   extraOr(row, "stock_warnlevel", "0"),
		"availability":      extraOr(row, "availability", "1"),
		"views":             row.ExtraField("views"),
		"rank":              row.ExtraField("rank"),
		"rank_votes":        row.ExtraField("rank_votes"),
		"image1":            row.Image,
		"warehouse_code":    row.WarehouseCode,
	}
}

func extraOr(row *entity.InventoryRow, key, def string) string {
	if v := row.ExtraField(key); v != "" {
		return v
	}
	return def
}
