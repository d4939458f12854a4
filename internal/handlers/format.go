package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/localnerve/marketdb/internal/models"
)

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC1123)
}

// formatChanges lists the fields an update set, e.g. "price=3.5 units=12"
func formatChanges(c models.ProductChanges) string {
	var parts []string
	if c.PricePerUnit != nil {
		parts = append(parts, "price="+formatFloat(*c.PricePerUnit))
	}
	if c.NumberOfUnits != nil {
		parts = append(parts, "units="+strconv.Itoa(*c.NumberOfUnits))
	}
	return strings.Join(parts, " ")
}
