package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/specialistvlad/falbricator/internal/value"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func jsonString(v any) string {
	b, err := value.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
