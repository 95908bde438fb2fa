package primitive

import (
	"fmt"
	"strconv"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// Format returns the text shown for p in a table cell.
func Format(p Primitive) string {
	switch p := p.(type) {
	case nil, Nothing:
		return ""
	case Int:
		return p.String()
	case Decimal:
		return p.String()
	case Bytes:
		return formatBytes(uint64(p))
	case String:
		return string(p)
	case Line:
		return string(p)
	case *ColumnPath:
		return p.String()
	case Boolean:
		return strconv.FormatBool(bool(p))
	case Date:
		return p.Format(time.RFC3339)
	case Duration:
		return (time.Duration(p) * time.Second).String()
	case *Range:
		sep := ".."
		if p.To.Inclusion == Exclusive {
			sep = "..<"
		}
		return Format(p.From.Value.Item) + sep + Format(p.To.Value.Item)
	case Path:
		return string(p)
	case Binary:
		return fmt.Sprintf("<binary: %d bytes>", len(p))
	}
	return fmt.Sprintf("<unknown %v>", p)
}

func formatBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	f := float64(n) / 1024
	unit := 0
	for f >= 1024 && unit < len(byteUnits)-1 {
		f /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", f, byteUnits[unit])
}
