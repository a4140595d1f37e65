package lookup

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadRows reads every row of a sheet as typed cell values.
// Numbers become float64, booleans bool and everything else string.
// Empty cells are nil.
func ReadRows(f *excelize.File, sheetName string) ([][]interface{}, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]interface{}, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]interface{}, len(row))

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			values[colIdx] = parseValue(raw, cellType)
		}

		result = append(result, values)
	}

	return result, nil
}

// parseValue converts a raw cell string using the cell's stored type.
// Text that merely looks numeric ("007") stays a string.
func parseValue(s string, cellType excelize.CellType) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return s == "1" || strings.EqualFold(s, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Plain numeric cells carry no type attribute at all.
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// Normalize renders a cell value as the string used for matching.
// Integral numbers lose their fractional part (1023.0 -> "1023"),
// other numbers use their shortest form, booleans count as 1 and 0.
func Normalize(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	default:
		return ""
	}
}

func formatFloat(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if abs := math.Abs(x); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
