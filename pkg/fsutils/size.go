package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeLabel returns size scaled by 1024 until it is under 1024,
// formatted with two decimals and a unit, e.g. "4.00 KB".
// Sizes beyond the last unit stay in TB.
func GetSizeLabel(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + sizeUnits[unit]
}
