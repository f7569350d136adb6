package factiva

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// FileInfo is the (theme, year, outlet) triple encoded in a dump filename.
type FileInfo struct {
	Theme  string
	Year   int
	Outlet string
}

// ParseFileInfo decodes a dump filename of the form
// "factiva_{theme}_{year}_{outlet}.txt". The theme itself may contain
// underscores, so the year and outlet are taken from the end.
func ParseFileInfo(name string) (FileInfo, error) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if !strings.HasPrefix(stem, "factiva_") {
		return FileInfo{}, fmt.Errorf("unexpected dump filename %q", name)
	}

	parts := strings.Split(stem, "_")
	if len(parts) < 4 {
		return FileInfo{}, fmt.Errorf("dump filename %q has too few segments", name)
	}

	outlet := strings.ToLower(parts[len(parts)-1])
	year, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return FileInfo{}, fmt.Errorf("dump filename %q has non-numeric year: %w", name, err)
	}
	theme := strings.Join(parts[1:len(parts)-2], "_")

	return FileInfo{Theme: theme, Year: year, Outlet: outlet}, nil
}
