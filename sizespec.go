package favigen

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeEntry maps one output file name to its square pixel dimension.
type SizeEntry struct {
	Name string
	Size int
}

// SizeSpec is the ordered list of standalone raster outputs produced from the
// vector source. The entry order is preserved all the way through to the
// confirmation output, which is why a map is not used here.
type SizeSpec []SizeEntry

// DefaultSizes is the standard favicon family expected by most browsers and
// by iOS home screens.
var DefaultSizes = SizeSpec{
	{Name: "favicon-16x16.png", Size: 16},
	{Name: "favicon-32x32.png", Size: 32},
	{Name: "apple-touch-icon.png", Size: 180},
}

// ParseSizeSpec parses a size specification of the form "name:size[,name:size...]".
func ParseSizeSpec(s string) (SizeSpec, error) {
	var spec SizeSpec

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, val, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("invalid size entry %q, expected name:size", field)
		}
		size, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("invalid size in entry %q: %v", field, err)
		}
		spec = append(spec, SizeEntry{Name: strings.TrimSpace(name), Size: size})
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks that the specification is non-empty and that every entry
// carries a unique file name and a positive dimension.
func (s SizeSpec) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty size specification")
	}

	seen := make(map[string]struct{}, len(s))
	for _, e := range s {
		if e.Name == "" {
			return fmt.Errorf("size specification entry with an empty name")
		}
		if e.Size <= 0 {
			return fmt.Errorf("invalid dimension %d for %s, the size should be a positive integer", e.Size, e.Name)
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("duplicated output name: %s", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
