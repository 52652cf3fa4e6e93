package content

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParsePack decodes a YAML content pack. Unknown keys are rejected.
func ParsePack(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return Catalog{}, fmt.Errorf("%w: empty pack", ErrInvalidPack)
		}
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidPack, err)
	}
	return c.Normalize(), nil
}

// ReadPackFile parses the pack at path.
func ReadPackFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open pack: %w", err)
	}
	defer f.Close()
	return ParsePack(f)
}

// WritePack encodes c as YAML.
func WritePack(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode pack: %w", err)
	}
	return enc.Close()
}
