// Package catalog loads the workout types that exist on startup.
// The built-in set is embedded from defaults.toml; an alternative file with
// the same layout can be supplied through configuration.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pkordes/workout-tracker/internal/domain"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Catalog is the startup set of workout types plus the ids that must never
// be deleted.
type Catalog struct {
	Types     []domain.WorkoutType
	Protected map[string]bool
}

// IsProtected reports whether the workout type id may not be deleted.
func (c Catalog) IsProtected(id string) bool {
	return c.Protected[id]
}

type file struct {
	Types []typeDef `toml:"types"`
}

type typeDef struct {
	ID        string        `toml:"id"`
	Name      string        `toml:"name"`
	Icon      string        `toml:"icon"`
	Color     string        `toml:"color"`
	Protected bool          `toml:"protected"`
	Exercises []exerciseDef `toml:"exercises"`
}

type exerciseDef struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Sets int    `toml:"sets"`
	Reps string `toml:"reps"`
}

// Default returns the embedded catalog.
func Default() (Catalog, error) {
	c, err := Parse(defaultsTOML)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog.Default: %w", err)
	}
	return c, nil
}

// Load reads a catalog from a TOML file. An empty path yields the embedded
// default catalog.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog.Load: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog.Load: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. Unknown keys, blank ids or names and
// duplicate ids are rejected. Exercises without an id get "<type id>-<n>".
func Parse(data []byte) (Catalog, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Catalog{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Catalog{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	c := Catalog{
		Types:     make([]domain.WorkoutType, 0, len(f.Types)),
		Protected: make(map[string]bool),
	}
	seen := make(map[string]bool, len(f.Types))
	for i, def := range f.Types {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("type #%d: id is required", i+1)
		}
		if id == domain.CustomTypeID {
			return Catalog{}, fmt.Errorf("type #%d: id %q is reserved", i+1, id)
		}
		if seen[id] {
			return Catalog{}, fmt.Errorf("type #%d: duplicate id %q", i+1, id)
		}
		seen[id] = true
		if strings.TrimSpace(def.Name) == "" {
			return Catalog{}, fmt.Errorf("type %q: name is required", id)
		}

		wt := domain.WorkoutType{
			ID:        id,
			Name:      strings.TrimSpace(def.Name),
			Icon:      def.Icon,
			Color:     def.Color,
			Exercises: make([]domain.Exercise, 0, len(def.Exercises)),
		}
		for j, ex := range def.Exercises {
			exID := ex.ID
			if exID == "" {
				exID = id + "-" + strconv.Itoa(j+1)
			}
			wt.Exercises = append(wt.Exercises, domain.Exercise{
				ID:   exID,
				Name: ex.Name,
				Sets: ex.Sets,
				Reps: ex.Reps,
			})
		}
		c.Types = append(c.Types, wt)
		if def.Protected {
			c.Protected[id] = true
		}
	}
	return c, nil
}
