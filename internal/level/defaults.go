package level

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// embeddedLevels parses the built-in level set shipped with the
// binary. The files are validated by tests, so a parse failure here is
// a packaging bug.
func embeddedLevels() []Level {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		panic(fmt.Sprintf("level: embedded defaults unreadable: %v", err))
	}
	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := defaultsFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("level: embedded %s unreadable: %v", e.Name(), err))
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("level: embedded %s invalid: %v", e.Name(), err))
		}
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels
}
