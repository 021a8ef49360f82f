package events

import "github.com/glfs/glfs-client/internal/logging"

type CatalogTracer struct{}

type ConfigTracer struct{}

var (
	Catalog = CatalogTracer{}
	Config  = ConfigTracer{}
)

func (CatalogTracer) Refresh() {
	logging.Trace("catalog.refresh", nil)
}

func (CatalogTracer) Replace(count int, generation uint64) {
	logging.Trace("catalog.replace", map[string]interface{}{"count": count, "generation": generation})
}

func (CatalogTracer) Stale(path string, generation, current uint64) {
	logging.Trace("catalog.stale", map[string]interface{}{
		"path":       path,
		"generation": generation,
		"current":    current,
	})
}

func (ConfigTracer) Load() {
	logging.Trace("config.load", nil)
}

func (ConfigTracer) Save(theme string) {
	logging.Trace("config.save", map[string]interface{}{"theme": theme})
}

func (ConfigTracer) Replace(theme string) {
	logging.Trace("config.replace", map[string]interface{}{"theme": theme})
}
