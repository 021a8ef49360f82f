package dispatcher

import (
	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
)

type Result struct {
	ConfigUpdated  bool
	CatalogUpdated bool
	LoaderUpdated  bool
	Generation     uint64
}

type Dispatcher struct {
	configs state.ConfigStore
	catalog state.CatalogStore
}

func New(c state.ConfigStore, s state.CatalogStore) *Dispatcher {
	return &Dispatcher{configs: c, catalog: s}
}

// Handle applies the store side effects carried by res. Results without a
// payload leave every store untouched.
func (d *Dispatcher) Handle(res actions.ActionResult) Result {
	var out Result
	if res.Config != nil {
		d.configs.Replace(*res.Config)
		record, _ := d.configs.Record()
		events.Config.Replace(string(record.Theme))
		out.ConfigUpdated = true
	}
	if res.CatalogLoaded {
		out.Generation = d.catalog.Replace(res.Catalog)
		events.Catalog.Replace(len(res.Catalog), out.Generation)
		out.CatalogUpdated = true
	}
	if res.Loader != nil {
		out.LoaderUpdated = true
	}
	return out
}
