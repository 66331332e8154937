package invalidate_cache

import (
	"github.com/light-bringer/pricing-service/internal/app/pricing/loader"
)

// Interactor forces the pricing cache to refetch on the next load. The
// settings-editing surface calls this after any configuration write.
type Interactor struct {
	loader *loader.Loader
}

// NewInteractor creates a new cache invalidation interactor.
func NewInteractor(ldr *loader.Loader) *Interactor {
	return &Interactor{loader: ldr}
}

// Execute clears the cache unconditionally.
func (i *Interactor) Execute() {
	i.loader.Invalidate()
}
