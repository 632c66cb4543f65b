package queries

import (
	"context"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"freight/internal/core/domain/model/driver"
)

// GetAvailableDriversQueryHandler lists available drivers ordered by full name.
// Names are compared with the root-locale collation, so ordering does not
// depend on the host locale and mixed scripts sort predictably.
type GetAvailableDriversQueryHandler struct {
	drivers DriverReader
}

func NewGetAvailableDriversQueryHandler(drivers DriverReader) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{drivers: drivers}
}

func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.drivers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*driver.Driver, 0, len(all))
	for _, d := range all {
		if d.IsAvailable() {
			available = append(available, d)
		}
	}

	// collate.Collator keeps internal buffers and is not safe for concurrent use.
	collator := collate.New(language.Und)
	slices.SortStableFunc(available, func(a, b *driver.Driver) int {
		return collator.CompareString(a.FullName(), b.FullName())
	})

	return mapAll(available, newDriverResponse), nil
}
