package catalog

import (
	"context"

	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

var defaultServices = []string{
	"Teeth Orthodontics",
	"Cosmetic Dentistry",
	"Teeth Cleaning",
	"Cavity Protection",
	"Pediatric Dental",
	"Oral Surgery",
}

// SeedDefaults fills an empty catalog with the stock services, each offering
// the full day of half-hour slots at price. It returns the number of templates
// created; a catalog that already has templates is left untouched.
func (s *DefaultCatalogService) SeedDefaults(ctx context.Context, price float64) (int, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, utils.WrapError(utils.KindTransientStorage, "failed to count service templates", err)
	}
	if n > 0 {
		s.Logger.Info("catalog already seeded", zap.Int64("templates", n))
		return 0, nil
	}

	created := 0
	for _, name := range defaultServices {
		slots := make([]string, len(defaultSlots))
		copy(slots, defaultSlots)
		if _, err := s.CreateTemplate(ctx, models.ServiceTemplate{Name: name, Price: price, Slots: slots}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
