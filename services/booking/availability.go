package booking

import (
	"context"

	bookingRepo "medicare/database/repository/booking"
	catalogRepo "medicare/database/repository/catalog"
	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

// AvailabilityResolver derives the free slots of every service for a date.
type AvailabilityResolver struct {
	Catalog catalogRepo.CatalogRepository
	Ledger  bookingRepo.BookingRepository
	Cache   AvailabilityCache // nil disables caching
	Logger  *zap.Logger
}

// Resolve returns one entry per service template, in template order. Unpaid
// reservations take their slot just like paid ones.
func (r *AvailabilityResolver) Resolve(ctx context.Context, date string) ([]models.ServiceAvailability, error) {
	// gen stays -1 when no view may be stored.
	gen := int64(-1)
	if r.Cache != nil {
		view, ok, err := r.Cache.Get(ctx, date)
		switch {
		case err != nil:
			r.Logger.Warn("availability cache read failed", zap.String("date", date), zap.Error(err))
		case ok:
			utils.AvailabilityCacheHits.WithLabelValues("hit").Inc()
			return view, nil
		default:
			utils.AvailabilityCacheHits.WithLabelValues("miss").Inc()
		}
		// read before the ledger so an admit landing in between is detected
		if g, err := r.Cache.Generation(ctx, date); err != nil {
			r.Logger.Warn("availability cache generation read failed", zap.String("date", date), zap.Error(err))
		} else {
			gen = g
		}
	}

	templates, err := r.Catalog.ListTemplates(ctx)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to load service templates", err)
	}
	booked, err := r.Ledger.FindByDate(ctx, date)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to load bookings", err)
	}

	view := ComputeAvailability(date, templates, booked)

	if gen >= 0 {
		stored, err := r.Cache.Set(ctx, date, gen, view)
		switch {
		case err != nil:
			r.Logger.Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
		case !stored:
			r.Logger.Debug("availability view superseded before caching", zap.String("date", date))
		}
	}
	return view, nil
}

// ComputeAvailability subtracts the times booked on date from each template.
// Services with nothing left are kept with an empty slot list.
func ComputeAvailability(date string, templates []models.ServiceTemplate, reservations []models.Reservation) []models.ServiceAvailability {
	taken := make(map[string]map[string]struct{})
	for _, res := range reservations {
		if res.AppointmentDate != date {
			continue
		}
		times, ok := taken[res.ServiceName]
		if !ok {
			times = make(map[string]struct{})
			taken[res.ServiceName] = times
		}
		times[res.AppointmentTime] = struct{}{}
	}

	view := make([]models.ServiceAvailability, 0, len(templates))
	for _, tmpl := range templates {
		free := make([]string, 0, len(tmpl.Slots))
		for _, slot := range tmpl.Slots {
			if _, booked := taken[tmpl.Name][slot]; !booked {
				free = append(free, slot)
			}
		}
		view = append(view, models.ServiceAvailability{
			ID:    tmpl.ID,
			Name:  tmpl.Name,
			Price: tmpl.Price,
			Slots: free,
		})
	}
	return view
}
