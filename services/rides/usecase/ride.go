package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/utils"
	"github.com/sydoni/sydoni-drive/services/rides"
	"github.com/sydoni/sydoni-drive/services/universities"
	"github.com/sydoni/sydoni-drive/services/users"
)

// rideUC implements the rides.RideUC interface. It is the single writer for
// listings, history entries and legacy reservation records: every transition
// updates all projections inside one call, which is what keeps the
// denormalized views consistent in the absence of transactions.
type rideUC struct {
	cfg         *models.Config
	listingRepo rides.ListingRepo
	historyRepo rides.HistoryRepo
	resRepo     rides.ReservationRepo
	userUC      users.UserUC
	directory   universities.Directory
	now         func() time.Time
}

// NewRideUC creates a new ride coordinator use case
func NewRideUC(
	cfg *models.Config,
	listingRepo rides.ListingRepo,
	historyRepo rides.HistoryRepo,
	resRepo rides.ReservationRepo,
	userUC users.UserUC,
	directory universities.Directory,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:         cfg,
		listingRepo: listingRepo,
		historyRepo: historyRepo,
		resRepo:     resRepo,
		userUC:      userUC,
		directory:   directory,
		now:         time.Now,
	}, nil
}

// Publish creates a new listing in the en_attente state. Only a registered
// driver may publish. No points are awarded here; the publication bonus is
// resolved at completion, once reservation activity is known.
func (uc *rideUC) Publish(ctx context.Context, req rides.PublishRequest) (*models.Listing, error) {
	driver, err := uc.userUC.GetByEmail(ctx, req.DriverEmail)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, rides.ErrNotDriver
		}
		return nil, err
	}
	if !driver.IsDriver() {
		return nil, rides.ErrNotDriver
	}

	listing := &models.Listing{
		ID:               uuid.NewString(),
		DriverEmail:      req.DriverEmail,
		Destination:      req.Destination,
		DepartureTime:    req.DepartureTime,
		SeatsOffered:     req.Seats,
		SeatsAvailable:   req.Seats,
		VehicleKind:      driver.VehicleKind,
		Status:           models.ListingStatusPending,
		Passengers:       []string{},
		Departure:        req.Departure,
		DepartureGeohash: utils.EncodeLocation(req.Departure, uc.cfg.Match.NearbyPrecision),
		PublishedAt:      uc.now(),
		HasReservations:  false,
	}

	if err := uc.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("publishing listing: %w", err)
	}

	logger.Info("Published listing",
		logger.String("listing_id", listing.ID),
		logger.String("driver", listing.DriverEmail),
		logger.String("destination", listing.Destination),
		logger.Int("seats", listing.SeatsOffered))
	return listing, nil
}

// Reserve books a seat for a passenger on a listing. The listing counters are
// updated first, then the legacy reservation record and both history entries
// are written. There is no compensating rollback: a failure partway through
// surfaces as an error and may leave the projections behind the listing.
func (uc *rideUC) Reserve(ctx context.Context, listingID, passengerEmail string, position models.Location) error {
	listing, err := uc.listingRepo.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SeatsAvailable <= 0 {
		return rides.ErrNoSeats
	}
	if listing.HasPassenger(passengerEmail) {
		return rides.ErrAlreadyReserved
	}

	listing.SeatsAvailable--
	listing.Passengers = append(listing.Passengers, passengerEmail)
	listing.HasReservations = true
	if err := uc.listingRepo.UpdateListing(ctx, listing); err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}

	reservation := &models.Reservation{
		ID:             uuid.NewString(),
		ListingID:      listing.ID,
		DriverEmail:    listing.DriverEmail,
		PassengerEmail: passengerEmail,
		DepartureTime:  listing.DepartureTime,
		Status:         models.ReservationStatusPending,
	}
	if err := uc.resRepo.CreateReservation(ctx, reservation); err != nil {
		return fmt.Errorf("recording reservation: %w", err)
	}

	passengerEntry := models.HistoryEntry{
		ListingID:         listing.ID,
		Role:              models.RolePassenger,
		Destination:       listing.Destination,
		DepartureTime:     listing.DepartureTime,
		Status:            models.ListingStatusPending,
		Points:            0,
		DriverEmail:       listing.DriverEmail,
		PassengerPosition: &position,
	}
	if err := uc.historyRepo.PutEntry(ctx, passengerEmail, passengerEntry); err != nil {
		return fmt.Errorf("writing passenger history: %w", err)
	}

	driverEntry := models.HistoryEntry{
		ListingID:       listing.ID,
		Role:            models.RoleDriver,
		Destination:     listing.Destination,
		DepartureTime:   listing.DepartureTime,
		Status:          models.ListingStatusPending,
		Points:          0,
		SeatsOffered:    listing.SeatsOffered,
		SeatsAvailable:  listing.SeatsAvailable,
		Passengers:      append([]string(nil), listing.Passengers...),
		HasReservations: listing.HasReservations,
		Departure:       &listing.Departure,
	}
	if err := uc.historyRepo.PutEntry(ctx, listing.DriverEmail, driverEntry); err != nil {
		return fmt.Errorf("writing driver history: %w", err)
	}

	logger.Info("Reserved seat",
		logger.String("listing_id", listing.ID),
		logger.String("passenger", passengerEmail),
		logger.Int("seats_available", listing.SeatsAvailable))
	return nil
}

// Complete marks a trip as finished and settles the driver's points: the
// publication bonus when the listing drew no reservations and was published
// early enough, plus the per-passenger bonus for every reserved passenger.
// Passengers earn nothing.
func (uc *rideUC) Complete(ctx context.Context, listingID string) (*rides.CompletionResult, error) {
	listing, err := uc.listingRepo.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status == models.ListingStatusCompleted {
		return nil, rides.ErrAlreadyCompleted
	}

	listing.Status = models.ListingStatusCompleted
	if err := uc.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("updating listing: %w", err)
	}

	result := &rides.CompletionResult{}

	// Publication bonus: only when the listing never had a reservation and the
	// gap between publication and the later of (scheduled departure on the
	// publication date) or now is at least the configured window.
	if !listing.HasReservations {
		departure, err := listing.DepartureOn(listing.PublishedAt)
		if err != nil {
			logger.Warn("Malformed departure time, skipping publication bonus",
				logger.String("listing_id", listing.ID),
				logger.String("departure_time", listing.DepartureTime))
		} else {
			reference := departure
			if now := uc.now(); departure.Before(now) {
				reference = now
			}
			window := time.Duration(uc.cfg.Rewards.EarlyPublishMinutes) * time.Minute
			if reference.Sub(listing.PublishedAt) >= window {
				result.PointsAwarded += uc.cfg.Rewards.PublishBonus
				result.AwardBreakdown = append(result.AwardBreakdown,
					fmt.Sprintf("%d points for publishing on time with no reservations", uc.cfg.Rewards.PublishBonus))
			}
		}
	}

	// Per-passenger bonus, awarded for every reserved passenger. Whether the
	// passenger was actually picked up is not verified.
	if n := len(listing.Passengers); n > 0 {
		earned := n * uc.cfg.Rewards.PerPassengerBonus
		result.PointsAwarded += earned
		result.AwardBreakdown = append(result.AwardBreakdown,
			fmt.Sprintf("%d points for driving passengers to destination", earned))
	}

	if result.PointsAwarded > 0 {
		if _, err := uc.userUC.AddPoints(ctx, listing.DriverEmail, result.PointsAwarded); err != nil {
			return nil, fmt.Errorf("crediting driver points: %w", err)
		}
	}

	// Driver-side history entry, if a reservation ever created one.
	if entry, err := uc.historyRepo.GetEntry(ctx, listing.DriverEmail, listing.ID); err != nil {
		return nil, err
	} else if entry != nil {
		entry.Status = models.ListingStatusCompleted
		entry.Points += result.PointsAwarded
		if err := uc.historyRepo.PutEntry(ctx, listing.DriverEmail, *entry); err != nil {
			return nil, fmt.Errorf("updating driver history: %w", err)
		}
	}

	// Passenger-side entries move to termine; no points for passengers.
	for _, passenger := range listing.Passengers {
		entry, err := uc.historyRepo.GetEntry(ctx, passenger, listing.ID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			continue
		}
		entry.Status = models.ListingStatusCompleted
		if err := uc.historyRepo.PutEntry(ctx, passenger, *entry); err != nil {
			return nil, fmt.Errorf("updating passenger history: %w", err)
		}
	}

	// Advance the legacy reservation records for this listing.
	reservations, err := uc.resRepo.ListByListing(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	for _, res := range reservations {
		res.Status = models.ReservationStatusCompleted
		if err := uc.resRepo.UpdateReservation(ctx, res); err != nil {
			return nil, fmt.Errorf("updating reservation: %w", err)
		}
	}

	logger.Info("Completed trip",
		logger.String("listing_id", listing.ID),
		logger.String("driver", listing.DriverEmail),
		logger.Int("points_awarded", result.PointsAwarded))
	return result, nil
}

// Rate lets a passenger score a completed trip from 0 to 5. The driver earns
// score times the rating multiplier, additive to the completion bonuses. The
// driver's displayed rating is overwritten with the latest score; it is a
// display value, not a running average.
func (uc *rideUC) Rate(ctx context.Context, listingID, passengerEmail string, score int) (int, error) {
	if score < 0 || score > 5 {
		return 0, rides.ErrInvalidScore
	}

	listing, err := uc.listingRepo.GetListing(ctx, listingID)
	if err != nil {
		return 0, err
	}
	if listing.Status != models.ListingStatusCompleted {
		return 0, rides.ErrNotCompleted
	}
	if !listing.HasPassenger(passengerEmail) {
		return 0, rides.ErrNotParticipant
	}

	passengerEntry, err := uc.historyRepo.GetEntry(ctx, passengerEmail, listing.ID)
	if err != nil {
		return 0, err
	}
	if passengerEntry != nil && passengerEntry.RatingGiven {
		return 0, rides.ErrAlreadyRated
	}

	awarded := score * uc.cfg.Rewards.RatingMultiplier
	if _, err := uc.userUC.AddPoints(ctx, listing.DriverEmail, awarded); err != nil {
		return 0, fmt.Errorf("crediting driver points: %w", err)
	}

	if passengerEntry != nil {
		passengerEntry.RatingGiven = true
		if err := uc.historyRepo.PutEntry(ctx, passengerEmail, *passengerEntry); err != nil {
			return 0, fmt.Errorf("marking rating given: %w", err)
		}
	}

	if driverEntry, err := uc.historyRepo.GetEntry(ctx, listing.DriverEmail, listing.ID); err != nil {
		return 0, err
	} else if driverEntry != nil {
		driverEntry.Rating = &score
		if err := uc.historyRepo.PutEntry(ctx, listing.DriverEmail, *driverEntry); err != nil {
			return 0, fmt.Errorf("updating driver rating: %w", err)
		}
	}

	logger.Info("Rated trip",
		logger.String("listing_id", listing.ID),
		logger.String("passenger", passengerEmail),
		logger.Int("score", score),
		logger.Int("points_awarded", awarded))
	return awarded, nil
}

// Cancel moves a listing into the annule state. Cancelled listings disappear
// from availability; no points move.
func (uc *rideUC) Cancel(ctx context.Context, listingID string) error {
	listing, err := uc.listingRepo.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.Status == models.ListingStatusCancelled {
		return rides.ErrAlreadyCancelled
	}
	if listing.Status == models.ListingStatusCompleted {
		return rides.ErrAlreadyCompleted
	}

	listing.Status = models.ListingStatusCancelled
	if err := uc.listingRepo.UpdateListing(ctx, listing); err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}

	for _, email := range append([]string{listing.DriverEmail}, listing.Passengers...) {
		entry, err := uc.historyRepo.GetEntry(ctx, email, listing.ID)
		if err != nil {
			return err
		}
		if entry == nil {
			continue
		}
		entry.Status = models.ListingStatusCancelled
		if err := uc.historyRepo.PutEntry(ctx, email, *entry); err != nil {
			return fmt.Errorf("updating history: %w", err)
		}
	}

	reservations, err := uc.resRepo.ListByListing(ctx, listing.ID)
	if err != nil {
		return err
	}
	for _, res := range reservations {
		res.Status = models.ReservationStatusCancelled
		if err := uc.resRepo.UpdateReservation(ctx, res); err != nil {
			return fmt.Errorf("updating reservation: %w", err)
		}
	}

	logger.Info("Cancelled listing", logger.String("listing_id", listing.ID))
	return nil
}

// Remove deletes a listing outright. This is the only deletion path and is
// strictly administrative.
func (uc *rideUC) Remove(ctx context.Context, listingID string) error {
	return uc.listingRepo.DeleteListing(ctx, listingID)
}
