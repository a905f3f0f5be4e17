package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"cardtracker/internal/cardid"
	"cardtracker/internal/events"
	"cardtracker/internal/model"
	"cardtracker/internal/repository"
	"cardtracker/internal/storage"
)

var (
	ErrNotFound        = errors.New("card not found")
	ErrDuplicateCardID = errors.New("could not allocate a unique card id")
	ErrStorageDisabled = errors.New("photo storage is not configured")
	ErrReaderNil       = errors.New("reader is nil")
	ErrNotImage        = errors.New("photo must be an image")
)

const (
	defaultLimit = 50
	maxLimit     = 500
	// maxIDAttempts bounds card_id regeneration after unique violations.
	maxIDAttempts = 3
)

// ListOptions are the inventory filters accepted by List.
type ListOptions struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// CardListResult is the service-level DTO for a page of cards.
type CardListResult struct {
	Items  []model.Card `json:"data"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// CardService defines the inventory use cases.
type CardService interface {
	// List returns the newest cards first, filtered by search text and status.
	List(ctx context.Context, opts ListOptions) (*CardListResult, error)

	// Get returns a single card by its ID.
	Get(ctx context.Context, id int64) (*model.Card, error)

	// Create validates the input, derives computed fields, assigns the next sequential card_id and stores the card.
	Create(ctx context.Context, in model.CardInput) (*model.Card, error)

	// Update validates the input, derives computed fields and overwrites the card. card_id never changes,
	// and photos uploaded for the card stay linked even when the submitted photo_links omit them.
	Update(ctx context.Context, id int64, in model.CardInput) (*model.Card, error)

	// Delete removes the card and any photos uploaded for it.
	Delete(ctx context.Context, id int64) error

	// Stats aggregates totals over the whole inventory.
	Stats(ctx context.Context) (*Stats, error)

	// UploadPhoto streams a photo to object storage and links it to the card.
	UploadPhoto(ctx context.Context, id int64, r io.Reader, filename, contentType string, size int64) (*model.Card, error)

	// PhotoURLs returns browsable URLs for every photo of the card.
	PhotoURLs(ctx context.Context, id int64) ([]string, error)
}

// cardService is a concrete implementation of CardService.
type cardService struct {
	repo  repository.CardRepository
	store storage.Storage
	pub   events.Publisher
	log   *zap.Logger
	now   func() time.Time

	// idMu serializes card_id allocation within the process.
	idMu sync.Mutex
}

// NewCardService constructs a new CardService. store may be nil when photo storage is disabled.
func NewCardService(repo repository.CardRepository, store storage.Storage, pub events.Publisher, log *zap.Logger) CardService {
	if pub == nil {
		pub = events.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &cardService{repo: repo, store: store, pub: pub, log: log, now: time.Now}
}

func (s *cardService) List(ctx context.Context, opts ListOptions) (*CardListResult, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	lq := repository.ListQuery{Search: opts.Search, Limit: opts.Limit, Offset: opts.Offset}
	if opts.Status != "" {
		status, err := parseStatus(opts.Status)
		if err != nil {
			return nil, err
		}
		lq.Status = status
	}

	res, err := s.repo.List(ctx, lq)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return &CardListResult{Items: res.Items, Total: res.Total, Limit: opts.Limit, Offset: opts.Offset}, nil
}

func (s *cardService) Get(ctx context.Context, id int64) (*model.Card, error) {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *cardService) Create(ctx context.Context, in model.CardInput) (*model.Card, error) {
	card, err := buildCard(in)
	if err != nil {
		return nil, err
	}
	// A new card owns no uploaded photos yet.
	if card.PhotoLinks, err = mergePhotoLinks("", card.PhotoLinks, nil); err != nil {
		return nil, err
	}

	s.idMu.Lock()
	defer s.idMu.Unlock()

	tried := make(map[string]bool, maxIDAttempts)
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		card.CardID = s.nextCardID(ctx, tried)
		tried[card.CardID] = true

		stored, err := s.repo.Create(ctx, card)
		if err == nil {
			s.log.Info("card_created", zap.Int64("id", stored.ID), zap.String("card_id", stored.CardID))
			s.publish(ctx, events.CardCreated, stored)
			return stored, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("create card: %w", err)
		}
		s.log.Warn("card_id_collision", zap.String("card_id", card.CardID), zap.Int("attempt", attempt))
	}
	return nil, ErrDuplicateCardID
}

// nextCardID reads the last identifier and increments it. Lookup failures fall back to a
// clock-derived identifier; candidates already tried in this call are skipped.
func (s *cardService) nextCardID(ctx context.Context, tried map[string]bool) string {
	var candidate string
	last, err := s.repo.LastCardID(ctx)
	if err == nil {
		candidate, err = cardid.Next(last)
	}
	if err != nil {
		s.log.Warn("card_id_fallback", zap.Error(err))
		candidate = cardid.Fallback(s.now())
	}
	for tried[candidate] {
		next, err := cardid.Next(candidate)
		if err != nil {
			return cardid.Fallback(s.now())
		}
		candidate = next
	}
	return candidate
}

func (s *cardService) Update(ctx context.Context, id int64, in model.CardInput) (*model.Card, error) {
	card, err := buildCard(in)
	if err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.PhotoLinks, err = mergePhotoLinks(current.CardID, card.PhotoLinks, current.PhotoLinks); err != nil {
		return nil, err
	}
	card.ID = id

	stored, err := s.repo.Update(ctx, card)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update card: %w", err)
	}
	s.publish(ctx, events.CardUpdated, stored)
	return stored, nil
}

// Delete removes stored photos first; if that fails the row is kept so the keys are not lost.
func (s *cardService) Delete(ctx context.Context, id int64) error {
	card, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if s.store != nil {
		for _, link := range card.PhotoLinks {
			if !isStoredPhoto(card.CardID, link) {
				continue
			}
			if err := s.store.Delete(ctx, link); err != nil {
				return fmt.Errorf("delete photo %s: %w", link, err)
			}
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete card: %w", err)
	}
	s.log.Info("card_deleted", zap.Int64("id", card.ID), zap.String("card_id", card.CardID))
	s.publish(ctx, events.CardDeleted, card)
	return nil
}

func (s *cardService) Stats(ctx context.Context) (*Stats, error) {
	res, err := s.repo.List(ctx, repository.ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	return ComputeStats(res.Items), nil
}

func (s *cardService) publish(ctx context.Context, t events.Type, card *model.Card) {
	e := events.Event{Type: t, ID: card.ID, CardID: card.CardID, At: s.now().UTC()}
	if t != events.CardDeleted {
		e.Card = card
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		s.log.Warn("event_publish_failed",
			zap.String("type", string(t)),
			zap.String("card_id", card.CardID),
			zap.Error(err),
		)
	}
}
