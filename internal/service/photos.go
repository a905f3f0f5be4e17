package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardtracker/internal/events"
	"cardtracker/internal/model"
	"cardtracker/internal/storage"
)

const (
	photoKeyPrefix = "cards/"
	photoURLExpiry = 15 * time.Minute
)

// isStoredPhoto reports whether link is an object key UploadPhoto wrote for the card cardID.
// Keys under another card's prefix are never treated as owned.
func isStoredPhoto(cardID, link string) bool {
	return cardID != "" && strings.HasPrefix(link, photoKeyPrefix+cardID+"/")
}

// mergePhotoLinks reconciles submitted photo links with the card's uploaded objects.
// A submitted object key must belong to the card. Owned keys missing from the submission are
// appended so their objects stay referenced until the card is deleted.
func mergePhotoLinks(cardID string, submitted, existing []string) ([]string, error) {
	owned := make(map[string]bool)
	for _, l := range existing {
		if isStoredPhoto(cardID, l) {
			owned[l] = true
		}
	}

	links := make([]string, 0, len(submitted)+len(owned))
	seen := make(map[string]bool, len(owned))
	for _, l := range submitted {
		if strings.HasPrefix(l, photoKeyPrefix) {
			if !owned[l] {
				return nil, invalid("photo_links", "Photo Links can only reference photos uploaded for this card")
			}
			if seen[l] {
				continue
			}
			seen[l] = true
		}
		links = append(links, l)
	}
	for _, l := range existing {
		if owned[l] && !seen[l] {
			links = append(links, l)
			seen[l] = true
		}
	}
	return links, nil
}

func (s *cardService) UploadPhoto(ctx context.Context, id int64, r io.Reader, filename, contentType string, size int64) (*model.Card, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := path.Join(photoKeyPrefix, card.CardID, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
			"card-id":           card.CardID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	links := append(append([]string(nil), card.PhotoLinks...), obj.Key)
	if err := s.repo.SetPhotoLinks(ctx, id, links); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	card.PhotoLinks = links
	s.publish(ctx, events.CardUpdated, card)
	return card, nil
}

func (s *cardService) PhotoURLs(ctx context.Context, id int64) ([]string, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(card.PhotoLinks))
	for _, link := range card.PhotoLinks {
		if !isStoredPhoto(card.CardID, link) {
			if !strings.HasPrefix(link, photoKeyPrefix) {
				urls = append(urls, link)
			}
			continue
		}
		if s.store == nil {
			return nil, ErrStorageDisabled
		}
		u, err := s.store.PresignGet(ctx, link, photoURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", link, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}
