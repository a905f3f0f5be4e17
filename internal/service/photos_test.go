package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardtracker/internal/events"
	eventMocks "cardtracker/internal/events/mocks"
	"cardtracker/internal/model"
	repoMocks "cardtracker/internal/repository/mocks"
	"cardtracker/internal/storage"
	storeMocks "cardtracker/internal/storage/mocks"
)

func echoKey(_ context.Context, key string, _ io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
	return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType}
}

func photoKey(cardID, ext string) interface{} {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "cards/"+cardID+"/") && strings.HasSuffix(key, ext)
	})
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	mStore := new(storeMocks.MockStorage)
	mPub := new(eventMocks.MockPublisher)
	svc := newTestService(mRepo, mStore, mPub)

	card := &model.Card{ID: 7, CardID: "CARD0000007", PhotoLinks: []string{"https://i.ebayimg.com/listing.jpg"}}
	body := strings.NewReader("jpeg-bytes")

	mRepo.On("FindByID", ctx, int64(7)).Return(card, nil).Once()
	mStore.On("Put", ctx, photoKey("CARD0000007", ".jpg"), body, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
		return opt.ContentType == "image/jpeg" && opt.Size == 10 &&
			opt.Metadata["original-filename"] == "Front.JPG" && opt.Metadata["card-id"] == "CARD0000007"
	})).Return(echoKey, nil).Once()
	mRepo.On("SetPhotoLinks", ctx, int64(7), mock.MatchedBy(func(links []string) bool {
		return len(links) == 2 && links[0] == "https://i.ebayimg.com/listing.jpg" && strings.HasPrefix(links[1], "cards/CARD0000007/")
	})).Return(nil).Once()
	mPub.On("Publish", ctx, mock.MatchedBy(func(e events.Event) bool { return e.Type == events.CardUpdated })).Return(nil).Once()

	got, err := svc.UploadPhoto(ctx, 7, body, "Front.JPG", "image/jpeg", 10)
	require.NoError(t, err)
	require.Len(t, got.PhotoLinks, 2)
	assert.True(t, strings.HasSuffix(got.PhotoLinks[1], ".jpg"))

	mRepo.AssertExpectations(t)
	mStore.AssertExpectations(t)
	mPub.AssertExpectations(t)
}

func TestUploadPhoto_RollbackOnDBError(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	mStore := new(storeMocks.MockStorage)
	svc := newTestService(mRepo, mStore, events.Noop{})

	mRepo.On("FindByID", ctx, int64(7)).Return(&model.Card{ID: 7, CardID: "CARD0000007"}, nil).Once()
	mStore.On("Put", ctx, photoKey("CARD0000007", ".png"), mock.Anything, mock.Anything).Return(echoKey, nil).Once()
	mRepo.On("SetPhotoLinks", ctx, int64(7), mock.Anything).Return(errors.New("db write failed")).Once()
	mStore.On("Delete", ctx, photoKey("CARD0000007", ".png")).Return(nil).Once()

	_, err := svc.UploadPhoto(ctx, 7, strings.NewReader("png"), "back.png", "image/png", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db save failed")
	mStore.AssertExpectations(t)
}

func TestUploadPhoto_RollbackFailure(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	mStore := new(storeMocks.MockStorage)
	svc := newTestService(mRepo, mStore, events.Noop{})

	mRepo.On("FindByID", ctx, int64(7)).Return(&model.Card{ID: 7, CardID: "CARD0000007"}, nil).Once()
	mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(echoKey, nil).Once()
	mRepo.On("SetPhotoLinks", ctx, int64(7), mock.Anything).Return(errors.New("db write failed")).Once()
	mStore.On("Delete", ctx, mock.Anything).Return(errors.New("bucket gone")).Once()

	_, err := svc.UploadPhoto(ctx, 7, strings.NewReader("png"), "back.png", "image/png", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rollback delete failed")
}

func TestUploadPhoto_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		mRepo := new(repoMocks.MockCardRepository)
		svc := newTestService(mRepo, nil, events.Noop{})

		_, err := svc.UploadPhoto(ctx, 1, strings.NewReader("x"), "a.jpg", "image/jpeg", 1)
		assert.ErrorIs(t, err, ErrStorageDisabled)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := newTestService(new(repoMocks.MockCardRepository), new(storeMocks.MockStorage), events.Noop{})
		_, err := svc.UploadPhoto(ctx, 1, nil, "a.jpg", "image/jpeg", 1)
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("not an image", func(t *testing.T) {
		svc := newTestService(new(repoMocks.MockCardRepository), new(storeMocks.MockStorage), events.Noop{})
		_, err := svc.UploadPhoto(ctx, 1, strings.NewReader("%PDF"), "a.pdf", "application/pdf", 4)
		assert.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("card not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockCardRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newTestService(mRepo, mStore, events.Noop{})

		mRepo.On("FindByID", ctx, int64(404)).Return(nil, ErrNotFound).Once()

		_, err := svc.UploadPhoto(ctx, 404, strings.NewReader("x"), "a.jpg", "image/jpeg", 1)
		assert.ErrorIs(t, err, ErrNotFound)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPhotoURLs(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	mStore := new(storeMocks.MockStorage)
	svc := newTestService(mRepo, mStore, events.Noop{})

	mRepo.On("FindByID", ctx, int64(2)).Return(&model.Card{
		ID:         2,
		CardID:     "CARD0000002",
		PhotoLinks: []string{"https://i.ebayimg.com/a.jpg", "cards/CARD0000002/b.jpg"},
	}, nil).Once()
	mStore.On("PresignGet", ctx, "cards/CARD0000002/b.jpg", photoURLExpiry).
		Return("http://minio:9000/card-photos/cards/CARD0000002/b.jpg?X-Amz-Signature=abc", nil).Once()

	urls, err := svc.PhotoURLs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://i.ebayimg.com/a.jpg",
		"http://minio:9000/card-photos/cards/CARD0000002/b.jpg?X-Amz-Signature=abc",
	}, urls)
	mStore.AssertExpectations(t)
}

func TestPhotoURLs_SkipsOtherCardsKeys(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	mStore := new(storeMocks.MockStorage)
	svc := newTestService(mRepo, mStore, events.Noop{})

	mRepo.On("FindByID", ctx, int64(2)).Return(&model.Card{
		ID:         2,
		CardID:     "CARD0000002",
		PhotoLinks: []string{"cards/CARD0000001/victim.jpg", "https://i.ebayimg.com/a.jpg"},
	}, nil).Once()

	urls, err := svc.PhotoURLs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://i.ebayimg.com/a.jpg"}, urls)
	mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
}

func TestPhotoURLs_StoredKeyWithoutStorage(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCardRepository)
	svc := newTestService(mRepo, nil, events.Noop{})

	mRepo.On("FindByID", ctx, int64(2)).Return(&model.Card{ID: 2, CardID: "CARD0000002", PhotoLinks: []string{"cards/CARD0000002/b.jpg"}}, nil).Once()

	_, err := svc.PhotoURLs(ctx, 2)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
