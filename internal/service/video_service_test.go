package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/contract"
	"video-notetaking-be/internal/repository/specification"
	"video-notetaking-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUow wires stub repositories behind the UnitOfWork interface so the
// services can be tested without a database.
type fakeUow struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	notes    *fakeNoteRepo
	videos   *fakeVideoRepo
	activity *fakeActivityLogRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) SessionRepository() contract.SessionRepository         { return u.sessions }
func (u *fakeUow) NoteRepository() contract.NoteRepository               { return u.notes }
func (u *fakeUow) VideoRepository() contract.VideoRepository             { return u.videos }
func (u *fakeUow) ActivityLogRepository() contract.ActivityLogRepository { return u.activity }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeNoteRepo struct {
	note    *entity.Note
	created []*entity.Note
	updated []*entity.Note
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.created = append(r.created, note)
	return nil
}
func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	r.updated = append(r.updated, note)
	return nil
}
func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	if r.note == nil {
		return nil, nil
	}
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if r.note.Id != s.ID {
				return nil, nil
			}
		case specification.OwnedBy:
			if r.note.UserId != s.UserID {
				return nil, nil
			}
		}
	}
	return r.note, nil
}
func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.note == nil {
		return nil, nil
	}
	return []*entity.Note{r.note}, nil
}
func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeVideoRepo struct {
	mu      sync.Mutex
	created []*entity.Video
}

func (r *fakeVideoRepo) Create(ctx context.Context, video *entity.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, video)
	return nil
}
func (r *fakeVideoRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Video(nil), r.created...), nil
}
func (r *fakeVideoRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeTitleFetcher struct {
	titles       map[string]string
	playlistUrls []string
	titleErr     error
}

func (f *fakeTitleFetcher) GetVideoTitle(ctx context.Context, videoId string) (string, error) {
	if f.titleErr != nil {
		return "", f.titleErr
	}
	title, ok := f.titles[videoId]
	if !ok {
		return "", errors.New("Invalid YouTube video data received")
	}
	return title, nil
}

func (f *fakeTitleFetcher) FetchPlaylistVideoURLs(ctx context.Context, playlistId string) ([]string, error) {
	return f.playlistUrls, nil
}

func newVideoFixture(owner uuid.UUID) (*fakeUow, *entity.Note) {
	note := &entity.Note{
		Id:        uuid.New(),
		SessionId: uuid.New(),
		UserId:    owner,
		CreatedAt: time.Now(),
	}
	return &fakeUow{
		notes:  &fakeNoteRepo{note: note},
		videos: &fakeVideoRepo{},
	}, note
}

func TestCreateSingleVideo(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	fetcher := &fakeTitleFetcher{titles: map[string]string{"abc": "My Video"}}
	svc := NewVideoService(&fakeUowFactory{uow: uow}, fetcher, nil, nil)

	videos, err := svc.CreateSingle(context.Background(), owner, note.Id, "https://www.youtube.com/watch?v=abc")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "My Video", videos[0].Title)
	assert.Equal(t, note.Id, videos[0].NoteId)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", videos[0].YoutubeUrl)
}

func TestCreateSingleVideoNotOwner(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	fetcher := &fakeTitleFetcher{titles: map[string]string{"abc": "My Video"}}
	svc := NewVideoService(&fakeUowFactory{uow: uow}, fetcher, nil, nil)

	_, err := svc.CreateSingle(context.Background(), uuid.New(), note.Id, "https://www.youtube.com/watch?v=abc")
	assert.ErrorIs(t, err, ErrNoteNotOwned)
}

func TestCreateSingleVideoInvalidURL(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	svc := NewVideoService(&fakeUowFactory{uow: uow}, &fakeTitleFetcher{}, nil, nil)

	_, err := svc.CreateSingle(context.Background(), owner, note.Id, "https://www.youtube.com/watch?list=PL1")
	require.Error(t, err)
	assert.Equal(t, "Invalid YouTube URL: Missing 'v' parameter", err.Error())
}

func TestCreateFromPlaylistKeepsOrder(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	fetcher := &fakeTitleFetcher{
		titles: map[string]string{
			"a1": "First",
			"a2": "Second",
			"a3": "Third",
		},
		playlistUrls: []string{
			"https://www.youtube.com/watch?v=a1",
			"https://www.youtube.com/watch?v=a2",
			"https://www.youtube.com/watch?v=a3",
		},
	}
	svc := NewVideoService(&fakeUowFactory{uow: uow}, fetcher, nil, nil)

	videos, err := svc.CreateFromPlaylist(context.Background(), owner, note.Id, "https://www.youtube.com/playlist?list=PL1")
	require.NoError(t, err)
	require.Len(t, videos, 3)

	// Results follow playlist order even though inserts run concurrently
	assert.Equal(t, "First", videos[0].Title)
	assert.Equal(t, "Second", videos[1].Title)
	assert.Equal(t, "Third", videos[2].Title)
}

func TestCreateFromPlaylistFailsOnAnyVideo(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	fetcher := &fakeTitleFetcher{
		titles: map[string]string{"a1": "First"}, // a2 missing
		playlistUrls: []string{
			"https://www.youtube.com/watch?v=a1",
			"https://www.youtube.com/watch?v=a2",
		},
	}
	svc := NewVideoService(&fakeUowFactory{uow: uow}, fetcher, nil, nil)

	_, err := svc.CreateFromPlaylist(context.Background(), owner, note.Id, "https://www.youtube.com/playlist?list=PL1")
	require.Error(t, err)
	assert.Equal(t, "Invalid YouTube video data received", err.Error())
}

func TestCreateFromPlaylistBadPlaylistURL(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)

	svc := NewVideoService(&fakeUowFactory{uow: uow}, &fakeTitleFetcher{}, nil, nil)

	_, err := svc.CreateFromPlaylist(context.Background(), owner, note.Id, "https://www.youtube.com/watch?v=abc")
	require.Error(t, err)
	assert.Equal(t, "Invalid YouTube playlist URL: Missing 'list' parameter", err.Error())
}

func TestGetVideosByNote(t *testing.T) {
	owner := uuid.New()
	uow, note := newVideoFixture(owner)
	uow.videos.created = []*entity.Video{
		{Id: uuid.New(), NoteId: note.Id, YoutubeUrl: "https://www.youtube.com/watch?v=a", Title: "A"},
	}

	svc := NewVideoService(&fakeUowFactory{uow: uow}, &fakeTitleFetcher{}, nil, nil)

	videos, err := svc.GetByNote(context.Background(), owner, note.Id)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "A", videos[0].Title)
}

func TestGetVideosByNoteMissingNote(t *testing.T) {
	uow := &fakeUow{notes: &fakeNoteRepo{note: nil}, videos: &fakeVideoRepo{}}
	svc := NewVideoService(&fakeUowFactory{uow: uow}, &fakeTitleFetcher{}, nil, nil)

	_, err := svc.GetByNote(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNoteNotOwned)
}
