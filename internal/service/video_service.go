package service

import (
	"context"
	"sync"
	"time"

	"video-notetaking-be/internal/dto"
	"video-notetaking-be/internal/entity"
	"video-notetaking-be/internal/repository/specification"
	"video-notetaking-be/internal/repository/unitofwork"
	pktNats "video-notetaking-be/pkg/nats"
	"video-notetaking-be/pkg/youtube"

	"github.com/google/uuid"
)

// VideoTitleFetcher is the slice of the YouTube Data API the service needs.
type VideoTitleFetcher interface {
	GetVideoTitle(ctx context.Context, videoId string) (string, error)
	FetchPlaylistVideoURLs(ctx context.Context, playlistId string) ([]string, error)
}

type IVideoService interface {
	GetByNote(ctx context.Context, userId, noteId uuid.UUID) ([]dto.VideoDTO, error)
	CreateSingle(ctx context.Context, userId, noteId uuid.UUID, videoUrl string) ([]dto.VideoDTO, error)
	CreateFromPlaylist(ctx context.Context, userId, noteId uuid.UUID, playlistUrl string) ([]dto.VideoDTO, error)
}

type videoService struct {
	uowFactory       unitofwork.RepositoryFactory
	youtubeClient    VideoTitleFetcher
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewVideoService(
	uowFactory unitofwork.RepositoryFactory,
	youtubeClient VideoTitleFetcher,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IVideoService {
	return &videoService{
		uowFactory:       uowFactory,
		youtubeClient:    youtubeClient,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// verifyNoteOwner loads the note and checks it belongs to the caller. A
// missing note and a foreign note get the same answer so note IDs cannot be
// probed.
func (s *videoService) verifyNoteOwner(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) error {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil || note.UserId != userId {
		return ErrNoteNotOwned
	}
	return nil
}

func (s *videoService) GetByNote(ctx context.Context, userId, noteId uuid.UUID) ([]dto.VideoDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyNoteOwner(ctx, uow, userId, noteId); err != nil {
		return nil, err
	}

	videos, err := uow.VideoRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.VideoDTO, 0, len(videos))
	for _, video := range videos {
		result = append(result, *toVideoDTO(video))
	}
	return result, nil
}

func (s *videoService) CreateSingle(ctx context.Context, userId, noteId uuid.UUID, videoUrl string) ([]dto.VideoDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyNoteOwner(ctx, uow, userId, noteId); err != nil {
		return nil, err
	}

	video, err := s.createVideo(ctx, uow, noteId, videoUrl)
	if err != nil {
		return nil, err
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityVideoCreate), map[string]interface{}{
		"note_id":  noteId,
		"video_id": video.Id,
		"user_id":  userId,
	})
	publishActivity(ctx, s.publisherService, userId, entity.ActivityVideoCreate, map[string]interface{}{
		"note_id":  noteId,
		"video_id": video.Id,
	})

	return []dto.VideoDTO{*video}, nil
}

func (s *videoService) CreateFromPlaylist(ctx context.Context, userId, noteId uuid.UUID, playlistUrl string) ([]dto.VideoDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyNoteOwner(ctx, uow, userId, noteId); err != nil {
		return nil, err
	}

	playlistId, err := youtube.ExtractPlaylistID(playlistUrl)
	if err != nil {
		return nil, err
	}

	videoUrls, err := s.youtubeClient.FetchPlaylistVideoURLs(ctx, playlistId)
	if err != nil {
		return nil, err
	}

	// Fan out one goroutine per video, fail the whole batch on the first
	// error, keep playlist order by writing into indexed slots.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	results := make([]*dto.VideoDTO, len(videoUrls))

	for i, videoUrl := range videoUrls {
		wg.Add(1)
		go func(i int, videoUrl string) {
			defer wg.Done()
			video, err := s.createVideo(ctx, uow, noteId, videoUrl)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = video
		}(i, videoUrl)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	videos := make([]dto.VideoDTO, 0, len(results))
	for _, video := range results {
		videos = append(videos, *video)
	}

	publishDomainEvent(ctx, s.eventPublisher, string(entity.ActivityVideoCreate), map[string]interface{}{
		"note_id":     noteId,
		"playlist_id": playlistId,
		"count":       len(videos),
		"user_id":     userId,
	})
	publishActivity(ctx, s.publisherService, userId, entity.ActivityVideoCreate, map[string]interface{}{
		"note_id":     noteId,
		"playlist_id": playlistId,
		"count":       len(videos),
	})

	return videos, nil
}

// createVideo resolves the URL to a video ID, fetches the title and inserts
// the row. Shared by the single and playlist paths.
func (s *videoService) createVideo(ctx context.Context, uow unitofwork.UnitOfWork, noteId uuid.UUID, videoUrl string) (*dto.VideoDTO, error) {
	videoId, err := youtube.ExtractVideoID(videoUrl)
	if err != nil {
		return nil, err
	}

	title, err := s.youtubeClient.GetVideoTitle(ctx, videoId)
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		Id:         uuid.New(),
		NoteId:     noteId,
		YoutubeUrl: videoUrl,
		Title:      title,
		CreatedAt:  time.Now(),
	}

	if err := uow.VideoRepository().Create(ctx, video); err != nil {
		return nil, err
	}

	return toVideoDTO(video), nil
}

func toVideoDTO(video *entity.Video) *dto.VideoDTO {
	return &dto.VideoDTO{
		Id:         video.Id,
		NoteId:     video.NoteId,
		YoutubeUrl: video.YoutubeUrl,
		Title:      video.Title,
		CreatedAt:  video.CreatedAt,
	}
}
