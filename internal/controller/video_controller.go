package controller

import (
	"errors"

	"video-notetaking-be/internal/pkg/serverutils"
	"video-notetaking-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVideoController interface {
	RegisterRoutes(r fiber.Router)
	GetVideosByNote(ctx *fiber.Ctx) error
	CreateSingleVideo(ctx *fiber.Ctx) error
	CreateMultipleVideoFromPlaylist(ctx *fiber.Ctx) error
}

type videoController struct {
	videoService service.IVideoService
}

func NewVideoController(videoService service.IVideoService) IVideoController {
	return &videoController{
		videoService: videoService,
	}
}

func (c *videoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/videos")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/getVideosByNote", c.GetVideosByNote)
	h.Post("/createSingleVideo", c.CreateSingleVideo)
	h.Post("/createMultipleVideoFromPlaylist", c.CreateMultipleVideoFromPlaylist)
}

func (c *videoController) GetVideosByNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteIdStr := ctx.Query("note_id")
	if noteIdStr == "" {
		return serverutils.BadRequest("Missing note_id")
	}
	noteId, err := uuid.Parse(noteIdStr)
	if err != nil {
		return serverutils.BadRequest("Missing note_id")
	}

	res, err := c.videoService.GetByNote(ctx.Context(), userId, noteId)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{"videos": res})
}

// CreateSingleVideo takes its arguments from the query string, matching the
// clients that already call it that way.
func (c *videoController) CreateSingleVideo(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return serverutils.Forbidden("You do not own this note")
	}
	videoUrl := ctx.Query("videoUrl")

	res, err := c.videoService.CreateSingle(ctx.Context(), userId, noteId, videoUrl)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{"videos": res})
}

func (c *videoController) CreateMultipleVideoFromPlaylist(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Query("noteId"))
	if err != nil {
		return serverutils.Forbidden("You do not own this note")
	}

	playlistUrl := ctx.Query("playlistUrl")
	if playlistUrl == "" {
		return serverutils.BadRequest("Playlist URL is required")
	}

	res, err := c.videoService.CreateFromPlaylist(ctx.Context(), userId, noteId, playlistUrl)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotOwned) {
			return serverutils.Forbidden(err.Error())
		}
		return err
	}

	return ctx.JSON(fiber.Map{
		"videos":  res,
		"message": "Successfully created videos from playlist",
	})
}
