package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// Workflow step names, reported in logs and step errors.
const (
	stepFetchVideo        = "fetch-video"
	stepFetchTranscript   = "fetch-transcript"
	stepGenerateTitle     = "generate-title"
	stepGenerateDesc      = "generate-description"
	stepGenerateThumbnail = "generate-thumbnail"
	stepCleanupThumbnail  = "cleanup-thumbnail"
	stepUploadThumbnail   = "upload-thumbnail"
	stepUpdateVideo       = "update-video"
)

// maxTranscriptLength caps the transcript (in characters) sent to the model.
const maxTranscriptLength = 3000

const transcriptPlaceholder = "{TRANSCRIPT}"

const titlePrompt = "Your task is to generate an SEO-focused title for a YouTube video based on its transcript. Please follow these guidelines:\n" +
	"- Be concise but descriptive, using relevant keywords to improve discoverability.\n" +
	"- Highlight the most compelling or unique aspect of the video content.\n" +
	"- Avoid jargon or overly complex language unless it directly supports searchability.\n" +
	"- Use action-oriented phrasing or clear value propositions where applicable.\n" +
	"- Ensure the title is 3-8 words long and no more than 100 characters.\n" +
	"- ONLY return the title as plain text. Do not add quotes or any additional formatting.\n" +
	"\n" +
	"Transcript: " + transcriptPlaceholder + "\n"

const descriptionPrompt = "Your task is to summarize the transcript of a video. Please follow these guidelines:\n" +
	"- Be brief. Condense the content into a summary that captures the key points and main ideas without losing important details.\n" +
	"- Avoid jargon or overly complex language unless necessary for the context.\n" +
	"- Focus on the most critical information, ignoring filler, repetitive statements, or irrelevant tangents.\n" +
	"- ONLY return the summary, no other text, annotations, or comments.\n" +
	"- Aim for a summary that is 3-5 sentences long and no more than 200 characters.\n" +
	"\n" +
	"Transcript: " + transcriptPlaceholder + "\n"

// workflowService runs the AI workflows. Every step is executed in order;
// the first failing step aborts the run. Steps are not checkpointed: a retry,
// whether a QStash redelivery or a new trigger, starts again at fetch-video
// and repeats the model calls that already succeeded. The final step is a
// plain overwrite, so a repeated run still leaves one generated value on
// the row.
type workflowService struct {
	videoRepository store.VideoRepository
	objectStorage   store.ObjectStorage
	videoProvider   adapter.VideoProvider
	textGenerator   adapter.TextGenerator
	imageGenerator  adapter.ImageGenerator

	logger *logger.Logger
}

func NewWorkflowService(
	videoRepository store.VideoRepository,
	objectStorage store.ObjectStorage,
	videoProvider adapter.VideoProvider,
	textGenerator adapter.TextGenerator,
	imageGenerator adapter.ImageGenerator,
	logger *logger.Logger,
) WorkflowService {
	return &workflowService{
		videoRepository: videoRepository,
		objectStorage:   objectStorage,
		videoProvider:   videoProvider,
		textGenerator:   textGenerator,
		imageGenerator:  imageGenerator,
		logger:          logger,
	}
}

func (w *workflowService) Run(ctx context.Context, req models.WorkflowRequest) error {
	switch req.Kind {
	case models.WorkflowTitle:
		return w.runText(ctx, req, stepGenerateTitle, titlePrompt, func(text string) models.VideoUpdate {
			return models.VideoUpdate{ID: req.VideoID, Title: &text}
		})
	case models.WorkflowDescription:
		return w.runText(ctx, req, stepGenerateDesc, descriptionPrompt, func(text string) models.VideoUpdate {
			return models.VideoUpdate{ID: req.VideoID, Description: &text}
		})
	case models.WorkflowThumbnail:
		return w.runThumbnail(ctx, req)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWorkflow, req.Kind)
	}
}

// runText is the title and description workflow: fetch the video, fetch its
// transcript, ask the model and store the answer.
func (w *workflowService) runText(
	ctx context.Context,
	req models.WorkflowRequest,
	generateStep, prompt string,
	toUpdate func(text string) models.VideoUpdate,
) error {
	var video models.Video
	var transcript, generated string

	return w.steps(ctx, req,
		step{stepFetchVideo, func(ctx context.Context) (err error) {
			video, err = w.videoRepository.FindByIDAndUser(ctx, req.VideoID, req.UserID)
			return err
		}},
		step{stepFetchTranscript, func(ctx context.Context) (err error) {
			transcript, err = w.fetchTranscript(ctx, video)
			return err
		}},
		step{generateStep, func(ctx context.Context) error {
			text, err := w.textGenerator.GenerateText(ctx, strings.ReplaceAll(prompt, transcriptPlaceholder, truncate(transcript, maxTranscriptLength)))
			if err != nil {
				return err
			}
			generated = strings.TrimSpace(utils.StripHTML(text))
			if generated == "" {
				return adapter.ErrEmptyGeneration
			}
			return nil
		}},
		step{stepUpdateVideo, func(ctx context.Context) error {
			_, err := w.videoRepository.Update(ctx, req.UserID, toUpdate(generated))
			return err
		}},
	)
}

func (w *workflowService) fetchTranscript(ctx context.Context, video models.Video) (string, error) {
	if video.MuxPlaybackID == nil || video.MuxTrackID == nil || *video.MuxPlaybackID == "" || *video.MuxTrackID == "" {
		return "", ErrTranscriptNotFound
	}

	transcript, err := w.videoProvider.FetchTranscript(ctx, *video.MuxPlaybackID, *video.MuxTrackID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(transcript) == "" {
		return "", ErrTranscriptNotFound
	}
	return transcript, nil
}

// runThumbnail generates an image for the prompt and swaps it in as the
// video thumbnail.
func (w *workflowService) runThumbnail(ctx context.Context, req models.WorkflowRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("%w: empty thumbnail prompt", ErrInvalidDataProvided)
	}

	var video models.Video
	var imageURL string
	var stored models.StoredFile

	return w.steps(ctx, req,
		step{stepFetchVideo, func(ctx context.Context) (err error) {
			video, err = w.videoRepository.FindByIDAndUser(ctx, req.VideoID, req.UserID)
			return err
		}},
		step{stepGenerateThumbnail, func(ctx context.Context) (err error) {
			imageURL, err = w.imageGenerator.GenerateImage(ctx, req.Prompt)
			return err
		}},
		step{stepCleanupThumbnail, func(ctx context.Context) error {
			if video.ThumbnailKey == nil || *video.ThumbnailKey == "" {
				return nil
			}
			if err := w.objectStorage.Delete(ctx, *video.ThumbnailKey); err != nil {
				return err
			}
			_, err := w.videoRepository.UpdateThumbnail(ctx, req.UserID, req.VideoID, models.VideoThumbnail{})
			return err
		}},
		step{stepUploadThumbnail, func(ctx context.Context) (err error) {
			stored, err = w.objectStorage.UploadFromURL(ctx, imageURL)
			return err
		}},
		step{stepUpdateVideo, func(ctx context.Context) error {
			_, err := w.videoRepository.UpdateThumbnail(ctx, req.UserID, req.VideoID, models.VideoThumbnail{
				URL: ptr(stored.URL),
				Key: ptr(stored.Key),
			})
			return err
		}},
	)
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (w *workflowService) steps(ctx context.Context, req models.WorkflowRequest, steps ...step) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*workflowService.Run").
		Str("kind", string(req.Kind)).
		Str("video_id", req.VideoID).
		Logger()

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			log.Err(err).Str("step", s.name).Msg("workflow step failed")
			return fmt.Errorf("%w %q: %w", ErrWorkflowStep, s.name, err)
		}
		log.Debug().Str("step", s.name).Msg("workflow step done")
	}

	log.Info().Msg("workflow finished")
	return nil
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
