package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"style-match-be/internal/dto"
	"style-match-be/internal/entity"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
	"style-match-be/pkg/events"
	"style-match-be/pkg/pinterest"
	"style-match-be/pkg/pintext"
)

const (
	DefaultImportLimit   = 100
	MaxImportLimit       = 200
	DefaultBoardPageSize = 25
)

// PinterestClient is the part of the Pinterest API the board service reads.
type PinterestClient interface {
	ListBoards(ctx context.Context, accessToken string, pageSize int, bookmark string) (*pinterest.BoardPage, error)
	ListBoardPins(ctx context.Context, accessToken, boardId string, pageSize int, bookmark string) (*pinterest.PinPage, error)
}

type ImportResult struct {
	Pins           []*entity.Pin
	UsableCount    int
	LowSignalCount int
	Location       string
}

type IBoardService interface {
	ListBoards(ctx context.Context, pageSize int, bookmark string) (*dto.ListBoardsResponse, error)
	ImportBoard(ctx context.Context, boardId string, limit int) (*ImportResult, error)
}

type boardService struct {
	client      PinterestClient
	credentials contract.CredentialRepository
	pins        contract.PinRepository
	publisher   IPublisherService
	metrics     *observability.Collector
	logger      logger.ILogger
}

func NewBoardService(
	client PinterestClient,
	credentials contract.CredentialRepository,
	pins contract.PinRepository,
	publisher IPublisherService,
	metrics *observability.Collector,
	log logger.ILogger,
) IBoardService {
	return &boardService{
		client:      client,
		credentials: credentials,
		pins:        pins,
		publisher:   publisher,
		metrics:     metrics,
		logger:      log,
	}
}

// ResolveImportLimit turns a client supplied limit into 1..200, 0 meaning 100.
func ResolveImportLimit(raw float64) int {
	if raw == 0 || math.IsNaN(raw) {
		return DefaultImportLimit
	}
	return clampFloat(raw, 1, MaxImportLimit)
}

// clampFloat floors raw into lo..hi. Bounds are checked before the int
// conversion, which is undefined outside the int range.
func clampFloat(raw float64, lo, hi int) int {
	if raw <= float64(lo) {
		return lo
	}
	if raw >= float64(hi) {
		return hi
	}
	return int(math.Floor(raw))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *boardService) accessToken() (string, error) {
	cred, ok := s.credentials.Active()
	if !ok || cred.AccessToken == "" {
		return "", apperror.Unauthorized("Pinterest is not connected yet.", "Complete OAuth first at /auth/pinterest/start")
	}
	return cred.AccessToken, nil
}

func (s *boardService) ListBoards(ctx context.Context, pageSize int, bookmark string) (*dto.ListBoardsResponse, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = DefaultBoardPageSize
	}

	page, err := s.client.ListBoards(ctx, token, pageSize, bookmark)
	if err != nil {
		return nil, upstreamError("Failed to fetch boards from Pinterest.", err)
	}

	boards := make([]dto.BoardResponse, 0, len(page.Items))
	for _, b := range page.Items {
		privacy := b.Privacy
		if privacy == "" {
			privacy = "PUBLIC"
		}
		pinCount := 0
		if b.PinCount != nil {
			pinCount = *b.PinCount
		}
		boards = append(boards, dto.BoardResponse{
			Id:          b.Id,
			Name:        b.Name,
			Description: b.Description,
			Privacy:     privacy,
			PinCount:    pinCount,
		})
	}

	res := &dto.ListBoardsResponse{Boards: boards, PageSize: pageSize}
	if page.Bookmark != "" {
		next := page.Bookmark
		res.Bookmark = &next
	}
	return res, nil
}

func (s *boardService) ImportBoard(ctx context.Context, boardId string, limit int) (*ImportResult, error) {
	if boardId == "" {
		return nil, apperror.Validation("boardId is required.")
	}
	if limit <= 0 {
		limit = DefaultImportLimit
	}
	limit = clamp(limit, 1, MaxImportLimit)

	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	raw, err := s.fetchPins(ctx, token, boardId, limit)
	if err != nil {
		return nil, upstreamError("Failed to fetch pins for selected board.", err)
	}

	result := &ImportResult{Pins: make([]*entity.Pin, 0, len(raw))}
	for _, p := range raw {
		pin := normalizePin(p, boardId)
		if pin.UsableForEmbedding {
			result.UsableCount++
		}
		result.Pins = append(result.Pins, pin)
	}
	result.LowSignalCount = len(result.Pins) - result.UsableCount

	if err := s.pins.ReplaceBoard(ctx, boardId, result.Pins); err != nil {
		return nil, fmt.Errorf("failed to store pins of board %s: %w", boardId, err)
	}
	result.Location = s.pins.Location(boardId)

	if s.metrics != nil {
		s.metrics.PinsImported.WithLabelValues(string(pintext.TextQualityUsable)).Add(float64(result.UsableCount))
		s.metrics.PinsImported.WithLabelValues(string(pintext.TextQualityLowSignal)).Add(float64(result.LowSignalCount))
	}

	s.logger.Info("BOARD", "Board imported", map[string]interface{}{
		"boardId":   boardId,
		"imported":  len(result.Pins),
		"usable":    result.UsableCount,
		"lowSignal": result.LowSignalCount,
	})

	evt := events.BaseEvent{
		Type: events.BoardImported,
		Data: map[string]interface{}{
			"boardId":       boardId,
			"importedCount": len(result.Pins),
			"usableCount":   result.UsableCount,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("BOARD", "Failed to publish event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
	}

	return result, nil
}

// fetchPins follows the bookmark cursor until limit pins, an empty page or
// the last page.
func (s *boardService) fetchPins(ctx context.Context, token, boardId string, limit int) ([]pinterest.Pin, error) {
	pins := make([]pinterest.Pin, 0, limit)
	bookmark := ""

	for len(pins) < limit {
		pageSize := limit - len(pins)
		if pageSize > pinterest.MaxPageSize {
			pageSize = pinterest.MaxPageSize
		}

		page, err := s.client.ListBoardPins(ctx, token, boardId, pageSize, bookmark)
		if err != nil {
			return nil, err
		}

		pins = append(pins, page.Items...)
		bookmark = page.Bookmark
		if bookmark == "" || len(page.Items) == 0 {
			break
		}
	}

	if len(pins) > limit {
		pins = pins[:limit]
	}
	return pins, nil
}

func normalizePin(p pinterest.Pin, boardId string) *entity.Pin {
	title := pintext.Clean(firstNonEmpty(p.Title, p.Note))
	altText := pintext.Clean(p.AltText)
	link := pintext.Clean(p.Link)
	description := pintext.Clean(firstNonEmpty(p.Description, altText, link))

	quality := pintext.Classify(title, description)

	return &entity.Pin{
		PinId:              p.Id,
		BoardId:            boardId,
		Title:              title,
		Description:        description,
		AltText:            altText,
		Link:               link,
		ImageUrl:           pinterest.ImageUrl(p),
		EmbeddingText:      quality.EmbeddingText,
		UsableForEmbedding: quality.UsableForEmbedding,
		TextQuality:        string(quality.TextQuality),
		Metadata: entity.PinMetadata{
			CreatedAt:      p.CreatedAt,
			DominantColor:  p.DominantColor,
			MediaType:      p.MediaType,
			BoardSectionId: p.BoardSectionId,
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// upstreamError keeps Pinterest's status and body; other failures are 500s.
func upstreamError(message string, err error) error {
	var upstream *pinterest.UpstreamError
	if errors.As(err, &upstream) {
		return apperror.Upstream(upstream.StatusCode, message, upstream.Details, err)
	}
	return apperror.Internal(message, err)
}
