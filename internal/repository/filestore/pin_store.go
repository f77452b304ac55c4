package filestore

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"regexp"

	"style-match-be/internal/entity"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
)

var safeFileName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

type PinStore struct {
	dir    string
	logger logger.ILogger
}

// NewPinStore keeps one JSON document per board under dataDir/pins.
func NewPinStore(dataDir string, log logger.ILogger) contract.PinRepository {
	return &PinStore{
		dir:    filepath.Join(dataDir, "pins"),
		logger: log,
	}
}

func (s *PinStore) ReplaceBoard(ctx context.Context, boardId string, pins []*entity.Pin) error {
	if pins == nil {
		pins = []*entity.Pin{}
	}
	return writeDocument(s.Location(boardId), pins)
}

func (s *PinStore) FindByBoard(ctx context.Context, boardId string) ([]*entity.Pin, error) {
	var pins []*entity.Pin
	if _, err := readDocument(s.Location(boardId), &pins); err != nil {
		// An unreadable board document behaves like a board that was never imported.
		s.logger.Warn("PIN_STORE", "Ignoring unreadable pin document", map[string]interface{}{
			"board_id": boardId,
			"error":    err.Error(),
		})
		return []*entity.Pin{}, nil
	}

	kept := pins[:0]
	for _, p := range pins {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (s *PinStore) Location(boardId string) string {
	return filepath.Join(s.dir, boardFileName(boardId))
}

func boardFileName(boardId string) string {
	if safeFileName.MatchString(boardId) {
		return boardId + ".json"
	}
	return "b64-" + base64.RawURLEncoding.EncodeToString([]byte(boardId)) + ".json"
}
