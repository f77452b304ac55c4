package specification

import "gorm.io/gorm"

// ByBoardId filters pins by board
type ByBoardId struct {
	BoardId string
}

func (s ByBoardId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("board_id = ?", s.BoardId)
}

// ByScope filters embedding cache rows by scope
type ByScope struct {
	Scope string
}

func (s ByScope) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scope = ?", s.Scope)
}
