package mapper

import (
	"encoding/json"

	"studybuddy-be/internal/entity"
	"studybuddy-be/internal/model"

	"gorm.io/datatypes"
)

type StudyMapper struct{}

func NewStudyMapper() *StudyMapper {
	return &StudyMapper{}
}

func (m *StudyMapper) StudySessionToEntity(s *model.StudySession) *entity.StudySession {
	if s == nil {
		return nil
	}

	return &entity.StudySession{
		Id:        s.Id,
		Type:      s.Type,
		Title:     s.Title,
		Result:    json.RawMessage(s.Result),
		CreatedAt: s.CreatedAt,
	}
}

func (m *StudyMapper) StudySessionToModel(s *entity.StudySession) *model.StudySession {
	if s == nil {
		return nil
	}

	return &model.StudySession{
		Id:        s.Id,
		Type:      s.Type,
		Title:     s.Title,
		Result:    datatypes.JSON(s.Result),
		CreatedAt: s.CreatedAt,
	}
}
