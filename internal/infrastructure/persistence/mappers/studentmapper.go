package mappers

import (
	"gympoint/internal/domain/student"
	"gympoint/internal/infrastructure/persistence/models"
)

// StudentMapper converts between student models and domain entities
type StudentMapper interface {
	ToEntity(model *models.StudentModel) (*student.Student, error)
}

type studentMapper struct{}

func NewStudentMapper() StudentMapper {
	return &studentMapper{}
}

func (m *studentMapper) ToEntity(model *models.StudentModel) (*student.Student, error) {
	if model == nil {
		return nil, nil
	}
	return student.ReconstructStudent(model.ID, model.Name, model.Email, model.CreatedAt, model.UpdatedAt)
}
