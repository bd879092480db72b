package doctor

import (
	"context"

	doctorRepo "medicare/database/repository/doctor"
	"medicare/models"
	"medicare/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DoctorService interface {
	Create(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

var validate = validator.New()

func NewDoctorService(repo doctorRepo.DoctorRepository, logger *zap.Logger) *DefaultDoctorService {
	return &DefaultDoctorService{Repo: repo, Logger: logger}
}

func (s *DefaultDoctorService) Create(ctx context.Context, doctor models.Doctor) (*models.InsertResult, error) {
	if err := validate.Struct(doctor); err != nil {
		return nil, utils.WrapError(utils.KindBadRequest, "invalid doctor: "+err.Error(), err)
	}
	if err := s.Repo.Create(ctx, &doctor); err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to add doctor", err)
	}
	s.Logger.Info("doctor added", zap.String("doctorId", doctor.ID.Hex()), zap.String("email", doctor.Email))
	return &models.InsertResult{Acknowledged: true, InsertedID: doctor.ID}, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to fetch doctors", err)
	}
	return doctors, nil
}

// Delete removes the doctor with id. Unknown ids delete nothing and still
// succeed.
func (s *DefaultDoctorService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to delete doctor", err)
	}
	if n > 0 {
		s.Logger.Info("doctor deleted", zap.String("doctorId", id))
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}
