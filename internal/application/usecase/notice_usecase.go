package usecase

import (
	"context"

	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

// ChallanPDFGenerator renders the printable notice for a challan.
// Implemented by the maroto adapter in infrastructure/pdf.
type ChallanPDFGenerator interface {
	GenerateNoticePDF(ctx context.Context, challan *entity.Challan, issuer *entity.User) ([]byte, error)
}

// NoticeUseCase produces the printable violation notice for a challan.
type NoticeUseCase struct {
	challanRepo repository.ChallanRepository
	userRepo    repository.UserRepository
	generator   ChallanPDFGenerator
}

// NewNoticeUseCase builds the use case.
func NewNoticeUseCase(challanRepo repository.ChallanRepository, userRepo repository.UserRepository, generator ChallanPDFGenerator) *NoticeUseCase {
	return &NoticeUseCase{challanRepo: challanRepo, userRepo: userRepo, generator: generator}
}

// GeneratePDF renders the notice for a challan id; (nil, nil) when the challan
// does not exist. The issuing user may have been looked up for letterhead
// details; a missing issuer does not block the notice.
func (uc *NoticeUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	challan, err := uc.challanRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, nil
	}
	issuer, err := uc.userRepo.GetByID(challan.UserID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateNoticePDF(ctx, challan, issuer)
}
