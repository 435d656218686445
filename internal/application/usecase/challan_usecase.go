package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

// ChallanUseCase drives the challan lifecycle: issuance, partial updates,
// disposal and deletion. Every operation is a single read-then-write against
// the repository; failures propagate as-is with no retry or partial apply.
type ChallanUseCase struct {
	repo repository.ChallanRepository
}

// NewChallanUseCase builds the use case.
func NewChallanUseCase(repo repository.ChallanRepository) *ChallanUseCase {
	return &ChallanUseCase{repo: repo}
}

// Create issues a challan owned by userID. Status starts at pending, the issue
// date is the creation time and the disposal date is unset. A duplicate
// challan_number surfaces as domain.ErrDuplicate from the repository. A missing
// amount is rejected here as well so a non-HTTP caller cannot slip past the
// handler's presence check.
func (uc *ChallanUseCase) Create(userID string, in dto.CreateChallanRequest) (*dto.ChallanResponse, error) {
	if in.Amount == nil {
		return nil, domain.ErrInvalidInput
	}
	challan := &entity.Challan{
		ID:            uuid.New().String(),
		ChallanNumber: in.ChallanNumber,
		VehicleNumber: in.VehicleNumber,
		DriverName:    in.DriverName,
		Amount:        *in.Amount,
		Status:        entity.StatusPending,
		ChallanSource: in.ChallanSource,
		Department:    in.Department,
		StateCode:     in.StateCode,
		RTOID:         in.RTOID,
		AreaID:        in.AreaID,
		DistrictID:    in.DistrictID,
		IssueDate:     time.Now(),
		DisposalDate:  nil,
		UserID:        userID,
	}
	if err := uc.repo.Create(challan); err != nil {
		return nil, err
	}
	return toChallanResponse(challan), nil
}

// GetByID fetches a challan; (nil, nil) when it does not exist.
func (uc *ChallanUseCase) GetByID(id string) (*dto.ChallanResponse, error) {
	challan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, nil
	}
	return toChallanResponse(challan), nil
}

// Update applies the fields present in the request; absent fields stay
// untouched. An update carrying status=disposed always stamps the disposal
// date with the transition time, including idempotent re-disposal. Moving the
// status away from disposed never clears a previously set disposal date.
func (uc *ChallanUseCase) Update(id string, in dto.UpdateChallanRequest) (*dto.ChallanResponse, error) {
	challan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, nil
	}
	if in.Status != nil {
		status, ok := entity.ParseChallanStatus(*in.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		challan.Status = status
		if status == entity.StatusDisposed {
			now := time.Now()
			challan.DisposalDate = &now
		}
	}
	if in.Amount != nil {
		challan.Amount = *in.Amount
	}
	if err := uc.repo.Update(challan); err != nil {
		return nil, err
	}
	return toChallanResponse(challan), nil
}

// Delete removes a challan permanently and returns the removed record;
// (nil, nil) when it does not exist. Challans have no dependents, so there is
// nothing to cascade.
func (uc *ChallanUseCase) Delete(id string) (*dto.ChallanResponse, error) {
	challan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if challan == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toChallanResponse(challan), nil
}

// List returns challans in issue order, paginated. The owner filter is applied
// when userID is non-empty; the HTTP boundary always passes the caller's id.
func (uc *ChallanUseCase) List(userID string, limit, offset int) ([]dto.ChallanResponse, error) {
	list, err := uc.repo.List(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChallanResponse, 0, len(list))
	for _, ch := range list {
		items = append(items, *toChallanResponse(ch))
	}
	return items, nil
}

func toChallanResponse(ch *entity.Challan) *dto.ChallanResponse {
	if ch == nil {
		return nil
	}
	return &dto.ChallanResponse{
		ID:            ch.ID,
		ChallanNumber: ch.ChallanNumber,
		VehicleNumber: ch.VehicleNumber,
		DriverName:    ch.DriverName,
		Amount:        ch.Amount,
		Status:        string(ch.Status),
		ChallanSource: ch.ChallanSource,
		Department:    ch.Department,
		StateCode:     ch.StateCode,
		RTOID:         ch.RTOID,
		AreaID:        ch.AreaID,
		DistrictID:    ch.DistrictID,
		IssueDate:     ch.IssueDate,
		DisposalDate:  ch.DisposalDate,
		UserID:        ch.UserID,
	}
}
