package usecases

import "github.com/folio-hq/folio/internal/domain/entitlement"

type GetPlansUseCase struct {
	plans *entitlement.PlanTable
}

func NewGetPlansUseCase(plans *entitlement.PlanTable) *GetPlansUseCase {
	return &GetPlansUseCase{plans: plans}
}

func (uc *GetPlansUseCase) Execute() []entitlement.Offering {
	return uc.plans.Catalogue()
}
