package pipeline

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

// validatePipeline valida o snapshot consolidado e devolve a lista de problemas
func validatePipeline(p *domain.Pipeline) []string {
	problems := make([]string, 0)

	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title é obrigatório")
	}
	if strings.TrimSpace(p.ClientName) == "" {
		problems = append(problems, "client_name é obrigatório")
	}
	if p.Status == "" {
		problems = append(problems, "status é obrigatório")
	}
	if p.StartingDate == nil {
		problems = append(problems, "starting_date é obrigatório")
	}
	if p.StartingDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartingDate) {
		problems = append(problems, "end_date deve ser igual ou posterior a starting_date")
	}
	if p.RevenueShare != nil && (*p.RevenueShare < 0 || *p.RevenueShare > 100) {
		problems = append(problems, "revenue_share deve estar entre 0 e 100")
	}
	if p.Imp != nil && *p.Imp < 0 {
		problems = append(problems, "imp não pode ser negativo")
	}
	if p.ECPM != nil && *p.ECPM < 0 {
		problems = append(problems, "ecpm não pode ser negativo")
	}
	if p.MaxGross != nil && *p.MaxGross < 0 {
		problems = append(problems, "max_gross não pode ser negativo")
	}
	if (p.FiscalYear == nil) != (p.FiscalQuarter == nil) {
		problems = append(problems, "fiscal_year e fiscal_quarter devem ser informados juntos")
	}
	if p.FiscalQuarter != nil && (*p.FiscalQuarter < 1 || *p.FiscalQuarter > 4) {
		problems = append(problems, "fiscal_quarter deve estar entre 1 e 4")
	}
	if p.FiscalYear != nil && (*p.FiscalYear < 2000 || *p.FiscalYear > 2100) {
		problems = append(problems, "fiscal_year inválido")
	}

	return problems
}

func newPipelineFromRequest(req *domain.CreatePipelineRequest) (*domain.Pipeline, error) {
	p := &domain.Pipeline{
		Title:         strings.TrimSpace(req.Title),
		ClientName:    strings.TrimSpace(req.ClientName),
		OwnerID:       req.OwnerID,
		Status:        domain.PipelineStatus(req.Status).Normalize(),
		Imp:           req.Imp,
		ECPM:          req.ECPM,
		MaxGross:      req.MaxGross,
		RevenueShare:  req.RevenueShare,
		FiscalYear:    req.FiscalYear,
		FiscalQuarter: req.FiscalQuarter,
		NextAction:    req.NextAction,
		ActionMemo:    req.ActionMemo,
		Memo:          req.Memo,
	}

	var err error
	if p.StartingDate, err = utils.ParseDate(req.StartingDate); err != nil {
		return nil, err
	}
	if p.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		return nil, err
	}
	if p.NextActionDate, err = parseOptionalDate(req.NextActionDate); err != nil {
		return nil, err
	}

	return p, nil
}

// applyPatch copia para p apenas os campos presentes no patch
func applyPatch(p *domain.Pipeline, req *domain.UpdatePipelineRequest) error {
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.ClientName != nil {
		p.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.OwnerID != nil {
		p.OwnerID = req.OwnerID
	}
	if req.Status != nil {
		p.Status = domain.PipelineStatus(*req.Status).Normalize()
	}
	if req.Imp != nil {
		p.Imp = req.Imp
	}
	if req.ECPM != nil {
		p.ECPM = req.ECPM
	}
	if req.MaxGross != nil {
		p.MaxGross = req.MaxGross
	}
	if req.RevenueShare != nil {
		p.RevenueShare = req.RevenueShare
	}
	if req.FiscalYear != nil {
		p.FiscalYear = req.FiscalYear
	}
	if req.FiscalQuarter != nil {
		p.FiscalQuarter = req.FiscalQuarter
	}
	if req.NextAction != nil {
		p.NextAction = req.NextAction
	}
	if req.ActionMemo != nil {
		p.ActionMemo = req.ActionMemo
	}
	if req.Memo != nil {
		p.Memo = req.Memo
	}

	var err error
	if req.StartingDate != nil {
		if p.StartingDate, err = utils.ParseDate(*req.StartingDate); err != nil {
			return err
		}
	}
	if req.EndDate != nil {
		if p.EndDate, err = utils.ParseDate(*req.EndDate); err != nil {
			return err
		}
	}
	if req.NextActionDate != nil {
		if p.NextActionDate, err = utils.ParseDate(*req.NextActionDate); err != nil {
			return err
		}
	}

	// imp/ecpm novos sem max_gross explícito: max_gross volta a ser derivado
	if (req.Imp != nil || req.ECPM != nil) && req.MaxGross == nil && p.Imp != nil && p.ECPM != nil {
		p.MaxGross = nil
	}

	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	return utils.ParseDate(*value)
}
