package response

import "inss_refin/internal/domain/entities"

type BenefitResponse struct {
	entities.Benefit
	ContractCount    int     `json:"contract_count"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

type BenefitLookupResponse struct {
	Beneficiary entities.Beneficiary `json:"beneficiary"`
	Benefits    []BenefitResponse    `json:"benefits"`
}

func FromBenefitLookup(l entities.BenefitLookup) BenefitLookupResponse {
	out := BenefitLookupResponse{Beneficiary: l.Beneficiary, Benefits: make([]BenefitResponse, 0, len(l.Benefits))}
	for _, b := range l.Benefits {
		total := 0.0
		for _, c := range b.Contracts {
			total += c.OutstandingBalance
		}
		out.Benefits = append(out.Benefits, BenefitResponse{Benefit: b, ContractCount: len(b.Contracts), TotalOutstanding: total})
	}
	return out
}
