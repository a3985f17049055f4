package usecase

import (
	"errors"
	"sort"
	"strings"

	"inss_refin/internal/usecase/interfaces"
)

var ErrUnknownBank = errors.New("unknown partner bank")

// PartnerDirectory resolves a bank slug ("banrisul", "c6", "safra") to its client.
type PartnerDirectory map[string]interfaces.IPartnerBank

func NewPartnerDirectory(banks ...interfaces.IPartnerBank) PartnerDirectory {
	d := make(PartnerDirectory, len(banks))
	for _, b := range banks {
		if b == nil {
			continue
		}
		d[strings.ToLower(b.Name())] = b
	}
	return d
}

func (d PartnerDirectory) Get(bank string) (interfaces.IPartnerBank, error) {
	b, ok := d[strings.ToLower(strings.TrimSpace(bank))]
	if !ok {
		return nil, ErrUnknownBank
	}
	return b, nil
}

// Names returns the registered slugs in stable order.
func (d PartnerDirectory) Names() []string {
	out := make([]string, 0, len(d))
	for name := range d {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
