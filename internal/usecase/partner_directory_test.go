package usecase

import (
	"errors"
	"testing"

	mock_interfaces "inss_refin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartnerDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c6 := mock_interfaces.NewMockIPartnerBank(ctrl)
	c6.EXPECT().Name().Return("C6").AnyTimes()
	safra := mock_interfaces.NewMockIPartnerBank(ctrl)
	safra.EXPECT().Name().Return("safra").AnyTimes()

	d := NewPartnerDirectory(safra, nil, c6)

	if got, err := d.Get(" c6 "); err != nil || got != c6 {
		t.Fatalf("expected c6 client, got %v, %v", got, err)
	}
	if _, err := d.Get("itau"); !errors.Is(err, ErrUnknownBank) {
		t.Fatalf("expected ErrUnknownBank, got %v", err)
	}
	names := d.Names()
	if len(names) != 2 || names[0] != "c6" || names[1] != "safra" {
		t.Fatalf("unexpected names: %v", names)
	}
}
