package usecase

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
)

func TestValidateVendor(t *testing.T) {
	uc := &VendorUseCase{}

	valid := NewCreateVendorReq("VEND001", "Fresh Farms Ltd", "contact@freshfarms.com")
	if err := uc.validateVendor(valid); err != nil {
		t.Fatalf("validateVendor(valid) error = %v", err)
	}

	noID := NewCreateVendorReq("   ", "Fresh Farms Ltd", "contact@freshfarms.com")
	if err := uc.validateVendor(noID); !errors.Is(err, e.ErrVendorIDRequired) {
		t.Fatalf("validateVendor(no id) error = %v, want ErrVendorIDRequired", err)
	}

	noName := NewCreateVendorReq("VEND001", "", "contact@freshfarms.com")
	if err := uc.validateVendor(noName); !errors.Is(err, e.ErrVendorNameRequired) {
		t.Fatalf("validateVendor(no name) error = %v, want ErrVendorNameRequired", err)
	}
}

func TestValidateVendorEmailFormat(t *testing.T) {
	uc := &VendorUseCase{}

	valid := []string{
		"contact@freshfarms.com",
		"sales+catalog@fresh-farms.co.uk",
		"a.b_c%d@sub.example.io",
	}
	for _, email := range valid {
		req := NewCreateVendorReq("VEND001", "Fresh Farms Ltd", email)
		if err := uc.validateVendor(req); err != nil {
			t.Fatalf("validateVendor(%q) error = %v", email, err)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@freshfarms.com",
		"contact@",
		"contact@freshfarms",
		"contact@freshfarms.c",
		"contact @freshfarms.com",
	}
	for _, email := range invalid {
		req := NewCreateVendorReq("VEND001", "Fresh Farms Ltd", email)
		if err := uc.validateVendor(req); !errors.Is(err, e.ErrInvalidEmail) {
			t.Fatalf("validateVendor(%q) error = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestNewVendorFromReq(t *testing.T) {
	req := &CreateVendorReq{
		VendorID:     "VEND001",
		Name:         "Fresh Farms Ltd",
		Email:        "contact@freshfarms.com",
		BusinessName: "Fresh Farms Limited",
		TaxID:        "TAX-123",
		Address:      "1 Market St",
		City:         "Springfield",
		State:        "IL",
		Country:      "US",
		PostalCode:   "62701",
	}

	vendor := NewVendorFromReq(req)

	if vendor.ID != "VEND001" || vendor.Name != "Fresh Farms Ltd" || vendor.Email != "contact@freshfarms.com" {
		t.Fatalf("NewVendorFromReq identity = (%q, %q, %q)", vendor.ID, vendor.Name, vendor.Email)
	}
	if vendor.BusinessName != req.BusinessName || vendor.TaxID != req.TaxID {
		t.Fatalf("NewVendorFromReq business fields = (%q, %q)", vendor.BusinessName, vendor.TaxID)
	}
	if vendor.City != req.City || vendor.Country != req.Country || vendor.PostalCode != req.PostalCode {
		t.Fatalf("NewVendorFromReq address fields = (%q, %q, %q)", vendor.City, vendor.Country, vendor.PostalCode)
	}
	if vendor.Status != domain.VendorPendingApproval {
		t.Fatalf("NewVendorFromReq status = %q, want %q", vendor.Status, domain.VendorPendingApproval)
	}
}
