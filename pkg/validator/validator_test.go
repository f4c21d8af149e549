package validator

import (
	"strings"
	"testing"

	"provider-directory/internal/delivery/dto"
)

func validLicenseRequest() dto.CreateLicenseRequest {
	return dto.CreateLicenseRequest{
		DoctorID:      1,
		LicenseNumber: "IL-000001-ABC",
		LicenseType:   "Medical License",
		State:         "IL",
		IssueDate:     "2020-01-15",
		ExpiryDate:    "2030-01-15",
		Status:        "Active",
	}
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	cv := NewValidator()
	req := validLicenseRequest()

	if err := cv.Validate(req); err != nil {
		t.Fatalf("expected valid request to pass, got: %v", err)
	}
}

func TestValidate_RejectsUnknownStatus(t *testing.T) {
	cv := NewValidator()
	req := validLicenseRequest()
	req.Status = "Pending"

	err := cv.Validate(req)
	if err == nil {
		t.Fatal("expected an unknown status to fail validation")
	}

	msgs := cv.FormatValidationErrors(err)
	msg, ok := msgs["Status"]
	if !ok {
		t.Fatalf("expected a Status message, got: %v", msgs)
	}
	if !strings.Contains(msg, "must be one of") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestValidate_RejectsMalformedDate(t *testing.T) {
	cv := NewValidator()
	req := validLicenseRequest()
	req.IssueDate = "15/01/2020"

	err := cv.Validate(req)
	if err == nil {
		t.Fatal("expected a malformed date to fail validation")
	}

	msgs := cv.FormatValidationErrors(err)
	if !strings.Contains(msgs["IssueDate"], "YYYY-MM-DD") {
		t.Errorf("unexpected message %q", msgs["IssueDate"])
	}
}

func TestValidate_RejectsMissingRequiredFields(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(dto.CreateLicenseRequest{})
	if err == nil {
		t.Fatal("expected an empty request to fail validation")
	}

	msgs := cv.FormatValidationErrors(err)
	for _, field := range []string{"DoctorID", "LicenseNumber", "LicenseType", "State", "IssueDate", "ExpiryDate", "Status"} {
		if _, ok := msgs[field]; !ok {
			t.Errorf("expected a message for %s, got: %v", field, msgs)
		}
	}
}

func TestValidate_RejectsBadStateLength(t *testing.T) {
	cv := NewValidator()
	req := validLicenseRequest()
	req.State = "Illinois"

	err := cv.Validate(req)
	if err == nil {
		t.Fatal("expected a long state code to fail validation")
	}

	msgs := cv.FormatValidationErrors(err)
	if !strings.Contains(msgs["State"], "exactly 2") {
		t.Errorf("unexpected message %q", msgs["State"])
	}
}

func TestValidate_AllowsEmptyOptionalUpdateFields(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(dto.UpdateLicenseRequest{}); err != nil {
		t.Fatalf("expected an empty update request to pass, got: %v", err)
	}

	req := dto.UpdateLicenseRequest{Status: "Revoked"}
	if err := cv.Validate(req); err != nil {
		t.Fatalf("expected a partial update to pass, got: %v", err)
	}
}
