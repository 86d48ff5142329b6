package services

import (
	"testing"

	"github.com/projectdesk/dto"
)

func TestCustomerCreateAndList(t *testing.T) {
	customers, _, _ := newServices(t)

	ok := customers.Create(dto.CustomerRegistrationForm{
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "123456789",
	})
	if !ok {
		t.Fatal("expected customer creation to succeed")
	}

	all := customers.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(all))
	}
	got := all[0]
	if got.Name != "John Doe" || got.Email != "john.doe@example.com" || got.Phone != "123456789" {
		t.Errorf("unexpected customer: %+v", got)
	}
	if got.ID == "" {
		t.Error("expected a populated identity")
	}
}

func TestCustomerCreateWithoutOptionalFields(t *testing.T) {
	customers, _, _ := newServices(t)

	if !customers.Create(dto.CustomerRegistrationForm{Name: "Minimal"}) {
		t.Fatal("expected creation with only a name to succeed")
	}

	got := customers.GetAll()[0]
	if got.Email != "" || got.Phone != "" {
		t.Errorf("expected absent optional fields to stay empty, got %+v", got)
	}
}

func TestCustomerCreateRejectsBlankName(t *testing.T) {
	customers, _, _ := newServices(t)

	if customers.Create(dto.CustomerRegistrationForm{Name: "   "}) {
		t.Error("expected creation with a blank name to fail")
	}
	if len(customers.GetAll()) != 0 {
		t.Error("expected no customer to be persisted")
	}
}

func TestCustomerGetAllEmpty(t *testing.T) {
	customers, _, _ := newServices(t)

	all := customers.GetAll()
	if all == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(all) != 0 {
		t.Fatalf("expected no customers, got %d", len(all))
	}
}

func TestCustomerGetByID(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "Ace"})
	id := customers.GetAll()[0].ID

	got, found := customers.GetByID(id)
	if !found || got.Name != "Ace" {
		t.Errorf("expected to find Ace, got %+v (found=%v)", got, found)
	}

	if _, found := customers.GetByID("missing-id"); found {
		t.Error("expected lookup of unknown id to report not found")
	}
}

func TestCustomerUpdate(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "Ace", Email: "ace@example.com", Phone: "123456789"})
	id := customers.GetAll()[0].ID

	ok := customers.Update(id, dto.UpdateCustomerRequest{
		Name:  strPtr("Acme"),
		Email: strPtr("acme@example.com"),
		Phone: strPtr("987654321"),
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}

	got, _ := customers.GetByID(id)
	if got.Name != "Acme" || got.Email != "acme@example.com" || got.Phone != "987654321" {
		t.Errorf("unexpected customer after update: %+v", got)
	}
}

func TestCustomerUpdatePartial(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "Ace", Email: "ace@example.com", Phone: "111"})
	id := customers.GetAll()[0].ID

	if !customers.Update(id, dto.UpdateCustomerRequest{Phone: strPtr("222")}) {
		t.Fatal("expected partial update to succeed")
	}

	got, _ := customers.GetByID(id)
	if got.Name != "Ace" || got.Email != "ace@example.com" {
		t.Errorf("expected untouched fields to keep their values, got %+v", got)
	}
	if got.Phone != "222" {
		t.Errorf("expected phone to change, got %q", got.Phone)
	}
}

func TestCustomerUpdateNoChangesReturnsFalse(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "Ace", Email: "ace@example.com"})
	id := customers.GetAll()[0].ID

	if customers.Update(id, dto.UpdateCustomerRequest{}) {
		t.Error("expected an all-absent update to report false")
	}

	got, _ := customers.GetByID(id)
	if got.Name != "Ace" || got.Email != "ace@example.com" {
		t.Errorf("expected record to be unchanged, got %+v", got)
	}
}

func TestCustomerUpdateNonexistent(t *testing.T) {
	customers, _, _ := newServices(t)

	if customers.Update("no-such-id", dto.UpdateCustomerRequest{Name: strPtr("Fake")}) {
		t.Error("expected update of a nonexistent customer to fail")
	}
}

func TestCustomerUpdateEmailUniqueness(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "First", Email: "first@example.com"})
	customers.Create(dto.CustomerRegistrationForm{Name: "Second", Email: "second@example.com"})

	var secondID string
	for _, c := range customers.GetAll() {
		if c.Name == "Second" {
			secondID = c.ID
		}
	}

	if customers.Update(secondID, dto.UpdateCustomerRequest{Email: strPtr("first@example.com")}) {
		t.Error("expected update to a taken email to be rejected")
	}

	got, _ := customers.GetByID(secondID)
	if got.Email != "second@example.com" {
		t.Errorf("expected email to be unchanged, got %q", got.Email)
	}
}

func TestCustomerDelete(t *testing.T) {
	customers, _, _ := newServices(t)
	customers.Create(dto.CustomerRegistrationForm{Name: "Jane Doe"})
	id := customers.GetAll()[0].ID

	if !customers.Delete(id) {
		t.Fatal("expected delete to succeed")
	}
	if len(customers.GetAll()) != 0 {
		t.Error("expected customer to be gone")
	}
}

func TestCustomerDeleteNonexistent(t *testing.T) {
	customers, _, _ := newServices(t)

	// Unlike project deletion, customer deletion is not idempotent.
	if customers.Delete("no-such-id") {
		t.Error("expected delete of a nonexistent customer to report false")
	}
}
