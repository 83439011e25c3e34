package domain

import (
	"testing"
	"time"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range OrderStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	invalid := []OrderStatus{"", "pending", "DELIVERED", "UNKNOWN"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestInquiryStatusValid(t *testing.T) {
	for _, s := range InquiryStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	invalid := []InquiryStatus{"", "new", "ARCHIVED"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestLifecycleTrashed(t *testing.T) {
	var l Lifecycle
	if l.Trashed() {
		t.Error("zero Lifecycle should be active")
	}

	now := time.Now()
	l.DeletedAt = &now
	if !l.Trashed() {
		t.Error("Lifecycle with DeletedAt should be trashed")
	}
}
