package health

import (
	"context"
	"testing"
)

func TestStatusWithoutDatabase(t *testing.T) {
	svc := NewService(nil)

	payload := svc.Status(context.Background())
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected ok without database, got %+v", payload)
	}
	if payload["storage"] != "memory" {
		t.Fatalf("expected memory storage, got %v", payload["storage"])
	}
}
