// ABOUTME: Tests for model helpers
// ABOUTME: Covers derived stock status and the system sender check
package models

import "testing"

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      string
	}{
		{"zero quantity is out of stock", 0, 10, StockOutOfStock},
		{"zero quantity with zero threshold", 0, 0, StockOutOfStock},
		{"at threshold is low stock", 10, 10, StockLowStock},
		{"below threshold is low stock", 3, 10, StockLowStock},
		{"one above threshold is in stock", 11, 10, StockInStock},
		{"well above threshold is in stock", 500, 10, StockInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StockStatusFor(tt.quantity, tt.threshold)
			if got != tt.want {
				t.Errorf("StockStatusFor(%d, %d) = %s, want %s", tt.quantity, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestMessageIsSystem(t *testing.T) {
	system := Message{SenderID: SystemSender}
	if !system.IsSystem() {
		t.Error("Expected system message to report IsSystem")
	}

	human := Message{SenderID: "user-1"}
	if human.IsSystem() {
		t.Error("Expected user message to not report IsSystem")
	}
}
