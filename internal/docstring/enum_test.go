package docstring

import (
	"errors"
	"strings"
	"testing"

	"github.com/agentflare-ai/pydown/internal/derrors"
)

func docWithValues(names ...string) *Doc {
	d := &Doc{}
	for _, n := range names {
		d.EnumValues = append(d.EnumValues, EnumValue{Name: n, Description: n + " value"})
	}
	return d
}

func TestValidateEnum(t *testing.T) {
	for _, test := range []struct {
		name       string
		actual     []string
		documented []string
		wantErr    bool
	}{
		{"exact match", []string{"A", "B", "C"}, []string{"A", "B", "C"}, false},
		{"any order", []string{"A", "B", "C"}, []string{"C", "A", "B"}, false},
		{"missing documentation", []string{"A", "B", "C"}, []string{"A", "B"}, true},
		{"extra documentation", []string{"A", "B"}, []string{"A", "B", "C"}, true},
		{"disjoint", []string{"A"}, []string{"B"}, true},
		{"both empty", nil, nil, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateEnum(docWithValues(test.documented...), test.actual)
			if (err != nil) != test.wantErr {
				t.Fatalf("ValidateEnum(%v, %v) = %v, wantErr %t", test.documented, test.actual, err, test.wantErr)
			}
			if err != nil && !errors.Is(err, derrors.EnumMismatch) {
				t.Errorf("errors.Is(%v, derrors.EnumMismatch) = false", err)
			}
		})
	}
}

func TestValidateEnumReportsBothSets(t *testing.T) {
	err := ValidateEnum(docWithValues("RED", "GREEN"), []string{"RED", "GREEN", "BLUE"})
	if err == nil {
		t.Fatal("ValidateEnum succeeded, want error")
	}
	for _, want := range []string{
		"actual [BLUE, GREEN, RED]",
		"documented [GREEN, RED]",
		"undocumented: [BLUE]",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
