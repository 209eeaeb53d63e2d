package docstring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentflare-ai/pydown/internal/derrors"
)

// ValidateEnum checks that the values documented in d are exactly the
// enumeration's members. Every member must be documented and every
// documented value must be a member.
func ValidateEnum(d *Doc, members []string) error {
	actual := make(map[string]bool, len(members))
	for _, m := range members {
		actual[m] = true
	}
	documented := make(map[string]bool, len(d.EnumValues))
	for _, v := range d.EnumValues {
		documented[v.Name] = true
	}

	var undocumented, unknown []string
	for name := range actual {
		if !documented[name] {
			undocumented = append(undocumented, name)
		}
	}
	for name := range documented {
		if !actual[name] {
			unknown = append(unknown, name)
		}
	}
	if len(undocumented) == 0 && len(unknown) == 0 {
		return nil
	}
	sort.Strings(undocumented)
	sort.Strings(unknown)
	return fmt.Errorf("%w: actual [%s], documented [%s] (undocumented: [%s], not members: [%s])",
		derrors.EnumMismatch,
		strings.Join(sortedKeys(actual), ", "),
		strings.Join(sortedKeys(documented), ", "),
		strings.Join(undocumented, ", "),
		strings.Join(unknown, ", "))
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
