package generator

import "fmt"

// GroupName derives the label for a 0-based group index: "Group" and index 1
// become "Group B". Letters follow ASCII uppercase, so indexes 0..25 are
// supported, far beyond the catalog's maximum of four groups.
func GroupName(prefix string, index int) string {
	return fmt.Sprintf("%s %c", prefix, 'A'+rune(index))
}
