package output

import (
	"bytes"
	"fmt"

	"github.com/adama/first-debit/internal/domain"
)

// FormatPolicyMemo renders the per-insurer cheat sheet from the policy table.
func FormatPolicyMemo(table *domain.PolicyTable) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "Comprendre en un clin d’œil")
	for _, insurer := range domain.Insurers() {
		common, ok := table.Common(insurer)
		if !ok {
			continue
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (%s)\n", common.Label, insurer)
		for _, item := range common.Memo {
			fmt.Fprintf(&buf, "  - %s\n", item)
		}
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "L’échéancier officiel est toujours envoyé par la compagnie par e-mail avant la prise d’effet.")
	return buf.Bytes()
}
