package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/adama/first-debit/internal/domain"
)

// GenerateReport renders the result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.Result, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
