package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// FormatAll selects every registered formatter; it only applies to file output.
const FormatAll = "all"

var (
	// ErrUnsupportedFormat is returned when no formatter matches the requested name.
	ErrUnsupportedFormat = errors.New("unsupported report format")
	// ErrFileOnlyFormat is returned when FormatAll is rendered to a single stream.
	ErrFileOnlyFormat = errors.New(`format "all" writes one file per formatter and needs an output directory`)
)

// IsFileOnlyFormat reports whether format can only be written with GenerateReport.
func IsFileOnlyFormat(format string) bool {
	return NormalizeFormatName(format) == FormatAll
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes the result to a timestamped file in dir and returns its path.
// The special format "all" writes every registered formatter.
func GenerateReport(results *domain.SimulationResult, format, dir string) ([]string, error) {
	if IsFileOnlyFormat(format) {
		files := make([]string, 0, len(builtInFormatters))
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, results, dir)
			if err != nil {
				return files, fmt.Errorf("%s: %w", f.Name(), err)
			}
			files = append(files, name)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render formats the result and writes it to w.
func Render(w io.Writer, format string, results *domain.SimulationResult) error {
	if IsFileOnlyFormat(format) {
		return ErrFileOnlyFormat
	}
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
