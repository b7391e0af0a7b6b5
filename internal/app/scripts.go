package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/rastro/internal/domain"
	"github.com/jsamuelsen/rastro/internal/units"
)

// ForceScript writes the gravitational constant, the force between three
// solar masses and 100 kg at 2.2 au in newtons, and the speed of light in
// km/s. prec is the number of significant digits, -1 for the shortest exact
// representation.
func (s *EvaluatorService) ForceScript(ctx context.Context, w io.Writer, prec int) error {
	g, err := s.constants.Lookup("G")
	if err != nil {
		return fmt.Errorf("looking up G: %w", err)
	}

	f, err := s.GravitationalForce(ctx, DefaultForceInput())
	if err != nil {
		return fmt.Errorf("computing force: %w", err)
	}

	c, err := s.ConvertConstant(ctx, "c", "km/s")
	if err != nil {
		return fmt.Errorf("converting c: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", g, f.Format(prec), c.Format(prec)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	s.logger.DebugContext(ctx, "force script finished", slog.Float64("force_n", f.Value))

	return nil
}

// ListingMode selects how ListingScript treats the CGS pass.
type ListingMode int

const (
	// ListingModeReplicate lists the SI names twice: the CGS names are
	// computed and then discarded, as in the script this command mirrors.
	ListingModeReplicate ListingMode = iota
	// ListingModeCorrected lists the SI names and then the CGS names.
	ListingModeCorrected
)

// String implements fmt.Stringer.
func (m ListingMode) String() string {
	switch m {
	case ListingModeReplicate:
		return "replicate"
	case ListingModeCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("ListingMode(%d)", int(m))
	}
}

// ParseListingMode parses "replicate" or "corrected".
func ParseListingMode(s string) (ListingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replicate":
		return ListingModeReplicate, nil
	case "corrected":
		return ListingModeCorrected, nil
	default:
		return 0, domain.NewValidationErrorWithValue("mode", "must be replicate or corrected", s)
	}
}

// ListingScript writes the public SI unit names and then a second list,
// one name per line. See ListingMode for what the second list holds.
func (s *CatalogService) ListingScript(ctx context.Context, w io.Writer, mode ListingMode) error {
	lists, err := s.ListSystems(ctx, units.SystemSI, units.SystemCGS)
	if err != nil {
		return err
	}

	si, cgs := lists[0], lists[1]

	second := cgs
	if mode == ListingModeReplicate {
		s.logger.DebugContext(ctx, "discarding cgs names", slog.Int("count", len(cgs)))

		second = si
	}

	return writeLines(w, si, second)
}

// WriteNames writes names one per line.
func WriteNames(w io.Writer, names []string) error {
	return writeLines(w, names)
}

func writeLines(w io.Writer, lists ...[]string) error {
	for _, list := range lists {
		for _, name := range list {
			if _, err := io.WriteString(w, name+"\n"); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}

	return nil
}
