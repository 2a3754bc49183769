package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/libswe/swe-go/pkg/swe"
)

type positionRow struct {
	Body     string        `json:"body" yaml:"body"`
	Name     string        `json:"name,omitempty" yaml:"name,omitempty"`
	Position *swe.Position `json:"position,omitempty" yaml:"position,omitempty"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

type positionsReport struct {
	Time      time.Time     `json:"time" yaml:"time"`
	JulianDay float64       `json:"julian_day" yaml:"julian_day"`
	Flags     string        `json:"flags" yaml:"flags"`
	Bodies    []positionRow `json:"bodies" yaml:"bodies"`
}

func (a *app) positionsCommand() *cobra.Command {
	var (
		at     string
		from   string
		to     string
		skip   []string
		flags  []string
		format string
		exact  bool
	)

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Compute body positions at an instant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := time.Now().UTC()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				t = parsed.UTC()
			}
			first, err := swe.ParseBody(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			last, err := swe.ParseBody(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			skipped, err := parseBodies(skip)
			if err != nil {
				return fmt.Errorf("--skip: %w", err)
			}
			fl, err := parseFlags(flags)
			if err != nil {
				return fmt.Errorf("--flag: %w", err)
			}
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			report := computePositions(a.eph, t, exact, first, last, skipped, fl)
			return render(cmd.OutOrStdout(), f, report)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant in RFC 3339 (default now)")
	cmd.Flags().StringVar(&from, "from", swe.Sun.String(), "first body")
	cmd.Flags().StringVar(&to, "to", swe.Chiron.String(), "last body, inclusive")
	cmd.Flags().StringSliceVar(&skip, "skip", []string{swe.Earth.String()}, "bodies to leave out")
	cmd.Flags().StringSliceVar(&flags, "flag", []string{"Speed"}, "calculation flags")
	cmd.Flags().StringVarP(&format, "format", "o", string(formatTable), "output format: table, json or yaml")
	cmd.Flags().BoolVar(&exact, "exact", false, "keep minutes and seconds in the day count")

	return cmd
}

// computePositions runs one calculation per body. A failed body is reported
// in its row and does not stop the others.
func computePositions(eph ephemeris, t time.Time, exact bool, from, to swe.Body, skip []swe.Body, flags []swe.Flag) positionsReport {
	jd := eph.JulDay(t)
	if exact {
		jd = eph.JulDayExact(t)
	}
	report := positionsReport{
		Time:      t,
		JulianDay: jd,
		Flags:     swe.Compose(flags...).String(),
	}

	for body := range swe.BodyRange(from, to, skip...) {
		row := positionRow{Body: body.String()}
		pos, err := eph.CalcUT(jd, body, flags...)
		if err != nil {
			var cerr *swe.CalcError
			if errors.As(err, &cerr) {
				row.Error = cerr.Message
			} else {
				row.Error = err.Error()
			}
			report.Bodies = append(report.Bodies, row)
			continue
		}
		row.Position = &pos
		if name, err := eph.PlanetName(body); err == nil {
			row.Name = name
		}
		report.Bodies = append(report.Bodies, row)
	}
	return report
}
