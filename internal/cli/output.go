package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

func render(w io.Writer, f outputFormat, v any) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return renderTable(w, v)
}

func renderTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch v := v.(type) {
	case positionsReport:
		fmt.Fprintf(tw, "# %s  JD %.6f  flags %s\n", v.Time.Format("2006-01-02T15:04:05Z07:00"), v.JulianDay, v.Flags)
		fmt.Fprintln(tw, "BODY\tLONGITUDE\tLATITUDE\tDISTANCE\tLON/DAY\tLAT/DAY\tDIST/DAY\t")
		for _, r := range v.Bodies {
			if r.Position == nil {
				fmt.Fprintf(tw, "%s\terror: %s\n", r.Body, r.Error)
				continue
			}
			p := r.Position
			fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.9f\t%.6f\t%.6f\t%.9f\t\n",
				r.Body, p.Longitude, p.Latitude, p.Distance,
				p.LongitudeSpeed, p.LatitudeSpeed, p.DistanceSpeed)
		}
	case []fileRow:
		fmt.Fprintln(tw, "SLOT\tPATH\tSTART\tEND\tDE\tCOVERS\t")
		for _, r := range v {
			fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%d\t%t\t\n",
				r.Slot, r.File.Path, r.File.StartDate, r.File.EndDate, r.File.Ephemeris, r.Covers)
		}
	case versionInfo:
		fmt.Fprintf(tw, "wrapper\t%s\n", v.Wrapper)
		if !v.Native {
			fmt.Fprintln(tw, "libswe\tnot linked")
			break
		}
		fmt.Fprintf(tw, "libswe\t%s\n", v.Library)
		fmt.Fprintf(tw, "library path\t%s\n", v.LibraryPath)
	default:
		return fmt.Errorf("no table layout for %T", v)
	}
	return tw.Flush()
}
