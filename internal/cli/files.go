package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/libswe/swe-go/pkg/swe"
)

// fileSlots are the CurrentFileData slots the tool reports on.
var fileSlots = []int{0, 1, 2, 3}

type fileRow struct {
	Slot   int          `json:"slot" yaml:"slot"`
	Covers bool         `json:"covers" yaml:"covers"`
	File   swe.FileData `json:"file" yaml:"file"`
}

func (a *app) filesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the ephemeris files libswe has open",
		Long: "files computes the Sun and Moon at the current instant so libswe " +
			"opens its planet and moon files, then lists every loaded slot.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := swe.RequireNative(); err != nil {
				return err
			}
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			rows, err := loadedFiles(a.eph, time.Now().UTC())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), f, rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(formatTable), "output format: table, json or yaml")
	return cmd
}

func loadedFiles(eph ephemeris, t time.Time) ([]fileRow, error) {
	jd := eph.JulDayExact(t)
	for _, b := range []swe.Body{swe.Sun, swe.Moon} {
		if _, err := eph.CalcUT(jd, b); err != nil {
			return nil, err
		}
	}

	var rows []fileRow
	for _, slot := range fileSlots {
		fd, err := eph.CurrentFileData(slot)
		if errors.Is(err, swe.ErrNoFileLoaded) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot, err)
		}
		rows = append(rows, fileRow{Slot: slot, Covers: fd.Covers(jd), File: fd})
	}
	return rows, nil
}
