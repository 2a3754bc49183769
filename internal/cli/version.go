package cli

import (
	"github.com/spf13/cobra"

	"github.com/libswe/swe-go/pkg/swe"
)

type versionInfo struct {
	Wrapper     string `json:"wrapper" yaml:"wrapper"`
	Library     string `json:"library,omitempty" yaml:"library,omitempty"`
	LibraryPath string `json:"library_path,omitempty" yaml:"library_path,omitempty"`
	Native      bool   `json:"native" yaml:"native"`
}

func (a *app) versionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and libswe versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			info, err := collectVersion(a.eph)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), f, info)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", string(formatTable), "output format: table, json or yaml")
	return cmd
}

func collectVersion(eph ephemeris) (versionInfo, error) {
	info := versionInfo{Wrapper: swe.WrapperVersion(), Native: swe.NativeAvailable()}
	if !info.Native {
		return info, nil
	}
	v, err := eph.Version()
	if err != nil {
		return info, err
	}
	p, err := eph.LibraryPath()
	if err != nil {
		return info, err
	}
	info.Library, info.LibraryPath = v, p
	return info, nil
}
